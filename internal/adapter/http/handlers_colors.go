package adapthttp

import (
	"net/http"
)

func (s *Server) handleCreateColor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Gradient string `json:"gradient"`
		Shadow   string `json:"shadow"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	color, err := s.colors.Create(r.Context(), userFrom(r.Context()), req.Name, req.Gradient, req.Shadow)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, color)
}

func (s *Server) handleGetColor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	color, err := s.colors.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, color)
}
