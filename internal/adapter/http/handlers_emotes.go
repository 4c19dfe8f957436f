package adapthttp

import (
	"net/http"

	"orbit/internal/app"
	"orbit/internal/domain"
)

func (s *Server) handleCreateEmote(w http.ResponseWriter, r *http.Request) {
	var req app.CreateEmote
	if err := parseJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	emote, err := s.emotes.Create(r.Context(), userFrom(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, emote)
}

func (s *Server) handleGetEmote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	emote, err := s.emotes.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emote)
}

func (s *Server) handleSearchEmotes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	limit := intQuery(r, "limit", 50)
	emotes, err := s.emotes.Search(r.Context(), query, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emotes)
}

func (s *Server) handleUpdateEmote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	var update domain.EmoteUpdate
	if err := parseJSON(r, &update); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	emote, err := s.emotes.Update(r.Context(), userFrom(r.Context()), id, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emote)
}

func (s *Server) handleDeleteEmote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := s.emotes.Delete(r.Context(), userFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
