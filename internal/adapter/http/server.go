package adapthttp

import (
	"log/slog"
	"net/http"

	"orbit/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	log    *slog.Logger
	auth   *app.AuthService
	users  *app.UserService
	emotes *app.EmoteService
	sets   *app.SetService
	colors *app.ColorService
	oauth  *OAuth
}

// New creates a Server wired to the given application services. oauth may be
// nil, in which case the login routes respond 404.
func New(log *slog.Logger, auth *app.AuthService, users *app.UserService,
	emotes *app.EmoteService, sets *app.SetService, colors *app.ColorService,
	oauth *OAuth) *Server {
	return &Server{
		log:    log,
		auth:   auth,
		users:  users,
		emotes: emotes,
		sets:   sets,
		colors: colors,
		oauth:  oauth,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("GET /auth/login", s.handleLogin)
	api.HandleFunc("GET /auth/callback", s.handleCallback)
	api.Handle("POST /auth/logout", s.requireAuth(s.handleLogout))

	api.Handle("GET /users/@me", s.requireAuth(s.handleCurrentUser))
	api.HandleFunc("GET /users/{id}", s.handleGetUser)
	api.HandleFunc("GET /users/{id}/editors", s.handleListEditors)
	api.Handle("PUT /users/@me/editors/{id}", s.requireAuth(s.handleAddEditor))
	api.Handle("DELETE /users/@me/editors/{id}", s.requireAuth(s.handleRemoveEditor))
	api.HandleFunc("GET /users/{id}/emotes", s.handleUserEmotes)
	api.HandleFunc("GET /users/{id}/sets", s.handleUserSets)
	api.HandleFunc("GET /users/{id}/sets/@channel", s.handleUserChannelSet)

	api.Handle("POST /emotes", s.requireAuth(s.handleCreateEmote))
	api.HandleFunc("GET /emotes/search", s.handleSearchEmotes)
	api.HandleFunc("GET /emotes/{id}", s.handleGetEmote)
	api.Handle("PATCH /emotes/{id}", s.requireAuth(s.handleUpdateEmote))
	api.Handle("DELETE /emotes/{id}", s.requireAuth(s.handleDeleteEmote))

	api.Handle("POST /sets", s.requireAuth(s.handleCreateSet))
	api.HandleFunc("GET /sets/{id}", s.handleGetSet)
	api.Handle("PATCH /sets/{id}", s.requireAuth(s.handleUpdateSet))
	api.Handle("DELETE /sets/{id}", s.requireAuth(s.handleDeleteSet))
	api.Handle("PUT /sets/{id}/emotes/{emoteId}", s.requireAuth(s.handleAddSetEmote))
	api.Handle("DELETE /sets/{id}/emotes/{emoteId}", s.requireAuth(s.handleRemoveSetEmote))

	api.Handle("POST /colors", s.requireAuth(s.handleCreateColor))
	api.HandleFunc("GET /colors/{id}", s.handleGetColor)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.withLogging(root)
}
