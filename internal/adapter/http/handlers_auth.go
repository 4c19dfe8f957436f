// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strconv"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"orbit/internal/app"
)

const twitchIssuer = "https://id.twitch.tv/oauth2"

// Twitch only includes profile claims in the id_token when asked for them
// explicitly.
const twitchClaims = `{"id_token":{"preferred_username":null,"picture":null}}`

// OAuth holds the Twitch OIDC provider and client configuration.
type OAuth struct {
	Provider *oidc.Provider
	Config   oauth2.Config
}

// NewOAuth discovers the Twitch OIDC endpoints and builds the client
// configuration.
func NewOAuth(ctx context.Context, clientID, clientSecret, redirectURL string) (*OAuth, error) {
	provider, err := oidc.NewProvider(ctx, twitchIssuer)
	if err != nil {
		return nil, err
	}
	return &OAuth{
		Provider: provider,
		Config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     provider.Endpoint(),
			RedirectURL:  redirectURL,
			Scopes:       []string{oidc.ScopeOpenID},
		},
	}, nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.oauth == nil {
		writeMessage(w, http.StatusNotFound, "login disabled")
		return
	}
	state := generateState()
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode, // Lax required for cross-site redirect returns
		MaxAge:   300,
	})
	url := s.oauth.Config.AuthCodeURL(state, oauth2.SetAuthURLParam("claims", twitchClaims))
	http.Redirect(w, r, url, http.StatusFound)
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	if s.oauth == nil {
		writeMessage(w, http.StatusNotFound, "login disabled")
		return
	}

	state, err := r.Cookie("oauth_state")
	if err != nil || r.URL.Query().Get("state") != state.Value {
		writeMessage(w, http.StatusBadRequest, "invalid state")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: "oauth_state", MaxAge: -1, Path: "/"})

	token, err := s.oauth.Config.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to exchange token")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		writeMessage(w, http.StatusInternalServerError, "no id_token")
		return
	}

	verifier := s.oauth.Provider.Verifier(&oidc.Config{ClientID: s.oauth.Config.ClientID})
	idToken, err := verifier.Verify(r.Context(), rawIDToken)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to verify token")
		return
	}

	var claims struct {
		Sub               string `json:"sub"`
		PreferredUsername string `json:"preferred_username"`
		Picture           string `json:"picture"`
	}
	if err = idToken.Claims(&claims); err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to parse claims")
		return
	}

	twitchID, err := strconv.ParseInt(claims.Sub, 10, 64)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "invalid subject")
		return
	}

	sessionToken, user, err := s.auth.Login(r.Context(), app.TwitchProfile{
		TwitchID:  twitchID,
		Username:  claims.PreferredUsername,
		AvatarURL: claims.Picture,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": sessionToken,
		"user":  user,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context(), r.Header.Get("Authorization")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func generateState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
