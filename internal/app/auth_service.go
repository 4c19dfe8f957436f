// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"

	"orbit/internal/domain"
	"orbit/internal/snowflake"
)

const (
	bearerPrefix = "Bearer "
	sessionTTL   = 30 * 24 * time.Hour

	// Every account gets one channel set at signup, like the seed data.
	channelSetName     = "Channel"
	channelSetCapacity = 500
)

// TwitchProfile is the identity extracted from a verified Twitch id_token.
type TwitchProfile struct {
	TwitchID  int64
	Username  string
	AvatarURL string
}

// AuthService resolves bearer tokens to users and manages sessions.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// ResolveToken maps a raw Authorization header value to the owning user id.
// A missing header or one without the bearer scheme fails with
// ErrUnauthorized; a token matching no session fails with ErrInvalidToken.
// Every call performs exactly one session lookup; expiry is not checked
// here, expired rows are removed by the sweeper.
func (s *AuthService) ResolveToken(ctx context.Context, header string) (domain.ID, error) {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return 0, err
	}
	if session == nil {
		return 0, domain.ErrInvalidToken
	}
	return session.UserID, nil
}

// CurrentUser resolves the Authorization header to the full user record.
func (s *AuthService) CurrentUser(ctx context.Context, header string) (*domain.User, error) {
	userID, err := s.ResolveToken(ctx, header)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnknownUser
	}
	return user, nil
}

// Login finds or creates the user for a Twitch identity and opens a new
// session, returning the bearer token and the user. First login mints the
// account and its channel set together.
func (s *AuthService) Login(ctx context.Context, profile TwitchProfile) (string, *domain.User, error) {
	user, err := s.users.GetByTwitchID(ctx, profile.TwitchID)
	if err != nil {
		return "", nil, err
	}

	if user == nil {
		userID := snowflake.Next()
		setID := snowflake.Next()

		user = &domain.User{
			ID:           userID,
			TwitchID:     profile.TwitchID,
			Username:     profile.Username,
			AvatarURL:    profile.AvatarURL,
			Roles:        []domain.Role{},
			ChannelSetID: setID,
		}
		channelSet := &domain.EmoteSet{
			ID:       setID,
			Name:     channelSetName,
			Capacity: channelSetCapacity,
			UserID:   userID,
		}
		if err := s.users.Create(ctx, user, channelSet); err != nil {
			return "", nil, err
		}
	}

	token, err := generateToken()
	if err != nil {
		return "", nil, err
	}
	if err := s.sessions.Create(ctx, token, user.ID, time.Now().Add(sessionTTL)); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout invalidates the session named by the Authorization header.
func (s *AuthService) Logout(ctx context.Context, header string) error {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return domain.ErrUnauthorized
	}
	return s.sessions.Delete(ctx, token)
}

// SweepExpired deletes sessions past their expiry. Run periodically; the
// resolver relies on expired rows being absent rather than checking the
// timestamp itself.
func (s *AuthService) SweepExpired(ctx context.Context) error {
	return s.sessions.DeleteExpired(ctx)
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
