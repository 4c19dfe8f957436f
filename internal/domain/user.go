// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// Role is a named capability tier drawn from a fixed, closed set.
type Role string

const (
	RoleVerified    Role = "verified"
	RoleSubscriber  Role = "subscriber"
	RoleFounder     Role = "founder"
	RoleContributor Role = "contributor"
	RoleMaintainer  Role = "maintainer"
	RoleModerator   Role = "moderator"
	RoleAdmin       Role = "admin"
)

// Roles lists every valid role.
var Roles = []Role{
	RoleVerified, RoleSubscriber, RoleFounder,
	RoleContributor, RoleMaintainer, RoleModerator, RoleAdmin,
}

// User represents a platform account. Every user owns exactly one channel
// emote set, created together with the account.
type User struct {
	ID           ID      `json:"id"`
	TwitchID     int64   `json:"twitch_id"`
	Username     string  `json:"username"`
	AvatarURL    string  `json:"avatar_url"`
	Roles        []Role  `json:"roles"`
	BadgeURL     *string `json:"badge_url"`
	ColorID      *ID     `json:"color_id"`
	ChannelSetID ID      `json:"channel_set_id"`
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(r Role) bool {
	for _, have := range u.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// Session represents an authenticated login. Sessions are created at login,
// read by the session resolver, and deleted on logout or by the expiry
// sweeper; they are never mutated.
type Session struct {
	Token     string    `json:"-"`
	UserID    ID        `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRepository defines the port for user persistence operations.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	GetByID(ctx context.Context, id ID) (*User, error)
	GetByTwitchID(ctx context.Context, twitchID int64) (*User, error)
	// Create inserts the user and their channel set atomically.
	Create(ctx context.Context, user *User, channelSet *EmoteSet) error
	ListEditors(ctx context.Context, id ID) ([]User, error)
	AddEditor(ctx context.Context, userID, editorID ID) error
	RemoveEditor(ctx context.Context, userID, editorID ID) (bool, error)
}

// SessionRepository defines the port for session persistence operations.
type SessionRepository interface {
	Create(ctx context.Context, token string, userID ID, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
