// Package memory provides an in-memory store implementing the repository
// interfaces, used in tests.
package memory

import (
	"sync"

	"orbit/internal/domain"
)

// constraintError mimics the named-constraint failures the SQL schema
// produces, so the same translation layer applies in tests.
type constraintError struct {
	name string
}

func (e *constraintError) Error() string {
	return "constraint violation: " + e.name
}

func (e *constraintError) ConstraintName() string {
	return e.name
}

var _ domain.UserRepository = (*UserRepo)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)
var _ domain.EmoteRepository = (*EmoteRepo)(nil)
var _ domain.EmoteSetRepository = (*SetRepo)(nil)
var _ domain.ColorRepository = (*ColorRepo)(nil)

type editorPair struct {
	userID   domain.ID
	editorID domain.ID
}

type setMember struct {
	setID   domain.ID
	emoteID domain.ID
}

// DB is the shared in-memory store behind the per-port repositories.
type DB struct {
	mu       sync.RWMutex
	users    map[domain.ID]domain.User
	emotes   map[domain.ID]domain.Emote
	sets     map[domain.ID]domain.EmoteSet
	colors   map[domain.ID]domain.Color
	sessions map[string]domain.Session
	editors  []editorPair
	members  []setMember
}

// New creates an empty store.
func New() *DB {
	return &DB{
		users:    make(map[domain.ID]domain.User),
		emotes:   make(map[domain.ID]domain.Emote),
		sets:     make(map[domain.ID]domain.EmoteSet),
		colors:   make(map[domain.ID]domain.Color),
		sessions: make(map[string]domain.Session),
	}
}
