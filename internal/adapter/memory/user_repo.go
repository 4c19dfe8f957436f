package memory

import (
	"context"
	"time"

	"orbit/internal/domain"
)

// UserRepo implements domain.UserRepository over the shared store.
type UserRepo struct {
	db *DB
}

func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByTwitchID(ctx context.Context, twitchID int64) (*domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, u := range r.db.users {
		if u.TwitchID == twitchID {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User, channelSet *domain.EmoteSet) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.TwitchID == user.TwitchID {
			return &constraintError{name: "users_twitch_id_key"}
		}
	}
	r.db.users[user.ID] = *user
	r.db.sets[channelSet.ID] = *channelSet
	return nil
}

func (r *UserRepo) ListEditors(ctx context.Context, id domain.ID) ([]domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	editors := []domain.User{}
	for _, pair := range r.db.editors {
		if pair.userID != id {
			continue
		}
		if u, ok := r.db.users[pair.editorID]; ok {
			editors = append(editors, u)
		}
	}
	return editors, nil
}

func (r *UserRepo) AddEditor(ctx context.Context, userID, editorID domain.ID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if userID == editorID {
		return &constraintError{name: "user_cannot_add_self"}
	}
	if _, ok := r.db.users[userID]; !ok {
		return &constraintError{name: "users_to_editors_user_id_fkey"}
	}
	if _, ok := r.db.users[editorID]; !ok {
		return &constraintError{name: "users_to_editors_editor_id_fkey"}
	}
	for _, pair := range r.db.editors {
		if pair.userID == userID && pair.editorID == editorID {
			return nil
		}
	}
	r.db.editors = append(r.db.editors, editorPair{userID: userID, editorID: editorID})
	return nil
}

func (r *UserRepo) RemoveEditor(ctx context.Context, userID, editorID domain.ID) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, pair := range r.db.editors {
		if pair.userID == userID && pair.editorID == editorID {
			r.db.editors = append(r.db.editors[:i], r.db.editors[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// SessionRepo implements domain.SessionRepository over the shared store.
type SessionRepo struct {
	db *DB
}

func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) Create(ctx context.Context, token string, userID domain.ID, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.sessions[token] = domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for token, s := range r.db.sessions {
		if s.ExpiresAt.Before(now) {
			delete(r.db.sessions, token)
		}
	}
	return nil
}
