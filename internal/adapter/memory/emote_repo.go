package memory

import (
	"context"
	"sort"

	"orbit/internal/domain"
)

// EmoteRepo implements domain.EmoteRepository over the shared store.
type EmoteRepo struct {
	db *DB
}

func NewEmoteRepo(db *DB) *EmoteRepo {
	return &EmoteRepo{db: db}
}

func (r *EmoteRepo) Create(ctx context.Context, emote *domain.Emote) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[emote.UserID]; !ok {
		return &constraintError{name: "emotes_user_id_fkey"}
	}
	r.db.emotes[emote.ID] = *emote
	return nil
}

func (r *EmoteRepo) Get(ctx context.Context, id domain.ID) (*domain.Emote, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	e, ok := r.db.emotes[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *EmoteRepo) GetWithUser(ctx context.Context, id domain.ID) (*domain.EmoteWithUser, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	e, ok := r.db.emotes[id]
	if !ok {
		return nil, nil
	}
	out := &domain.EmoteWithUser{Emote: e}
	if u, ok := r.db.users[e.UserID]; ok {
		out.User = u
	}
	return out, nil
}

func (r *EmoteRepo) GetMany(ctx context.Context, ids []domain.ID) ([]domain.Emote, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	emotes := []domain.Emote{}
	for _, id := range ids {
		if e, ok := r.db.emotes[id]; ok {
			emotes = append(emotes, e)
		}
	}
	return emotes, nil
}

func (r *EmoteRepo) Update(ctx context.Context, id domain.ID, update domain.EmoteUpdate) (*domain.Emote, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e, ok := r.db.emotes[id]
	if !ok {
		return nil, nil
	}
	if update.Approved != nil {
		e.Approved = *update.Approved
	}
	if update.NSFW != nil {
		e.NSFW = *update.NSFW
	}
	r.db.emotes[id] = e
	return &e, nil
}

func (r *EmoteRepo) Delete(ctx context.Context, id domain.ID) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.emotes[id]; !ok {
		return false, nil
	}
	delete(r.db.emotes, id)
	kept := r.db.members[:0]
	for _, m := range r.db.members {
		if m.emoteID != id {
			kept = append(kept, m)
		}
	}
	r.db.members = kept
	return true, nil
}

func (r *EmoteRepo) ListByUser(ctx context.Context, userID domain.ID) ([]domain.Emote, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	emotes := []domain.Emote{}
	for _, e := range r.db.emotes {
		if e.UserID == userID {
			emotes = append(emotes, e)
		}
	}
	sort.Slice(emotes, func(i, j int) bool { return emotes[i].ID < emotes[j].ID })
	return emotes, nil
}
