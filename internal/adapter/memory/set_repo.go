package memory

import (
	"context"
	"sort"

	"orbit/internal/domain"
)

// SetRepo implements domain.EmoteSetRepository over the shared store.
type SetRepo struct {
	db *DB
}

func NewSetRepo(db *DB) *SetRepo {
	return &SetRepo{db: db}
}

func (r *SetRepo) Create(ctx context.Context, set *domain.EmoteSet) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[set.UserID]; !ok {
		return &constraintError{name: "sets_user_id_fkey"}
	}
	r.db.sets[set.ID] = *set
	return nil
}

func (r *SetRepo) Get(ctx context.Context, id domain.ID) (*domain.EmoteSet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	s, ok := r.db.sets[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SetRepo) GetWithEmotes(ctx context.Context, id domain.ID) (*domain.EmoteSetWithEmotes, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	s, ok := r.db.sets[id]
	if !ok {
		return nil, nil
	}
	out := &domain.EmoteSetWithEmotes{EmoteSet: s, Emotes: []domain.Emote{}}
	for _, m := range r.db.members {
		if m.setID != id {
			continue
		}
		if e, ok := r.db.emotes[m.emoteID]; ok {
			out.Emotes = append(out.Emotes, e)
		}
	}
	return out, nil
}

func (r *SetRepo) Update(ctx context.Context, id domain.ID, update domain.EmoteSetUpdate) (*domain.EmoteSet, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s, ok := r.db.sets[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		s.Name = *update.Name
	}
	if update.Capacity != nil {
		s.Capacity = *update.Capacity
	}
	r.db.sets[id] = s
	return &s, nil
}

func (r *SetRepo) Delete(ctx context.Context, id domain.ID) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.sets[id]; !ok {
		return false, nil
	}
	delete(r.db.sets, id)
	kept := r.db.members[:0]
	for _, m := range r.db.members {
		if m.setID != id {
			kept = append(kept, m)
		}
	}
	r.db.members = kept
	return true, nil
}

func (r *SetRepo) AddEmote(ctx context.Context, setID, emoteID domain.ID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.sets[setID]; !ok {
		return &constraintError{name: "emotes_to_sets_set_id_fkey"}
	}
	if _, ok := r.db.emotes[emoteID]; !ok {
		return &constraintError{name: "emotes_to_sets_emote_id_fkey"}
	}
	for _, m := range r.db.members {
		if m.setID == setID && m.emoteID == emoteID {
			return nil
		}
	}
	r.db.members = append(r.db.members, setMember{setID: setID, emoteID: emoteID})
	return nil
}

func (r *SetRepo) RemoveEmote(ctx context.Context, setID, emoteID domain.ID) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, m := range r.db.members {
		if m.setID == setID && m.emoteID == emoteID {
			r.db.members = append(r.db.members[:i], r.db.members[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *SetRepo) ListByUser(ctx context.Context, userID domain.ID) ([]domain.EmoteSet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	sets := []domain.EmoteSet{}
	for _, s := range r.db.sets {
		if s.UserID == userID {
			sets = append(sets, s)
		}
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].ID < sets[j].ID })
	return sets, nil
}

func (r *SetRepo) ChannelForUser(ctx context.Context, userID domain.ID) (*domain.EmoteSet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	u, ok := r.db.users[userID]
	if !ok {
		return nil, nil
	}
	s, ok := r.db.sets[u.ChannelSetID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// ColorRepo implements domain.ColorRepository over the shared store.
type ColorRepo struct {
	db *DB
}

func NewColorRepo(db *DB) *ColorRepo {
	return &ColorRepo{db: db}
}

func (r *ColorRepo) Create(ctx context.Context, color *domain.Color) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, c := range r.db.colors {
		if c.Name == color.Name {
			return &constraintError{name: "colors_name_key"}
		}
	}
	r.db.colors[color.ID] = *color
	return nil
}

func (r *ColorRepo) Get(ctx context.Context, id domain.ID) (*domain.Color, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	c, ok := r.db.colors[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}
