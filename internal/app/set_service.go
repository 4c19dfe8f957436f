package app

import (
	"context"

	"orbit/internal/dberr"
	"orbit/internal/domain"
	"orbit/internal/snowflake"
)

// SetService encapsulates emote set use cases.
type SetService struct {
	sets domain.EmoteSetRepository
}

// NewSetService creates a SetService backed by the given repository.
func NewSetService(sets domain.EmoteSetRepository) *SetService {
	return &SetService{sets: sets}
}

// Create mints an id and stores a new emote set owned by the actor.
func (s *SetService) Create(ctx context.Context, actor *domain.User, name string, capacity int) (*domain.EmoteSet, error) {
	set := &domain.EmoteSet{
		ID:       snowflake.Next(),
		Name:     name,
		Capacity: capacity,
		UserID:   actor.ID,
	}
	if err := s.sets.Create(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

// Get returns an emote set with its member emotes.
func (s *SetService) Get(ctx context.Context, id domain.ID) (*domain.EmoteSetWithEmotes, error) {
	set, err := s.sets.GetWithEmotes(ctx, id)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, domain.ErrUnknownEmoteSet
	}
	return set, nil
}

// Update renames or resizes a set. Owner only.
func (s *SetService) Update(ctx context.Context, actor *domain.User, id domain.ID, update domain.EmoteSetUpdate) (*domain.EmoteSet, error) {
	set, err := s.sets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, domain.ErrUnknownEmoteSet
	}
	if err := domain.Authorize(actor, domain.OwnerOnly(set.UserID)); err != nil {
		return nil, err
	}
	return s.sets.Update(ctx, id, update)
}

// Delete removes a set. Owner only.
func (s *SetService) Delete(ctx context.Context, actor *domain.User, id domain.ID) error {
	set, err := s.sets.Get(ctx, id)
	if err != nil {
		return err
	}
	if set == nil {
		return domain.ErrUnknownEmoteSet
	}
	if err := domain.Authorize(actor, domain.OwnerOnly(set.UserID)); err != nil {
		return err
	}

	_, err = s.sets.Delete(ctx, id)
	return err
}

// AddEmote adds an emote to a set; the store's named foreign keys turn an
// unknown set or emote into the matching domain error.
func (s *SetService) AddEmote(ctx context.Context, setID, emoteID domain.ID) error {
	err := s.sets.AddEmote(ctx, setID, emoteID)
	err = dberr.OnConstraint(err, "emotes_to_sets_set_id_fkey", domain.ErrUnknownEmoteSet)
	err = dberr.OnConstraint(err, "emotes_to_sets_emote_id_fkey", domain.ErrUnknownEmote)
	return err
}

// RemoveEmote removes an emote from a set.
func (s *SetService) RemoveEmote(ctx context.Context, setID, emoteID domain.ID) error {
	set, err := s.sets.Get(ctx, setID)
	if err != nil {
		return err
	}
	if set == nil {
		return domain.ErrUnknownEmoteSet
	}

	removed, err := s.sets.RemoveEmote(ctx, setID, emoteID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrUnknownEmote
	}
	return nil
}
