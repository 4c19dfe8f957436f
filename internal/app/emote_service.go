package app

import (
	"context"

	"orbit/internal/domain"
	"orbit/internal/snowflake"
)

// CreateEmote carries the fields a user submits for a new emote.
type CreateEmote struct {
	Name     string   `json:"name"`
	Tags     []string `json:"tags"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Public   bool     `json:"public"`
	Animated bool     `json:"animated"`
	Modifier bool     `json:"modifier"`
	NSFW     bool     `json:"nsfw"`
}

// EmoteService encapsulates emote use cases.
type EmoteService struct {
	emotes domain.EmoteRepository
	index  domain.EmoteIndex
}

// NewEmoteService creates an EmoteService backed by the given repository
// and search index.
func NewEmoteService(emotes domain.EmoteRepository, index domain.EmoteIndex) *EmoteService {
	return &EmoteService{emotes: emotes, index: index}
}

// Create mints an id for the emote, stores it unapproved, and indexes it
// for search.
func (s *EmoteService) Create(ctx context.Context, actor *domain.User, params CreateEmote) (*domain.EmoteWithUser, error) {
	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	emote := &domain.Emote{
		ID:       snowflake.Next(),
		Name:     params.Name,
		Tags:     tags,
		Width:    params.Width,
		Height:   params.Height,
		Public:   params.Public,
		Animated: params.Animated,
		Modifier: params.Modifier,
		NSFW:     params.NSFW,
		UserID:   actor.ID,
	}
	if err := s.emotes.Create(ctx, emote); err != nil {
		return nil, err
	}
	if err := s.index.Index(ctx, emote); err != nil {
		return nil, err
	}
	return &domain.EmoteWithUser{Emote: *emote, User: *actor}, nil
}

// Get returns an emote with its owner embedded.
func (s *EmoteService) Get(ctx context.Context, id domain.ID) (*domain.EmoteWithUser, error) {
	emote, err := s.emotes.GetWithUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if emote == nil {
		return nil, domain.ErrUnknownEmote
	}
	return emote, nil
}

// Update applies moderation flags to an emote. Admin only.
func (s *EmoteService) Update(ctx context.Context, actor *domain.User, id domain.ID, update domain.EmoteUpdate) (*domain.Emote, error) {
	if err := domain.Authorize(actor, domain.AdminOnly()); err != nil {
		return nil, err
	}

	emote, err := s.emotes.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if emote == nil {
		return nil, domain.ErrUnknownEmote
	}
	return emote, nil
}

// Delete removes an emote and its search document. Only the owner or an
// admin may delete.
func (s *EmoteService) Delete(ctx context.Context, actor *domain.User, id domain.ID) error {
	emote, err := s.emotes.Get(ctx, id)
	if err != nil {
		return err
	}
	if emote == nil {
		return domain.ErrUnknownEmote
	}
	if err := domain.Authorize(actor, domain.SelfOrAdmin(emote.UserID)); err != nil {
		return err
	}

	if _, err := s.emotes.Delete(ctx, id); err != nil {
		return err
	}
	return s.index.Remove(ctx, id)
}

// Search queries the index and returns matching emotes in ranking order.
func (s *EmoteService) Search(ctx context.Context, query string, limit int) ([]domain.Emote, error) {
	ids, err := s.index.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Emote{}, nil
	}

	emotes, err := s.emotes.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	// GetMany does not preserve the index's ranking.
	byID := make(map[domain.ID]domain.Emote, len(emotes))
	for _, e := range emotes {
		byID[e.ID] = e
	}
	ordered := make([]domain.Emote, 0, len(emotes))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			ordered = append(ordered, e)
		}
	}
	return ordered, nil
}
