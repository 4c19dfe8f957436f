package app

import (
	"context"

	"orbit/internal/dberr"
	"orbit/internal/domain"
)

// UserService encapsulates user profile and editor use cases.
type UserService struct {
	users  domain.UserRepository
	emotes domain.EmoteRepository
	sets   domain.EmoteSetRepository
}

// NewUserService creates a UserService backed by the given repositories.
func NewUserService(users domain.UserRepository, emotes domain.EmoteRepository, sets domain.EmoteSetRepository) *UserService {
	return &UserService{users: users, emotes: emotes, sets: sets}
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id domain.ID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnknownUser
	}
	return user, nil
}

// Editors returns the editors of a user's channel.
func (s *UserService) Editors(ctx context.Context, id domain.ID) ([]domain.User, error) {
	return s.users.ListEditors(ctx, id)
}

// AddEditor grants editorID editor access to ownerID's channel. The actor
// must be the owner or an admin; the store rejects self-insertion and
// unknown editors via named constraints.
func (s *UserService) AddEditor(ctx context.Context, actor *domain.User, ownerID, editorID domain.ID) error {
	if err := domain.Authorize(actor, domain.SelfOrAdmin(ownerID)); err != nil {
		return err
	}

	err := s.users.AddEditor(ctx, ownerID, editorID)
	err = dberr.OnConstraint(err, "user_cannot_add_self", domain.ErrUserCannotAddSelf)
	err = dberr.OnConstraint(err, "users_to_editors_editor_id_fkey", domain.ErrUnknownUser)
	err = dberr.OnConstraint(err, "users_to_editors_user_id_fkey", domain.ErrUnknownUser)
	return err
}

// RemoveEditor revokes editorID's access to ownerID's channel.
func (s *UserService) RemoveEditor(ctx context.Context, actor *domain.User, ownerID, editorID domain.ID) error {
	if err := domain.Authorize(actor, domain.SelfOrAdmin(ownerID)); err != nil {
		return err
	}

	removed, err := s.users.RemoveEditor(ctx, ownerID, editorID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrUnknownUser
	}
	return nil
}

// Emotes returns all emotes owned by a user.
func (s *UserService) Emotes(ctx context.Context, id domain.ID) ([]domain.Emote, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	return s.emotes.ListByUser(ctx, id)
}

// Sets returns all emote sets owned by a user.
func (s *UserService) Sets(ctx context.Context, id domain.ID) ([]domain.EmoteSet, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	return s.sets.ListByUser(ctx, id)
}

// ChannelSet returns a user's channel emote set.
func (s *UserService) ChannelSet(ctx context.Context, id domain.ID) (*domain.EmoteSet, error) {
	set, err := s.sets.ChannelForUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, domain.ErrUnknownUser
	}
	return set, nil
}

func (s *UserService) ensureExists(ctx context.Context, id domain.ID) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUnknownUser
	}
	return nil
}
