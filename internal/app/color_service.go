package app

import (
	"context"

	"orbit/internal/dberr"
	"orbit/internal/domain"
	"orbit/internal/snowflake"
)

// ColorService encapsulates color preset use cases.
type ColorService struct {
	colors domain.ColorRepository
}

// NewColorService creates a ColorService backed by the given repository.
func NewColorService(colors domain.ColorRepository) *ColorService {
	return &ColorService{colors: colors}
}

// Create stores a new color preset. Admin only; a duplicate name surfaces
// as ErrColorExists via the unique constraint.
func (s *ColorService) Create(ctx context.Context, actor *domain.User, name, gradient, shadow string) (*domain.Color, error) {
	if err := domain.Authorize(actor, domain.AdminOnly()); err != nil {
		return nil, err
	}

	color := &domain.Color{
		ID:       snowflake.Next(),
		Name:     name,
		Gradient: gradient,
		Shadow:   shadow,
	}
	err := s.colors.Create(ctx, color)
	if err = dberr.OnConstraint(err, "colors_name_key", domain.ErrColorExists); err != nil {
		return nil, err
	}
	return color, nil
}

// Get returns a color by id.
func (s *ColorService) Get(ctx context.Context, id domain.ID) (*domain.Color, error) {
	color, err := s.colors.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, domain.ErrUnknownColor
	}
	return color, nil
}
