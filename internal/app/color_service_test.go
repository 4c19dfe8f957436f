package app

import (
	"context"
	"errors"
	"testing"

	"orbit/internal/domain"
)

func TestColorService_Create_AdminOnly(t *testing.T) {
	ctx := context.Background()
	colors := &mockColorRepo{
		createFn: func(ctx context.Context, color *domain.Color) error {
			t.Error("store should not be reached for non-admin")
			return nil
		},
	}
	svc := NewColorService(colors)

	_, err := svc.Create(ctx, plainUser(42), "lava", "linear-gradient(red, orange)", "0 0 4px red")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestColorService_Create(t *testing.T) {
	ctx := context.Background()

	var stored *domain.Color
	colors := &mockColorRepo{
		createFn: func(ctx context.Context, color *domain.Color) error {
			stored = color
			return nil
		},
	}
	svc := NewColorService(colors)

	color, err := svc.Create(ctx, adminUser(9), "lava", "linear-gradient(red, orange)", "0 0 4px red")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stored == nil || stored.ID == 0 {
		t.Fatal("expected color stored with minted id")
	}
	if color.Name != "lava" {
		t.Errorf("unexpected color %+v", color)
	}
}

func TestColorService_Create_DuplicateName(t *testing.T) {
	ctx := context.Background()
	colors := &mockColorRepo{
		createFn: func(ctx context.Context, color *domain.Color) error {
			return &constraintErr{name: "colors_name_key"}
		},
	}
	svc := NewColorService(colors)

	_, err := svc.Create(ctx, adminUser(9), "lava", "", "")
	if !errors.Is(err, domain.ErrColorExists) {
		t.Errorf("expected ErrColorExists, got %v", err)
	}
}

func TestColorService_Get_Unknown(t *testing.T) {
	ctx := context.Background()
	svc := NewColorService(&mockColorRepo{})

	if _, err := svc.Get(ctx, 1); !errors.Is(err, domain.ErrUnknownColor) {
		t.Errorf("expected ErrUnknownColor, got %v", err)
	}
}
