package domain

import "context"

// Color is a username color preset with a gradient and shadow.
type Color struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Gradient string `json:"gradient"`
	Shadow   string `json:"shadow"`
}

// ColorRepository defines the port for color persistence operations.
// Lookups return (nil, nil) when no row matches.
type ColorRepository interface {
	Create(ctx context.Context, color *Color) error
	Get(ctx context.Context, id ID) (*Color, error)
}
