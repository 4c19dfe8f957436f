package postgres

import (
	"context"
	"database/sql"
	"errors"

	"orbit/internal/domain"
)

// ColorRepo implements color repository operations on DB.
type ColorRepo struct {
	db *DB
}

// NewColorRepo wraps a DB as a ColorRepository.
func NewColorRepo(db *DB) *ColorRepo {
	return &ColorRepo{db: db}
}

// Create inserts a new color. A duplicate name violates colors_name_key.
func (r *ColorRepo) Create(ctx context.Context, c *domain.Color) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO colors (id, name, gradient, shadow) VALUES ($1, $2, $3, $4)",
		c.ID, c.Name, c.Gradient, c.Shadow)
	return wrapErr(err)
}

// Get retrieves a color by id.
func (r *ColorRepo) Get(ctx context.Context, id domain.ID) (*domain.Color, error) {
	var c domain.Color
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, name, gradient, shadow FROM colors WHERE id = $1", id,
	).Scan(&c.ID, &c.Name, &c.Gradient, &c.Shadow)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
