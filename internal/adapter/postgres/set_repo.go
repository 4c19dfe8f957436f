package postgres

import (
	"context"
	"database/sql"
	"errors"

	"orbit/internal/domain"
)

const setColumns = "id, name, capacity, user_id, parent_id"

// SetRepo implements emote set repository operations on DB.
type SetRepo struct {
	db *DB
}

// NewSetRepo wraps a DB as an EmoteSetRepository.
func NewSetRepo(db *DB) *SetRepo {
	return &SetRepo{db: db}
}

func scanSet(row rowScanner) (*domain.EmoteSet, error) {
	var s domain.EmoteSet
	err := row.Scan(&s.ID, &s.Name, &s.Capacity, &s.UserID, &s.ParentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new emote set.
func (r *SetRepo) Create(ctx context.Context, s *domain.EmoteSet) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO sets (id, name, capacity, user_id, parent_id) VALUES ($1, $2, $3, $4, $5)",
		s.ID, s.Name, s.Capacity, s.UserID, s.ParentID)
	return wrapErr(err)
}

// Get retrieves an emote set by id.
func (r *SetRepo) Get(ctx context.Context, id domain.ID) (*domain.EmoteSet, error) {
	row := r.db.sql.QueryRowContext(ctx,
		"SELECT "+setColumns+" FROM sets WHERE id = $1", id)
	return scanSet(row)
}

// GetWithEmotes retrieves an emote set with its member emotes.
func (r *SetRepo) GetWithEmotes(ctx context.Context, id domain.ID) (*domain.EmoteSetWithEmotes, error) {
	set, err := r.Get(ctx, id)
	if err != nil || set == nil {
		return nil, err
	}

	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT emotes.id, emotes.name, emotes.tags, emotes.width, emotes.height,
		        emotes.approved, emotes.public, emotes.animated, emotes.modifier,
		        emotes.nsfw, emotes.user_id
		 FROM emotes_to_sets AS m2m
		 JOIN emotes ON m2m.emote_id = emotes.id
		 WHERE m2m.set_id = $1
		 ORDER BY emotes.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emotes, err := collectEmotes(rows)
	if err != nil {
		return nil, err
	}
	return &domain.EmoteSetWithEmotes{EmoteSet: *set, Emotes: emotes}, nil
}

// Update applies the given fields; nil fields keep their value.
func (r *SetRepo) Update(ctx context.Context, id domain.ID, update domain.EmoteSetUpdate) (*domain.EmoteSet, error) {
	row := r.db.sql.QueryRowContext(ctx,
		`UPDATE sets
		 SET name = COALESCE($1, name), capacity = COALESCE($2, capacity)
		 WHERE id = $3
		 RETURNING `+setColumns,
		update.Name, update.Capacity, id)
	return scanSet(row)
}

// Delete removes an emote set, reporting whether a row was deleted.
func (r *SetRepo) Delete(ctx context.Context, id domain.ID) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM sets WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// AddEmote adds an emote to a set. Re-adding is a no-op; an unknown set or
// emote violates the corresponding named foreign key.
func (r *SetRepo) AddEmote(ctx context.Context, setID, emoteID domain.ID) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO emotes_to_sets (set_id, emote_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		setID, emoteID)
	return wrapErr(err)
}

// RemoveEmote removes an emote from a set, reporting whether a row was
// deleted.
func (r *SetRepo) RemoveEmote(ctx context.Context, setID, emoteID domain.ID) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM emotes_to_sets WHERE set_id = $1 AND emote_id = $2", setID, emoteID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ListByUser returns all sets owned by a user.
func (r *SetRepo) ListByUser(ctx context.Context, userID domain.ID) ([]domain.EmoteSet, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+setColumns+" FROM sets WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets := []domain.EmoteSet{}
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, *s)
	}
	return sets, rows.Err()
}

// ChannelForUser returns the user's channel emote set.
func (r *SetRepo) ChannelForUser(ctx context.Context, userID domain.ID) (*domain.EmoteSet, error) {
	row := r.db.sql.QueryRowContext(ctx,
		`SELECT sets.id, sets.name, sets.capacity, sets.user_id, sets.parent_id
		 FROM users
		 JOIN sets ON users.channel_set_id = sets.id
		 WHERE users.id = $1`, userID)
	return scanSet(row)
}
