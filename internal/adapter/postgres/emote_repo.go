package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"orbit/internal/domain"
)

const emoteColumns = "id, name, tags, width, height, approved, public, animated, modifier, nsfw, user_id"

func scanEmote(row rowScanner) (*domain.Emote, error) {
	var (
		e    domain.Emote
		tags pq.StringArray
	)
	err := row.Scan(&e.ID, &e.Name, &tags, &e.Width, &e.Height, &e.Approved,
		&e.Public, &e.Animated, &e.Modifier, &e.NSFW, &e.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.Tags = []string(tags)
	return &e, nil
}

// EmoteRepo implements emote repository operations on DB.
type EmoteRepo struct {
	db *DB
}

// NewEmoteRepo wraps a DB as an EmoteRepository.
func NewEmoteRepo(db *DB) *EmoteRepo {
	return &EmoteRepo{db: db}
}

// Create inserts a new emote.
func (r *EmoteRepo) Create(ctx context.Context, e *domain.Emote) error {
	_, err := r.db.sql.ExecContext(ctx,
		`INSERT INTO emotes (id, name, tags, width, height, approved, public, animated, modifier, nsfw, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.Name, pq.StringArray(e.Tags), e.Width, e.Height, e.Approved,
		e.Public, e.Animated, e.Modifier, e.NSFW, e.UserID)
	return wrapErr(err)
}

// Get retrieves an emote by id.
func (r *EmoteRepo) Get(ctx context.Context, id domain.ID) (*domain.Emote, error) {
	row := r.db.sql.QueryRowContext(ctx,
		"SELECT "+emoteColumns+" FROM emotes WHERE id = $1", id)
	return scanEmote(row)
}

// GetWithUser retrieves an emote together with its owner.
func (r *EmoteRepo) GetWithUser(ctx context.Context, id domain.ID) (*domain.EmoteWithUser, error) {
	emote, err := r.Get(ctx, id)
	if err != nil || emote == nil {
		return nil, err
	}
	user, err := scanUser(r.db.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", emote.UserID))
	if err != nil {
		return nil, err
	}
	out := &domain.EmoteWithUser{Emote: *emote}
	if user != nil {
		out.User = *user
	}
	return out, nil
}

// GetMany retrieves the emotes with the given ids, in no particular order.
func (r *EmoteRepo) GetMany(ctx context.Context, ids []domain.ID) ([]domain.Emote, error) {
	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}

	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+emoteColumns+" FROM emotes WHERE id = ANY($1)", pq.Array(raw))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmotes(rows)
}

// Update applies the moderation flags; nil fields keep their value.
func (r *EmoteRepo) Update(ctx context.Context, id domain.ID, update domain.EmoteUpdate) (*domain.Emote, error) {
	row := r.db.sql.QueryRowContext(ctx,
		`UPDATE emotes
		 SET approved = COALESCE($1, approved), nsfw = COALESCE($2, nsfw)
		 WHERE id = $3
		 RETURNING `+emoteColumns,
		update.Approved, update.NSFW, id)
	return scanEmote(row)
}

// Delete removes an emote, reporting whether a row was deleted.
func (r *EmoteRepo) Delete(ctx context.Context, id domain.ID) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM emotes WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ListByUser returns all emotes owned by a user.
func (r *EmoteRepo) ListByUser(ctx context.Context, userID domain.ID) ([]domain.Emote, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+emoteColumns+" FROM emotes WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmotes(rows)
}

func collectEmotes(rows *sql.Rows) ([]domain.Emote, error) {
	emotes := []domain.Emote{}
	for rows.Next() {
		e, err := scanEmote(rows)
		if err != nil {
			return nil, err
		}
		emotes = append(emotes, *e)
	}
	return emotes, rows.Err()
}
