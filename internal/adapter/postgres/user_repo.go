package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"orbit/internal/domain"
)

const userColumns = "id, twitch_id, username, avatar_url, roles, badge_url, color_id, channel_set_id"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u     domain.User
		roles pq.StringArray
	)
	err := row.Scan(&u.ID, &u.TwitchID, &u.Username, &u.AvatarURL, &roles,
		&u.BadgeURL, &u.ColorID, &u.ChannelSetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.Roles = make([]domain.Role, len(roles))
	for i, r := range roles {
		u.Roles[i] = domain.Role(r)
	}
	return &u, nil
}

func rolesArray(roles []domain.Role) pq.StringArray {
	out := make(pq.StringArray, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// UserRepo implements user repository operations on DB.
type UserRepo struct {
	db *DB
}

// NewUserRepo wraps a DB as a UserRepository.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByID retrieves a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	row := r.db.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

// GetByTwitchID retrieves a user by their Twitch account id.
func (r *UserRepo) GetByTwitchID(ctx context.Context, twitchID int64) (*domain.User, error) {
	row := r.db.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE twitch_id = $1", twitchID)
	return scanUser(row)
}

// Create inserts the user and their channel set in one transaction. The
// users/sets foreign keys are deferred, so the circular reference resolves
// at commit.
func (r *UserRepo) Create(ctx context.Context, user *domain.User, channelSet *domain.EmoteSet) error {
	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO sets (id, name, capacity, user_id) VALUES ($1, $2, $3, $4)",
		channelSet.ID, channelSet.Name, channelSet.Capacity, channelSet.UserID)
	if err != nil {
		return wrapErr(err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, twitch_id, username, avatar_url, roles, badge_url, color_id, channel_set_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.TwitchID, user.Username, user.AvatarURL,
		rolesArray(user.Roles), user.BadgeURL, user.ColorID, user.ChannelSetID)
	if err != nil {
		return wrapErr(err)
	}

	return wrapErr(tx.Commit())
}

// ListEditors returns the editors of a user's channel.
func (r *UserRepo) ListEditors(ctx context.Context, id domain.ID) ([]domain.User, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT editor.id, editor.twitch_id, editor.username, editor.avatar_url,
		        editor.roles, editor.badge_url, editor.color_id, editor.channel_set_id
		 FROM users
		 JOIN users_to_editors AS m2m ON users.id = m2m.user_id
		 JOIN users AS editor ON editor.id = m2m.editor_id
		 WHERE users.id = $1
		 ORDER BY editor.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	editors := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		editors = append(editors, *u)
	}
	return editors, rows.Err()
}

// AddEditor adds an editor to a user's channel. Re-adding an existing editor
// is a no-op; self-insertion violates the user_cannot_add_self constraint.
func (r *UserRepo) AddEditor(ctx context.Context, userID, editorID domain.ID) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO users_to_editors (user_id, editor_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		userID, editorID)
	return wrapErr(err)
}

// RemoveEditor removes an editor from a user's channel, reporting whether a
// row was deleted.
func (r *UserRepo) RemoveEditor(ctx context.Context, userID, editorID domain.ID) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM users_to_editors WHERE user_id = $1 AND editor_id = $2",
		userID, editorID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
