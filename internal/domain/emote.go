package domain

import "context"

// Emote is a single emote image owned by a user.
type Emote struct {
	ID       ID       `json:"id"`
	Name     string   `json:"name"`
	Tags     []string `json:"tags"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Approved bool     `json:"approved"`
	Public   bool     `json:"public"`
	Animated bool     `json:"animated"`
	Modifier bool     `json:"modifier"`
	NSFW     bool     `json:"nsfw"`
	UserID   ID       `json:"user_id"`
}

// EmoteWithUser is an emote with its owner embedded.
type EmoteWithUser struct {
	Emote
	User User `json:"user"`
}

// EmoteUpdate carries the moderation flags a PATCH may change; nil fields
// are left untouched.
type EmoteUpdate struct {
	Approved *bool `json:"approved"`
	NSFW     *bool `json:"nsfw"`
}

// EmoteRepository defines the port for emote persistence operations.
// Lookups return (nil, nil) when no row matches.
type EmoteRepository interface {
	Create(ctx context.Context, emote *Emote) error
	Get(ctx context.Context, id ID) (*Emote, error)
	GetWithUser(ctx context.Context, id ID) (*EmoteWithUser, error)
	GetMany(ctx context.Context, ids []ID) ([]Emote, error)
	Update(ctx context.Context, id ID, update EmoteUpdate) (*Emote, error)
	Delete(ctx context.Context, id ID) (bool, error)
	ListByUser(ctx context.Context, userID ID) ([]Emote, error)
}

// EmoteIndex is the port to the external search index.
type EmoteIndex interface {
	Index(ctx context.Context, emote *Emote) error
	Remove(ctx context.Context, id ID) error
	Search(ctx context.Context, query string, limit int) ([]ID, error)
}
