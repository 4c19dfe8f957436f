package domain

import "context"

// EmoteSet is a named collection of emotes. Every user's channel set is an
// EmoteSet like any other; sub-sets reference their parent.
type EmoteSet struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	UserID   ID     `json:"user_id"`
	ParentID *ID    `json:"parent_id"`
}

// EmoteSetWithEmotes is an emote set with its member emotes embedded.
type EmoteSetWithEmotes struct {
	EmoteSet
	Emotes []Emote `json:"emotes"`
}

// EmoteSetUpdate carries the fields a PATCH may change; nil fields are left
// untouched.
type EmoteSetUpdate struct {
	Name     *string `json:"name"`
	Capacity *int    `json:"capacity"`
}

// EmoteSetRepository defines the port for emote set persistence operations.
// Lookups return (nil, nil) when no row matches.
type EmoteSetRepository interface {
	Create(ctx context.Context, set *EmoteSet) error
	Get(ctx context.Context, id ID) (*EmoteSet, error)
	GetWithEmotes(ctx context.Context, id ID) (*EmoteSetWithEmotes, error)
	Update(ctx context.Context, id ID, update EmoteSetUpdate) (*EmoteSet, error)
	Delete(ctx context.Context, id ID) (bool, error)
	AddEmote(ctx context.Context, setID, emoteID ID) error
	RemoveEmote(ctx context.Context, setID, emoteID ID) (bool, error)
	ListByUser(ctx context.Context, userID ID) ([]EmoteSet, error)
	ChannelForUser(ctx context.Context, userID ID) (*EmoteSet, error)
}
