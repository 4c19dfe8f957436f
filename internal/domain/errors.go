package domain

import "errors"

// Typed errors returned by the identity core and the application services.
// The HTTP adapter is the single place that maps these to status codes; raw
// store errors never reach a response.
var (
	// ErrUnauthorized indicates missing or malformed credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidToken indicates a bearer token that matches no session.
	ErrInvalidToken = errors.New("invalid bearer token")
	// ErrForbidden indicates a resolved identity without the needed capability.
	ErrForbidden = errors.New("forbidden")

	// ErrUnknownUser indicates a referenced user that does not exist.
	ErrUnknownUser = errors.New("unknown user")
	// ErrUnknownEmote indicates a referenced emote that does not exist.
	ErrUnknownEmote = errors.New("unknown emote")
	// ErrUnknownEmoteSet indicates a referenced emote set that does not exist.
	ErrUnknownEmoteSet = errors.New("unknown emote set")
	// ErrUnknownColor indicates a referenced color that does not exist.
	ErrUnknownColor = errors.New("unknown color")

	// ErrColorExists indicates a color name that is already taken.
	ErrColorExists = errors.New("color already exists")
	// ErrUserCannotAddSelf indicates a user adding themselves as an editor
	// of their own channel.
	ErrUserCannotAddSelf = errors.New("user cannot add themselves as an editor of their own channel")
)
