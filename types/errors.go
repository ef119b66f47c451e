package types

import "errors"

var (
	// ErrInvalidEnvironment is returned at construction time when the wrapped
	// environment does not expose a usable action space descriptor
	ErrInvalidEnvironment = errors.New("environment does not expose a valid action space")
	// ErrEnvironmentClosed is returned by any operation attempted after Close.
	// Only the closed instance is affected, copies remain usable
	ErrEnvironmentClosed = errors.New("environment is closed")
	// ErrNoLegalActions is returned when simulation mode is queried on a game
	// with an empty macro action table
	ErrNoLegalActions = errors.New("no legal actions available")
)
