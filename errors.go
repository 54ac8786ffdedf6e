package cubesim

import (
	"errors"

	"github.com/SeamusWaldron/cubesim/pkg/types"
)

// Sentinel errors for the cubesim package.
var (
	// ErrInvalidMove is returned by the strict entry points when a move
	// token is not recognised. Nothing is applied.
	ErrInvalidMove = errors.New("cubesim: invalid move")

	// ErrInvalidNotation marks a token that does not match the grammar.
	ErrInvalidNotation = types.ErrInvalidNotation
)
