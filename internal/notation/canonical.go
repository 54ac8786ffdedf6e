// Package notation parses and formats whole move sequences.
package notation

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubesim/pkg/types"
)

// TokenError reports a malformed token within a sequence.
type TokenError struct {
	Index int    // position of the token in the sequence, from 0
	Token string // the offending token
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// ParseSequence parses a whitespace-separated sequence of moves. Every
// token must be valid; the first malformed one is reported as a
// *TokenError and no moves are returned.
func ParseSequence(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for i, part := range parts {
		move, err := types.ParseMove(part)
		if err != nil {
			return nil, &TokenError{Index: i, Token: part, Err: err}
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// ParseLenient parses a sequence, skipping tokens that do not parse.
// The skipped tokens are returned alongside the moves.
func ParseLenient(tokens []string) (moves []types.Move, skipped []string) {
	moves = make([]types.Move, 0, len(tokens))
	for _, tok := range tokens {
		move, err := types.ParseMove(tok)
		if err != nil {
			skipped = append(skipped, tok)
			continue
		}
		moves = append(moves, move)
	}
	return moves, skipped
}

// FormatSequence formats a slice of moves as a space-separated string.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Tokens returns the notation of each move.
func Tokens(moves []types.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

// Invert returns the sequence that undoes moves: reversed, each move inverted.
func Invert(moves []types.Move) []types.Move {
	out := make([]types.Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
