package cubesim

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// Session holds a current cube and the moves applied to it. It is the
// stateful layer on top of the pure functions in this package and is not
// safe for concurrent use.
type Session struct {
	id        string
	state     State
	history   []string
	cfg       *config
	scrambler *cube.Scrambler
	log       *slog.Logger
	onMove    func(token string, s State)
}

// NewSession creates a session starting from the solved state.
func NewSession(opts ...Option) *Session {
	cfg := newConfig(opts)
	id := uuid.New().String()
	return &Session{
		id:        id,
		state:     Initialize(),
		cfg:       cfg,
		scrambler: cfg.scrambler(),
		log:       cfg.logger.With("session_id", id),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// OnMove sets a callback that fires after every applied move, including
// each move of a scramble.
func (s *Session) OnMove(cb func(token string, state State)) {
	s.onMove = cb
}

// Move applies one token. In strict mode an unknown token returns
// ErrInvalidMove; otherwise it is ignored and Move returns nil.
func (s *Session) Move(token string) error {
	m, err := ParseMove(token)
	if err != nil {
		if s.cfg.strict {
			return fmt.Errorf("%w: %w", ErrInvalidMove, err)
		}
		s.log.Warn("ignoring unknown move", "token", token)
		return nil
	}
	s.apply(m)
	return nil
}

// Moves applies several tokens in order, stopping at the first error.
func (s *Session) Moves(tokens ...string) error {
	for _, tok := range tokens {
		if err := s.Move(tok); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) apply(m Move) {
	s.state = cube.ApplyMove(s.state, m)
	tok := m.Notation()
	if s.cfg.moveHistory {
		s.history = append(s.history, tok)
	}
	s.log.Debug("move applied", "move", tok)
	if s.onMove != nil {
		s.onMove(tok, s.state)
	}
}

// Scramble applies steps random moves and appends them to the history.
// It returns the moves applied.
func (s *Session) Scramble(steps int) []string {
	_, moves := s.scrambler.Scramble(s.state, steps)
	tokens := make([]string, len(moves))
	for i, m := range moves {
		s.apply(m)
		tokens[i] = m.Notation()
	}
	s.log.Info("scrambled", "steps", len(tokens))
	return tokens
}

// Reset returns the session to the solved state with an empty history.
func (s *Session) Reset() {
	s.state = Initialize()
	s.history = nil
	s.log.Info("reset")
}

// State returns the current cube.
func (s *Session) State() State {
	return s.state
}

// History returns a copy of the applied move tokens.
func (s *Session) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// IsSolved returns true if the current cube is solved.
func (s *Session) IsSolved() bool {
	return s.state.IsSolved()
}

// String returns the unfolded net of the current cube.
func (s *Session) String() string {
	return s.state.String()
}
