// Package game wraps a board.Position in a session that is safe for
// concurrent use, logs every move and reports outcomes to a recorder.
package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/hailam/chessrules/internal/board"
)

// ErrRejected is wrapped by MoveError when the engine refuses a move.
var ErrRejected = errors.New("move rejected")

// MoveError describes a move the engine refused.
type MoveError struct {
	Move   board.Move
	Result board.Result
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s: %s", e.Move, e.Result)
}

func (e *MoveError) Unwrap() error {
	return ErrRejected
}

// Recorder receives the outcome of every played move.
type Recorder interface {
	RecordResult(r board.Result) error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger moves are reported to. A nil logger
// discards the reports.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		s.logger = l
	}
}

// WithRecorder sets the recorder outcomes are reported to.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// Session owns one game. Every method takes the session lock, so the
// position is only ever observed between moves.
type Session struct {
	mu       sync.Mutex
	pos      *board.Position
	lastMove board.Move
	moved    bool

	logger   *log.Logger
	recorder Recorder
}

// NewSession starts a game from the initial position.
func NewSession(opts ...Option) *Session {
	s := &Session{
		pos:    board.NewPosition(),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Play performs a move and returns its outcome.
func (s *Session) Play(from, to board.Square, promote board.PieceType) board.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.play(board.Move{From: from, To: to, Promote: promote})
}

func (s *Session) play(m board.Move) board.Result {
	side := s.pos.SideToMove
	r := s.pos.Play(m.From, m.To, m.Promote)
	s.logger.Printf("%s move %s: %s", side, m, r)

	if r.Accepted() {
		s.lastMove = m
		s.moved = true
	}
	if s.recorder != nil {
		if err := s.recorder.RecordResult(r); err != nil {
			s.logger.Printf("Warning: failed to record result: %v", err)
		}
	}
	return r
}

// Move parses coordinate move text and plays it. A refused move returns
// its result together with a *MoveError.
func (s *Session) Move(text string) (board.Result, error) {
	m, err := board.ParseMove(text)
	if err != nil {
		return board.BadMove, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.play(m)
	if !r.Accepted() {
		return r, &MoveError{Move: m, Result: r}
	}
	return r, nil
}

// OccupantAt returns the occupant of sq.
func (s *Session) OccupantAt(sq board.Square) board.Occupant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.OccupantAt(sq)
}

// PlaceOccupant puts o on sq without any legality checks.
func (s *Session) PlaceOccupant(o board.Occupant, sq board.Square) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos.PlaceOccupant(o, sq)
}

// SideToMove returns the color whose turn it is.
func (s *Session) SideToMove() board.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.SideToMove
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.InCheck()
}

// KingSquare returns the square of the side to move's king.
func (s *Session) KingSquare() board.Square {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.KingSquare()
}

// LastMove returns the last accepted move, if any.
func (s *Session) LastMove() (board.Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMove, s.moved
}

// Snapshot returns a copy of the current position.
func (s *Session) Snapshot() *board.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.Copy()
}

// Reset starts a new game from the initial position.
func (s *Session) Reset() {
	s.reset(board.NewPosition())
}

// Clear empties the board, leaving White to move.
func (s *Session) Clear() {
	s.reset(board.NewEmptyPosition())
}

func (s *Session) reset(pos *board.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = pos
	s.lastMove = board.Move{}
	s.moved = false
}
