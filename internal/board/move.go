package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned when move text cannot be parsed.
var ErrInvalidMove = errors.New("invalid move text")

// Move is a requested move in coordinate form.
type Move struct {
	From    Square
	To      Square
	Promote PieceType // Pawn when no promotion was requested
}

// String returns the coordinate form of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promote != Pawn {
		s += string(m.Promote.Char())
	}
	return s
}

// ParseMove parses coordinate move text: "e2e4", "e7e8q" or "e2 e4".
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.Join(strings.Fields(s), ""))
	s = strings.ReplaceAll(s, "-", "")
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}

	m := Move{From: from, To: to}
	if len(s) == 5 {
		m.Promote, err = ParsePieceType(s[4])
		if err != nil {
			return Move{}, err
		}
	}
	return m, nil
}
