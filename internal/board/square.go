// Package board implements the chess rules engine: board representation,
// per-piece legality, obstruction, check detection and move application.
package board

import (
	"errors"
	"fmt"
)

// ErrInvalidSquare is returned when square text cannot be parsed.
var ErrInvalidSquare = errors.New("invalid square")

// Square is a (file, rank) coordinate on the board, each in 1..8.
// The zero value is NoSquare, the off-board sentinel.
type Square struct {
	File int
	Rank int
}

// NoSquare marks "off-board / none". Arithmetic that leaves the board
// collapses to it.
var NoSquare = Square{}

// allSquares lists all 64 squares rank-major, file-minor.
var allSquares = func() [64]Square {
	var sqs [64]Square
	i := 0
	for r := 1; r <= 8; r++ {
		for f := 1; f <= 8; f++ {
			sqs[i] = Square{File: f, Rank: r}
			i++
		}
	}
	return sqs
}()

// AllSquares returns every board square, rank 1 first, file a first within a rank.
func AllSquares() [64]Square {
	return allSquares
}

// NewSquare creates a square from 1-based file and rank, or NoSquare if
// either is out of range.
func NewSquare(file, rank int) Square {
	sq := Square{File: file, Rank: rank}
	if !sq.IsValid() {
		return NoSquare
	}
	return sq
}

// IsValid returns true if the square lies on the board.
func (sq Square) IsValid() bool {
	return sq.File >= 1 && sq.File <= 8 && sq.Rank >= 1 && sq.Rank <= 8
}

// Sub returns the displacement leading from other to sq.
func (sq Square) Sub(other Square) Offset {
	return Offset{File: sq.File - other.File, Rank: sq.Rank - other.Rank}
}

// Add returns sq displaced by o, or NoSquare if the result is off the board.
func (sq Square) Add(o Offset) Square {
	return NewSquare(sq.File+o.File, sq.Rank+o.Rank)
}

// String returns the algebraic name of the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File-1, '1'+sq.Rank-1)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	sq := Square{File: int(s[0]-'a') + 1, Rank: int(s[1]-'1') + 1}
	if !sq.IsValid() {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}

// Offset is the difference between two squares.
type Offset struct {
	File int
	Rank int
}

// Vert returns a purely vertical offset.
func Vert(n int) Offset {
	return Offset{Rank: n}
}

// Horiz returns a purely horizontal offset.
func Horiz(n int) Offset {
	return Offset{File: n}
}

// IsDiagonal reports |file| == |rank|.
func (o Offset) IsDiagonal() bool {
	return abs(o.File) == abs(o.Rank)
}

// IsStraight reports a zero file or rank component.
func (o Offset) IsStraight() bool {
	return o.File == 0 || o.Rank == 0
}

// Abs returns the offset with both components made non-negative.
func (o Offset) Abs() Offset {
	return Offset{File: abs(o.File), Rank: abs(o.Rank)}
}

// Unit normalises each nonzero component to +1 or -1.
func (o Offset) Unit() Offset {
	return Offset{File: sign(o.File), Rank: sign(o.Rank)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
