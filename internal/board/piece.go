package board

import (
	"errors"
	"fmt"
)

// ErrInvalidPiece is returned when a piece letter is not recognised.
var ErrInvalidPiece = errors.New("invalid piece letter")

// Color represents the owner of a piece, and the side to move.
type Color uint8

const (
	White Color = iota // moves first
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// forward is the rank direction pawns of c advance in.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

// homeRank is the back rank of c.
func (c Color) homeRank() int {
	if c == White {
		return 1
	}
	return 8
}

// PieceType represents the kind of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the lowercase letter of the piece type.
func (pt PieceType) Char() byte {
	if pt > King {
		return ' '
	}
	return "pnbrqk"[pt]
}

// ParsePieceType converts a piece letter (either case) to a PieceType.
func ParsePieceType(c byte) (PieceType, error) {
	switch c {
	case 'p', 'P':
		return Pawn, nil
	case 'n', 'N':
		return Knight, nil
	case 'b', 'B':
		return Bishop, nil
	case 'r', 'R':
		return Rook, nil
	case 'q', 'Q':
		return Queen, nil
	case 'k', 'K':
		return King, nil
	}
	return Pawn, fmt.Errorf("%w: %q", ErrInvalidPiece, c)
}

// Occupant is the content of one square. The zero value is an empty square.
type Occupant struct {
	Piece PieceType
	Color Color

	// HasMoved is set once the piece has moved.
	HasMoved bool
	// DidTwoStep is true for a pawn whose last move was a double step.
	DidTwoStep bool
	// EnPassant is true while the double-stepped pawn can still be
	// captured en passant.
	EnPassant bool

	occupied bool
}

// NewOccupant creates an unmoved piece.
func NewOccupant(pt PieceType, c Color) Occupant {
	return Occupant{Piece: pt, Color: c, occupied: true}
}

// IsEmpty returns true if no piece stands on the square.
func (o Occupant) IsEmpty() bool {
	return !o.occupied
}

// Is reports whether the occupant is a piece of type pt owned by c.
func (o Occupant) Is(pt PieceType, c Color) bool {
	return o.occupied && o.Piece == pt && o.Color == c
}

// String returns the piece letter, uppercase for white, or " " if empty.
func (o Occupant) String() string {
	if !o.occupied {
		return " "
	}
	if o.Color == White {
		return string(o.Piece.Char() - 'a' + 'A')
	}
	return string(o.Piece.Char())
}
