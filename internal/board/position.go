package board

import "strings"

// Board is an 8x8 grid of occupants indexed [file-1][rank-1].
type Board [8][8]Occupant

// At returns the occupant of sq. Off-board squares read as empty.
func (b *Board) At(sq Square) Occupant {
	if !sq.IsValid() {
		return Occupant{}
	}
	return b[sq.File-1][sq.Rank-1]
}

// Set writes the occupant of sq. Off-board writes are ignored.
func (b *Board) Set(sq Square, o Occupant) {
	if !sq.IsValid() {
		return
	}
	b[sq.File-1][sq.Rank-1] = o
}

// Position is a complete game state: the board plus the side to move.
type Position struct {
	board      Board
	SideToMove Color
}

// backRank is the file order of the pieces on ranks 1 and 8.
var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewPosition creates the starting position with White to move.
func NewPosition() *Position {
	p := NewEmptyPosition()
	for f := 1; f <= 8; f++ {
		p.PlaceOccupant(NewOccupant(Pawn, White), Square{f, 2})
		p.PlaceOccupant(NewOccupant(Pawn, Black), Square{f, 7})
		p.PlaceOccupant(NewOccupant(backRank[f-1], White), Square{f, 1})
		p.PlaceOccupant(NewOccupant(backRank[f-1], Black), Square{f, 8})
	}
	return p
}

// NewEmptyPosition creates a board with no pieces and White to move.
func NewEmptyPosition() *Position {
	return &Position{SideToMove: White}
}

// Copy creates an independent copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// OccupantAt returns the occupant of sq; NoSquare yields an empty occupant.
func (p *Position) OccupantAt(sq Square) Occupant {
	return p.board.At(sq)
}

// PlaceOccupant puts o on sq without any legality checks. It is meant for
// setting up positions, not for playing moves.
func (p *Position) PlaceOccupant(o Occupant, sq Square) {
	p.board.Set(sq, o)
}

// KingSquare returns the square of the side to move's king, or NoSquare
// if it has none.
func (p *Position) KingSquare() Square {
	for _, sq := range allSquares {
		if p.board.At(sq).Is(King, p.SideToMove) {
			return sq
		}
	}
	return NoSquare
}

// swapSide passes the turn to the opponent.
func (p *Position) swapSide() {
	p.SideToMove = p.SideToMove.Other()
}

// relocate moves whatever stands on from to to, leaving from empty.
func (p *Position) relocate(from, to Square) {
	p.board.Set(to, p.board.At(from))
	p.board.Set(from, Occupant{})
}

// String returns a diagram of the position, rank 8 on top.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for rank := 8; rank >= 1; rank-- {
		sb.WriteByte(byte('0' + rank))
		sb.WriteString("  ")
		for file := 1; file <= 8; file++ {
			o := p.board.At(Square{file, rank})
			if o.IsEmpty() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(o.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	sb.WriteString("Side to move: " + p.SideToMove.String() + "\n")
	return sb.String()
}
