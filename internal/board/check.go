package board

// InCheck returns true if the side to move's king is attacked.
// A position without a king for the side to move is never in check.
func (p *Position) InCheck() bool {
	king := p.KingSquare()
	if king == NoSquare {
		return false
	}
	them := p.SideToMove.Other()
	for _, sq := range allSquares {
		o := p.board.At(sq)
		if o.IsEmpty() || o.Color != them {
			continue
		}
		if !p.canMove(sq, king, o.Piece, them) || p.isBlocked(sq, king, them) {
			continue
		}
		// Pawns only threaten diagonally.
		if o.Piece == Pawn && king.Sub(sq).IsStraight() {
			continue
		}
		return true
	}
	return false
}

// snapshot records the occupants of the squares a simulated move touches.
type snapshot struct {
	squares [3]Square
	saved   [3]Occupant
	n       int
}

func (p *Position) snapshot(squares ...Square) snapshot {
	var s snapshot
	for _, sq := range squares {
		if !sq.IsValid() || s.n == len(s.squares) {
			continue
		}
		s.squares[s.n] = sq
		s.saved[s.n] = p.board.At(sq)
		s.n++
	}
	return s
}

// restore writes the recorded occupants back in reverse order.
func (p *Position) restore(s snapshot) {
	for i := s.n - 1; i >= 0; i-- {
		p.board.Set(s.squares[i], s.saved[i])
	}
}

// wouldCheck reports whether moving from from to to would leave the side
// to move in check. The board is restored before returning.
func (p *Position) wouldCheck(from, to Square) bool {
	victim := NoSquare
	if p.isEnPassant(from, to) {
		victim = p.enPassantVictim(to)
	}

	s := p.snapshot(from, to, victim)
	defer p.restore(s)

	if victim != NoSquare {
		p.board.Set(victim, Occupant{})
	}
	p.relocate(from, to)
	return p.InCheck()
}
