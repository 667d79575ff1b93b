package board

// canMove reports whether a piece of type pt owned by c may move from
// from to to by its movement pattern alone. Obstruction and self-check
// are checked separately.
func (p *Position) canMove(from, to Square, pt PieceType, c Color) bool {
	m := to.Sub(from)
	switch pt {
	case Pawn:
		return p.canMovePawn(from, to, c)
	case Knight:
		a := m.Abs()
		return (a.File == 1 && a.Rank == 2) || (a.File == 2 && a.Rank == 1)
	case Bishop:
		return m.IsDiagonal()
	case Rook:
		return m.IsStraight()
	case Queen:
		return m.IsStraight() || m.IsDiagonal()
	case King:
		return p.canMoveKing(from, to, c)
	}
	return false
}

func (p *Position) canMovePawn(from, to Square, c Color) bool {
	m := to.Sub(from)
	fwd := c.forward()

	if m == Vert(fwd) {
		return true
	}
	if m == Vert(2*fwd) && !p.board.At(from).HasMoved {
		return true
	}
	if m == (Offset{1, fwd}) || m == (Offset{-1, fwd}) {
		if !p.board.At(to).IsEmpty() {
			return true
		}
		// En passant shape, possibly lapsed.
		victim := p.board.At(to.Add(Vert(-fwd)))
		return !victim.IsEmpty() && victim.Color != c && victim.DidTwoStep
	}
	return false
}

func (p *Position) canMoveKing(from, to Square, c Color) bool {
	if p.isCastling(from, to, c) {
		return true
	}
	a := to.Sub(from).Abs()
	return a.File <= 1 && a.Rank <= 1
}

// isBlocked reports whether the move from from to to is obstructed for a
// piece owned by c: a friendly destination, a pawn advancing onto a piece,
// an occupied square strictly between the endpoints of a line move, or an
// occupied rook path when castling.
func (p *Position) isBlocked(from, to Square, c Color) bool {
	mover := p.board.At(from)
	target := p.board.At(to)
	m := to.Sub(from)

	if !target.IsEmpty() {
		if target.Color == c {
			return true
		}
		if mover.Piece == Pawn && m.IsStraight() {
			return true
		}
	}

	if m.IsStraight() || m.IsDiagonal() {
		dir := m.Unit()
		for sq := from.Add(dir); sq.IsValid() && sq != to; sq = sq.Add(dir) {
			if !p.board.At(sq).IsEmpty() {
				return true
			}
		}
	}

	if p.isCastling(from, to, c) {
		if !target.IsEmpty() {
			return true
		}
		// Queen side: the rook also crosses the square next to the king's target.
		if m.File < 0 && !p.board.At(to.Add(Horiz(-1))).IsEmpty() {
			return true
		}
	}
	return false
}
