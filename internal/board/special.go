package board

// enPassantVictim returns the square of the pawn captured by an en passant
// move of the side to move landing on to.
func (p *Position) enPassantVictim(to Square) Square {
	return to.Add(Vert(-p.SideToMove.forward()))
}

// enPassantShape reports a diagonal pawn step by the side to move onto an
// empty square next to an opponent pawn that has just double-stepped,
// whether or not its capture window is still open.
func (p *Position) enPassantShape(from, to Square) (Occupant, bool) {
	mover := p.board.At(from)
	if mover.IsEmpty() || mover.Piece != Pawn {
		return Occupant{}, false
	}
	m := to.Sub(from)
	if m.Abs() != (Offset{1, 1}) || !p.board.At(to).IsEmpty() {
		return Occupant{}, false
	}
	victim := p.board.At(p.enPassantVictim(to))
	if victim.IsEmpty() || victim.Piece != Pawn || victim.Color == p.SideToMove || !victim.DidTwoStep {
		return Occupant{}, false
	}
	return victim, true
}

// isEnPassant reports an en passant capture that is still allowed.
func (p *Position) isEnPassant(from, to Square) bool {
	victim, ok := p.enPassantShape(from, to)
	return ok && victim.EnPassant
}

// isLapsed reports an en passant capture whose window has closed.
func (p *Position) isLapsed(from, to Square) bool {
	victim, ok := p.enPassantShape(from, to)
	return ok && !victim.EnPassant
}

// restartLapses closes the en passant window of every pawn of c.
func (p *Position) restartLapses(c Color) {
	for _, sq := range allSquares {
		o := p.board.At(sq)
		if o.Is(Pawn, c) && o.EnPassant {
			o.EnPassant = false
			p.board.Set(sq, o)
		}
	}
}

// isCastling reports whether moving from from to to is a castling move
// for c: the king on its home square moving two files towards a rook of
// its own on the corner.
func (p *Position) isCastling(from, to Square, c Color) bool {
	home := c.homeRank()
	if from != (Square{5, home}) || !p.board.At(from).Is(King, c) {
		return false
	}
	switch to.Sub(from) {
	case Horiz(2):
		return p.board.At(Square{8, home}).Is(Rook, c)
	case Horiz(-2):
		return p.board.At(Square{1, home}).Is(Rook, c)
	}
	return false
}

// castlingRook returns the rook's origin and destination for a castling
// king move from from to to.
func castlingRook(from, to Square) (Square, Square) {
	if to.File > from.File {
		return Square{8, from.Rank}, Square{6, from.Rank}
	}
	return Square{1, from.Rank}, Square{4, from.Rank}
}

// wouldCheckCastling reports whether the king would stand in check on
// either square it crosses.
func (p *Position) wouldCheckCastling(from, to Square) bool {
	step := Horiz(to.Sub(from).Unit().File)
	return p.wouldCheck(from, from.Add(step)) || p.wouldCheck(from, from.Add(step).Add(step))
}

// castlingHasMoved reports whether the king or the castling rook has moved.
func (p *Position) castlingHasMoved(from, to Square) bool {
	rook, _ := castlingRook(from, to)
	return p.board.At(from).HasMoved || p.board.At(rook).HasMoved
}

// makeCastling relocates the rook and then the king.
func (p *Position) makeCastling(from, to Square) {
	rookFrom, rookTo := castlingRook(from, to)
	rook := p.board.At(rookFrom)
	rook.HasMoved = true
	p.board.Set(rookFrom, Occupant{})
	p.board.Set(rookTo, rook)
	p.relocate(from, to)
}

// isPromotion reports a pawn move onto the last rank.
func (p *Position) isPromotion(from, to Square) bool {
	o := p.board.At(from)
	return !o.IsEmpty() && o.Piece == Pawn && (to.Rank == 1 || to.Rank == 8)
}

// isValidPromotion reports whether a pawn may become pt.
func isValidPromotion(pt PieceType) bool {
	return pt != Pawn && pt != King && pt <= Queen
}

// applyPromotion rewrites the piece type on at, keeping owner and flags.
func (p *Position) applyPromotion(at Square, pt PieceType) {
	o := p.board.At(at)
	o.Piece = pt
	p.board.Set(at, o)
}

// setFlags updates the flags of the piece about to move from from to to.
func (p *Position) setFlags(from, to Square) {
	o := p.board.At(from)
	if o.Piece == Pawn {
		twoStep := to.Sub(from).Abs() == Vert(2)
		o.DidTwoStep = twoStep
		o.EnPassant = twoStep
	}
	o.HasMoved = true
	p.board.Set(from, o)
}
