package board

// Play validates the move from from to to for the side to move and, if it
// is legal, performs it and passes the turn. promote is the piece a pawn
// reaching the last rank becomes; it is ignored for other moves.
//
// Any result other than Capture or OK leaves the position untouched.
func (p *Position) Play(from, to Square, promote PieceType) Result {
	us := p.SideToMove
	wasChecked := p.InCheck()

	mover := p.board.At(from)
	if mover.IsEmpty() {
		return NoPiece
	}
	if mover.Color != us {
		return BadPiece
	}
	if !to.IsValid() || !p.canMove(from, to, mover.Piece, us) {
		return BadMove
	}
	if p.isBlocked(from, to, us) {
		return Blocked
	}
	if p.isLapsed(from, to) {
		return Lapsed
	}

	castling := p.isCastling(from, to, us)
	if castling {
		if wasChecked {
			return InCheck
		}
		if p.wouldCheckCastling(from, to) {
			return WouldCheck
		}
		if p.castlingHasMoved(from, to) {
			return HasMoved
		}
	} else if p.wouldCheck(from, to) {
		if wasChecked {
			return InCheck
		}
		return WouldCheck
	}

	promotion := p.isPromotion(from, to)
	if promotion && !isValidPromotion(promote) {
		return BadPromote
	}

	// All checks passed; from here on the position is mutated.
	enPassant := p.isEnPassant(from, to)
	result := OK
	if !p.board.At(to).IsEmpty() || enPassant {
		result = Capture
	}

	p.restartLapses(us)
	if promotion {
		p.applyPromotion(from, promote)
	}
	if enPassant {
		p.board.Set(p.enPassantVictim(to), Occupant{})
	}
	p.setFlags(from, to)
	if castling {
		p.makeCastling(from, to)
	} else {
		p.relocate(from, to)
	}
	p.swapSide()
	return result
}
