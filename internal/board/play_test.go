package board

import (
	"strings"
	"testing"
)

// step is one move of a scripted game and the result it must produce.
type step struct {
	move string
	want Result
}

func runSteps(t *testing.T, pos *Position, steps []step) {
	t.Helper()
	for i, s := range steps {
		m, err := ParseMove(s.move)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got := pos.Play(m.From, m.To, m.Promote); got != s.want {
			t.Fatalf("step %d %s: got %s, want %s%v", i, s.move, got, s.want, pos)
		}
	}
}

// setup builds a position from a list such as "Ke1 Rh1 ke8": uppercase
// letters are white pieces, lowercase black.
func setup(t *testing.T, side Color, pieces string) *Position {
	t.Helper()
	pos := NewEmptyPosition()
	pos.SideToMove = side
	for _, f := range strings.Fields(pieces) {
		pt, err := ParsePieceType(f[0])
		if err != nil {
			t.Fatalf("setup %q: %v", f, err)
		}
		sq, err := ParseSquare(f[1:])
		if err != nil {
			t.Fatalf("setup %q: %v", f, err)
		}
		c := Black
		if f[0] >= 'A' && f[0] <= 'Z' {
			c = White
		}
		pos.PlaceOccupant(NewOccupant(pt, c), sq)
	}
	return pos
}

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return sq
}

func TestRejectedFromStart(t *testing.T) {
	tests := []struct {
		name string
		from Square
		to   Square
		want Result
	}{
		{"empty from", Square{5, 3}, Square{5, 4}, NoPiece},
		{"sentinel from", NoSquare, Square{5, 4}, NoPiece},
		{"opponent piece", Square{1, 7}, Square{1, 6}, BadPiece},
		{"knight shape", Square{2, 1}, Square{2, 3}, BadMove},
		{"pawn triple step", Square{5, 2}, Square{5, 5}, BadMove},
		{"off board target", Square{1, 1}, NoSquare, BadMove},
		{"rook through pawn", Square{1, 1}, Square{1, 3}, Blocked},
		{"friendly target", Square{3, 1}, Square{4, 2}, Blocked},
		{"queen through pawn", Square{4, 1}, Square{8, 5}, Blocked},
		{"castle through pieces", Square{5, 1}, Square{7, 1}, Blocked},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := NewPosition()
			before := *pos
			if got := pos.Play(tc.from, tc.to, Pawn); got != tc.want {
				t.Errorf("Play(%v, %v) = %s, want %s", tc.from, tc.to, got, tc.want)
			}
			if *pos != before {
				t.Errorf("rejected move changed the position:%v", pos)
			}
		})
	}
}

func TestTurnsAlternate(t *testing.T) {
	pos := NewPosition()
	runSteps(t, pos, []step{
		{"a7a6", BadPiece},
		{"b1c3", OK},
	})
	if pos.SideToMove != Black {
		t.Fatalf("SideToMove = %s, want Black", pos.SideToMove)
	}
	runSteps(t, pos, []step{
		{"c3b5", BadPiece},
		{"g8f6", OK},
	})
	if pos.SideToMove != White {
		t.Fatalf("SideToMove = %s, want White", pos.SideToMove)
	}
}

func TestPawnMoves(t *testing.T) {
	pos := NewPosition()
	runSteps(t, pos, []step{
		{"a2a4", OK},
		{"a7a5", OK},
		{"a4a5", Blocked},
		{"e2e3", OK},
		{"e7e5", OK},
		{"e3e5", BadMove},
		{"g1f3", OK},
		{"h7h6", OK},
		{"f2f4", Blocked},
		{"d2d4", OK},
		{"h6h5", OK},
		{"d4e5", Capture},
	})

	e5 := pos.OccupantAt(mustSquare(t, "e5"))
	if !e5.Is(Pawn, White) || !e5.HasMoved {
		t.Errorf("e5 = %+v, want a moved white pawn", e5)
	}
}

func TestTwoStepFlags(t *testing.T) {
	pos := NewPosition()
	runSteps(t, pos, []step{{"e2e4", OK}})

	e4 := pos.OccupantAt(mustSquare(t, "e4"))
	if !e4.HasMoved || !e4.DidTwoStep || !e4.EnPassant {
		t.Fatalf("after e2e4: %+v", e4)
	}

	// A rejected move by the owner keeps the window open.
	runSteps(t, pos, []step{{"a7a6", OK}, {"e1e3", BadMove}})
	if !pos.OccupantAt(mustSquare(t, "e4")).EnPassant {
		t.Fatalf("rejected move closed the en passant window")
	}

	runSteps(t, pos, []step{{"e4e5", OK}})
	e5 := pos.OccupantAt(mustSquare(t, "e5"))
	if e5.DidTwoStep || e5.EnPassant {
		t.Errorf("after e4e5: %+v", e5)
	}
}

func TestEnPassant(t *testing.T) {
	pos := NewPosition()
	runSteps(t, pos, []step{
		{"e2e4", OK},
		{"a7a6", OK},
		{"e4e5", OK},
		{"d7d5", OK},
		{"e5d6", Capture},
	})

	if !pos.OccupantAt(mustSquare(t, "d5")).IsEmpty() {
		t.Errorf("captured pawn still on d5:%v", pos)
	}
	if !pos.OccupantAt(mustSquare(t, "d6")).Is(Pawn, White) {
		t.Errorf("white pawn not on d6:%v", pos)
	}
	if !pos.OccupantAt(mustSquare(t, "e5")).IsEmpty() {
		t.Errorf("e5 not vacated:%v", pos)
	}
	if pos.SideToMove != Black {
		t.Errorf("SideToMove = %s", pos.SideToMove)
	}
}

func TestEnPassantLapsed(t *testing.T) {
	pos := NewPosition()
	runSteps(t, pos, []step{
		{"e2e4", OK},
		{"a7a6", OK},
		{"e4e5", OK},
		{"d7d5", OK},
		{"h2h3", OK},
		{"h7h6", OK},
	})

	before := *pos
	runSteps(t, pos, []step{{"e5d6", Lapsed}})
	if *pos != before {
		t.Errorf("lapsed capture changed the position")
	}
}

func TestEnPassantNeedsVictim(t *testing.T) {
	pos := NewPosition()
	runSteps(t, pos, []step{
		{"e2e4", OK},
		{"a7a6", OK},
		{"e4f5", BadMove},
		{"e4e5", OK},
		{"d7d6", OK},
		{"e5f6", BadMove},
	})
}

func TestEnPassantExposesKing(t *testing.T) {
	pos := setup(t, Black, "Ka5 Pb5 pc7 rh5 ke8")
	runSteps(t, pos, []step{{"c7c5", OK}})

	before := *pos
	runSteps(t, pos, []step{{"b5c6", WouldCheck}})
	if *pos != before {
		t.Errorf("simulated en passant was not undone:%v", pos)
	}
}

func TestWouldCheckRestores(t *testing.T) {
	pos := NewPosition()
	runSteps(t, pos, []step{
		{"e2e4", OK},
		{"a7a6", OK},
		{"e4e5", OK},
		{"d7d5", OK},
	})

	before := *pos
	if pos.wouldCheck(mustSquare(t, "e5"), mustSquare(t, "d6")) {
		t.Errorf("en passant should not expose the king")
	}
	if pos.wouldCheck(mustSquare(t, "g1"), mustSquare(t, "f3")) {
		t.Errorf("knight move should not expose the king")
	}
	if *pos != before {
		t.Errorf("wouldCheck left the board modified:%v", pos)
	}
}

func TestCheck(t *testing.T) {
	pos := NewPosition()
	runSteps(t, pos, []step{
		{"f2f3", OK},
		{"e7e5", OK},
		{"g2g4", OK},
		{"d8h4", OK},
	})
	if !pos.InCheck() {
		t.Fatalf("white should be in check:%v", pos)
	}
	runSteps(t, pos, []step{
		{"a2a3", InCheck},
		{"g4g5", InCheck},
		{"e1f2", InCheck},
		{"e1e3", BadMove},
		{"h4h5", BadPiece},
	})
}

func TestCheckResults(t *testing.T) {
	tests := []struct {
		name   string
		pieces string
		move   string
		want   Result
	}{
		{"pinned bishop", "Ke1 Be2 re8 kh8", "e2d3", WouldCheck},
		{"king into check", "Ke1 rd8 kh8", "e1d1", WouldCheck},
		{"ignores check", "Ke1 Pa2 re8 kh8", "a2a3", InCheck},
		{"escapes check", "Ke1 re8 kh8", "e1d1", OK},
		{"blocks check", "Ke1 Nc3 re8 kh8", "c3e4", OK},
		{"captures checker", "Ke1 Rd2 re2 kh8", "d2e2", Capture},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := setup(t, White, tc.pieces)
			runSteps(t, pos, []step{{tc.move, tc.want}})
		})
	}
}

func TestPawnThreatsAreDiagonal(t *testing.T) {
	pos := setup(t, White, "Ke1 pe2 kh8")
	if pos.InCheck() {
		t.Errorf("pawn straight ahead of the king gives check")
	}
	pos = setup(t, White, "Ke1 pd2 kh8")
	if !pos.InCheck() {
		t.Errorf("pawn diagonal to the king gives no check")
	}
}

func TestCastling(t *testing.T) {
	t.Run("king side", func(t *testing.T) {
		pos := setup(t, White, "Ke1 Rh1 ke8")
		runSteps(t, pos, []step{{"e1g1", OK}})

		if !pos.OccupantAt(mustSquare(t, "g1")).Is(King, White) {
			t.Errorf("king not on g1:%v", pos)
		}
		rook := pos.OccupantAt(mustSquare(t, "f1"))
		if !rook.Is(Rook, White) || !rook.HasMoved {
			t.Errorf("f1 = %+v, want a moved white rook", rook)
		}
		for _, s := range []string{"e1", "h1"} {
			if !pos.OccupantAt(mustSquare(t, s)).IsEmpty() {
				t.Errorf("%s not vacated", s)
			}
		}
		if pos.SideToMove != Black {
			t.Errorf("SideToMove = %s", pos.SideToMove)
		}
	})

	t.Run("queen side", func(t *testing.T) {
		pos := setup(t, Black, "Ke1 ke8 ra8")
		runSteps(t, pos, []step{{"e8c8", OK}})
		if !pos.OccupantAt(mustSquare(t, "c8")).Is(King, Black) || !pos.OccupantAt(mustSquare(t, "d8")).Is(Rook, Black) {
			t.Errorf("queen side castling misplaced pieces:%v", pos)
		}
	})

	tests := []struct {
		name   string
		pieces string
		move   string
		want   Result
	}{
		{"bishop in the way", "Ke1 Rh1 Bf1 ke8", "e1g1", Blocked},
		{"enemy on target", "Ke1 Rh1 ng1 ke8", "e1g1", Blocked},
		{"knight next to rook", "Ke1 Ra1 Nb1 ke8", "e1c1", Blocked},
		{"in check", "Ke1 Rh1 re7 ke8", "e1g1", InCheck},
		{"crosses attacked square", "Ke1 Rh1 rf8 ke8", "e1g1", WouldCheck},
		{"lands on attacked square", "Ke1 Rh1 rg8 ke8", "e1g1", WouldCheck},
		{"no rook", "Ke1 ke8", "e1g1", BadMove},
		{"plain rook move", "Ke1 Rh1 ke8", "h1f1", OK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := setup(t, White, tc.pieces)
			runSteps(t, pos, []step{{tc.move, tc.want}})
		})
	}
}

func TestCastlingHasMoved(t *testing.T) {
	pos := setup(t, White, "Ke1 Rh1 ke8")
	runSteps(t, pos, []step{
		{"e1f1", OK},
		{"e8d8", OK},
		{"f1e1", OK},
		{"d8e8", OK},
		{"e1g1", HasMoved},
	})

	pos = NewPosition()
	runSteps(t, pos, []step{
		{"a2a4", OK},
		{"a7a5", OK},
		{"a4a5", Blocked},
		{"g2g3", OK},
		{"g7g6", OK},
		{"f1h3", OK},
		{"g8f6", OK},
		{"g1f3", OK},
		{"f8h6", OK},
		{"h1g1", OK},
		{"e7e6", OK},
		{"g1h1", OK},
		{"f6h5", OK},
		{"e1g1", HasMoved},
	})
}

func TestCastlingAfterDevelopment(t *testing.T) {
	pos := NewPosition()
	runSteps(t, pos, []step{
		{"d2d4", OK},
		{"d7d5", OK},
		{"b1c3", OK},
		{"b8c6", OK},
		{"c1f4", OK},
		{"c8f5", OK},
		{"d1d2", OK},
		{"d8d7", OK},
		{"e1c1", OK},
		{"e8c8", OK},
	})
	if !pos.OccupantAt(mustSquare(t, "d1")).Is(Rook, White) || !pos.OccupantAt(mustSquare(t, "d8")).Is(Rook, Black) {
		t.Errorf("rooks not relocated:%v", pos)
	}
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		move string
		want Result
	}{
		{"a7a8", BadPromote},
		{"a7a8p", BadPromote},
		{"a7a8k", BadPromote},
		{"a7a8q", OK},
		{"a7a8r", OK},
		{"a7a8n", OK},
		{"a7b8b", Capture},
	}
	for _, tc := range tests {
		t.Run(tc.move, func(t *testing.T) {
			pos := setup(t, White, "Ke1 Pa7 nb8 kh5")
			before := *pos
			runSteps(t, pos, []step{{tc.move, tc.want}})
			if !tc.want.Accepted() {
				if *pos != before {
					t.Errorf("rejected promotion changed the position")
				}
				return
			}
			m, _ := ParseMove(tc.move)
			o := pos.OccupantAt(m.To)
			if !o.Is(m.Promote, White) || !o.HasMoved {
				t.Errorf("%v = %+v, want a white %s", m.To, o, m.Promote)
			}
		})
	}

	pos := setup(t, Black, "Ke1 ka8 ph2")
	runSteps(t, pos, []step{{"h2h1r", OK}})
	if !pos.OccupantAt(mustSquare(t, "h1")).Is(Rook, Black) {
		t.Errorf("black promotion failed:%v", pos)
	}
}

func TestPromotionGame(t *testing.T) {
	pos := NewPosition()
	runSteps(t, pos, []step{
		{"b2b4", OK},
		{"f7f5", OK},
		{"b4b5", OK},
		{"f5f4", OK},
		{"c2c4", OK},
		{"f4f3", OK},
		{"c4c5", OK},
		{"b7b6", OK},
		{"c5b6", Capture},
		{"b8c6", OK},
		{"b6a7", Capture},
		{"a8b8", OK},
		{"a7b8b", Capture},
		{"f3e2", Capture},
		{"b8c7", Capture},
	})
	t.Log(pos)
}

func TestResultNames(t *testing.T) {
	want := []string{"capture", "ok", "no_piece", "bad_piece", "bad_move", "blocked",
		"lapsed", "in_check", "would_check", "has_moved", "bad_promote"}
	rs := Results()
	if len(rs) != len(want) {
		t.Fatalf("len(Results()) = %d", len(rs))
	}
	for i, r := range rs {
		if r.String() != want[i] {
			t.Errorf("Results()[%d] = %s, want %s", i, r, want[i])
		}
		if r.Accepted() != (i < 2) {
			t.Errorf("%s.Accepted() = %v", r, r.Accepted())
		}
	}
}
