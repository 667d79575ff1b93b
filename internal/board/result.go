package board

// Result is the outcome of Play. The values are listed in order of
// precedence: the first applicable one is returned.
type Result uint8

const (
	Capture    Result = iota // the move was legal and captured a piece
	OK                       // the move was legal and was performed
	NoPiece                  // there is no piece on the from square
	BadPiece                 // the piece on from belongs to the opponent
	BadMove                  // the piece cannot move that way
	Blocked                  // another piece is in the way
	Lapsed                   // en passant is no longer allowed
	InCheck                  // in check, and the move does not get out of it
	WouldCheck               // the move would place the mover in check
	HasMoved                 // a castling piece has already moved
	BadPromote               // promotion to a pawn or king was requested
)

var resultNames = [...]string{
	Capture:    "capture",
	OK:         "ok",
	NoPiece:    "no_piece",
	BadPiece:   "bad_piece",
	BadMove:    "bad_move",
	Blocked:    "blocked",
	Lapsed:     "lapsed",
	InCheck:    "in_check",
	WouldCheck: "would_check",
	HasMoved:   "has_moved",
	BadPromote: "bad_promote",
}

// Results lists every Result in precedence order.
func Results() []Result {
	rs := make([]Result, len(resultNames))
	for i := range rs {
		rs[i] = Result(i)
	}
	return rs
}

// String returns the snake_case name of the result.
func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "unknown"
}

// Accepted reports whether the move was performed.
func (r Result) Accepted() bool {
	return r == Capture || r == OK
}
