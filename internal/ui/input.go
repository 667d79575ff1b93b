package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hailam/chessrules/internal/board"
)

// InputHandler tracks the pointer and turns clicks into board squares.
type InputHandler struct {
	mouseX, mouseY  int
	leftJustPressed bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update samples the pointer. Call this once per frame.
func (ih *InputHandler) Update() {
	ih.mouseX, ih.mouseY = ebiten.CursorPosition()
	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// ClickedSquare returns the square clicked this frame, or NoSquare when
// there was no click or it landed outside the board.
func (ih *InputHandler) ClickedSquare(squareSize int, flipped bool) board.Square {
	if !ih.leftJustPressed {
		return board.NoSquare
	}
	return squareAt(ih.mouseX, ih.mouseY, squareSize, flipped)
}

// squareAt maps pixel coordinates to a square. Rank 1 is at the bottom
// unless the board is flipped.
func squareAt(x, y, squareSize int, flipped bool) board.Square {
	size := 8 * squareSize
	if squareSize <= 0 || x < 0 || x >= size || y < 0 || y >= size {
		return board.NoSquare
	}
	col, row := x/squareSize, y/squareSize
	if flipped {
		return board.NewSquare(8-col, row+1)
	}
	return board.NewSquare(col+1, 8-row)
}

// squareOrigin returns the top-left pixel of sq.
func squareOrigin(sq board.Square, squareSize int, flipped bool) (int, int) {
	col, row := sq.File-1, 8-sq.Rank
	if flipped {
		col, row = 8-sq.File, sq.Rank-1
	}
	return col * squareSize, row * squareSize
}

// IsKeyJustPressed reports whether key went down this frame.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
