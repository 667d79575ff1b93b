package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/render"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
	ErrorColor     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255}, // Light gray
		ErrorColor:     color.RGBA{240, 120, 120, 255},
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites     *SpriteManager
	theme       *Theme
	squareSize  int
	flipped     bool
	coordinates bool
}

// NewRenderer creates a new renderer.
func NewRenderer(squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		squareSize: squareSize,
	}
}

// SetFlipped draws the board from Black's side when flipped is true.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// SetCoordinates toggles file and rank labels.
func (r *Renderer) SetCoordinates(on bool) {
	r.coordinates = on
}

// BoardSize returns the board size in pixels.
func (r *Renderer) BoardSize() int {
	return 8 * r.squareSize
}

// DrawBoard draws the chess board squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := float32(r.squareSize)
	for _, sq := range board.AllSquares() {
		x, y := r.SquareToScreen(sq)
		c := r.theme.LightSquare
		if (sq.File+sq.Rank)%2 == 0 {
			c = r.theme.DarkSquare
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
	}
	if r.coordinates {
		r.drawCoordinates(screen)
	}
}

// drawCoordinates labels the bottom row with files and the left column with ranks.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	for i := 1; i <= 8; i++ {
		x, y := r.SquareToScreen(board.NewSquare(i, r.bottomRank()))
		drawText(screen, string(rune('a'+i-1)), regularFace,
			float64(x+r.squareSize-12), float64(y+r.squareSize-18), r.theme.Background)

		x, y = r.SquareToScreen(board.NewSquare(r.leftFile(), i))
		drawText(screen, string(rune('0'+i)), regularFace, float64(x+3), float64(y+2), r.theme.Background)
	}
}

func (r *Renderer) bottomRank() int {
	if r.flipped {
		return 8
	}
	return 1
}

func (r *Renderer) leftFile() int {
	if r.flipped {
		return 8
	}
	return 1
}

// HighlightSquare draws a colored overlay on a square.
func (r *Renderer) HighlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	size := float32(r.squareSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}

// DrawPieces draws every occupant read from b.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b render.OccupantReader) {
	for _, sq := range board.AllSquares() {
		o := b.OccupantAt(sq)
		if o.IsEmpty() {
			continue
		}
		x, y := r.SquareToScreen(sq)
		r.sprites.DrawPieceAt(screen, o, x, y)
	}
}

// SquareToScreen converts a board square to screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	return squareOrigin(sq, r.squareSize, r.flipped)
}

// SquareSize returns the edge of one square in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Flipped reports whether Black is at the bottom.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
