package ui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hailam/chessrules/internal/storage"
)

// StatusHeight is the height of the status bar under the board.
const StatusHeight = 32

// promotionKeys maps keys to promotion choices.
var promotionKeys = map[ebiten.Key]board.PieceType{
	ebiten.KeyQ: board.Queen,
	ebiten.KeyR: board.Rook,
	ebiten.KeyB: board.Bishop,
	ebiten.KeyN: board.Knight,
}

// Game implements ebiten.Game interface.
type Game struct {
	session *game.Session

	// UI state
	selected board.Square
	promote  board.PieceType
	status   string
	rejected bool

	// Storage
	storage *storage.Storage
	prefs   *storage.Preferences

	// Components
	renderer *Renderer
	input    *InputHandler
}

// NewGame creates the board view over session. store may be nil.
func NewGame(session *game.Session, squareSize int, prefs *storage.Preferences, store *storage.Storage) *Game {
	if prefs == nil {
		prefs = storage.DefaultPreferences()
	}
	g := &Game{
		session:  session,
		selected: board.NoSquare,
		promote:  board.Queen,
		storage:  store,
		prefs:    prefs,
		renderer: NewRenderer(squareSize),
		input:    NewInputHandler(),
	}
	g.renderer.SetFlipped(prefs.Flipped)
	g.renderer.SetCoordinates(prefs.Coordinates)
	g.status = g.turnStatus()
	return g
}

// ScreenSize returns the window size in pixels.
func (g *Game) ScreenSize() (int, int) {
	return g.renderer.BoardSize(), g.renderer.BoardSize() + StatusHeight
}

// savePreferences persists the viewer preferences.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()

	for key, pt := range promotionKeys {
		if IsKeyJustPressed(key) {
			g.promote = pt
			g.status = fmt.Sprintf("promote to %s", pt)
		}
	}

	switch {
	case IsKeyJustPressed(ebiten.KeyF):
		g.prefs.Flipped = !g.prefs.Flipped
		g.renderer.SetFlipped(g.prefs.Flipped)
		g.savePreferences()
	case IsKeyJustPressed(ebiten.KeyC):
		g.prefs.Coordinates = !g.prefs.Coordinates
		g.renderer.SetCoordinates(g.prefs.Coordinates)
		g.savePreferences()
	case IsKeyJustPressed(ebiten.KeyEscape):
		g.selected = board.NoSquare
	case IsKeyJustPressed(ebiten.KeyF2):
		g.session.Reset()
		g.selected = board.NoSquare
		g.rejected = false
		g.status = g.turnStatus()
	}

	if sq := g.input.ClickedSquare(g.renderer.SquareSize(), g.renderer.Flipped()); sq != board.NoSquare {
		g.handleClick(sq)
	}
	return nil
}

// handleClick selects a piece of the side to move, or plays the selected
// piece to the clicked square.
func (g *Game) handleClick(sq board.Square) {
	o := g.session.OccupantAt(sq)
	own := !o.IsEmpty() && o.Color == g.session.SideToMove()

	if own {
		if g.selected == sq {
			g.selected = board.NoSquare
		} else {
			g.selected = sq
		}
		return
	}
	if g.selected == board.NoSquare {
		return
	}

	from := g.selected
	r := g.session.Play(from, sq, g.promote)
	g.selected = board.NoSquare
	g.rejected = !r.Accepted()
	if g.rejected {
		g.status = fmt.Sprintf("%s%s: %s", from, sq, r)
		return
	}
	g.status = g.turnStatus()
}

func (g *Game) turnStatus() string {
	s := fmt.Sprintf("%s to move", g.session.SideToMove())
	if g.session.InCheck() {
		s += " (check)"
	}
	return s
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	theme := g.renderer.Theme()
	screen.Fill(theme.Background)

	g.renderer.DrawBoard(screen)

	if m, ok := g.session.LastMove(); ok {
		g.renderer.HighlightSquare(screen, m.From, theme.LastMoveColor)
		g.renderer.HighlightSquare(screen, m.To, theme.LastMoveColor)
	}
	if g.session.InCheck() {
		g.renderer.HighlightSquare(screen, g.session.KingSquare(), theme.CheckColor)
	}
	g.renderer.HighlightSquare(screen, g.selected, theme.SelectedSquare)

	g.renderer.DrawPieces(screen, g.session)

	c := theme.TextColor
	if g.rejected {
		c = theme.ErrorColor
	}
	drawText(screen, g.status, boldFace, 8, float64(g.renderer.BoardSize()+8), c)
}

// Layout returns the game's screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}
