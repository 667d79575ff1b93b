package ui

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessrules/internal/board"
)

// pieceShapes holds the SVG elements of each piece silhouette on a
// 100x100 canvas, without their closing "/>".
var pieceShapes = [6][]string{
	board.Pawn: {
		`<circle cx="50" cy="38" r="14"`,
		`<path d="M32 82 L68 82 L60 54 L40 54 Z"`,
	},
	board.Knight: {
		`<path d="M30 84 L72 84 L68 30 L46 16 L26 46 L34 54 L46 46 L38 70 Z"`,
	},
	board.Bishop: {
		`<path d="M50 12 L68 46 L58 72 L42 72 L32 46 Z"`,
		`<rect x="30" y="74" width="40" height="10"`,
	},
	board.Rook: {
		`<path d="M28 20 L38 20 L38 30 L46 30 L46 20 L54 20 L54 30 L62 30 L62 20 L72 20 L72 40 L64 44 L64 72 L36 72 L36 44 L28 40 Z"`,
		`<rect x="26" y="74" width="48" height="10"`,
	},
	board.Queen: {
		`<path d="M20 28 L36 58 L50 18 L64 58 L80 28 L70 76 L30 76 Z"`,
		`<rect x="28" y="78" width="44" height="8"`,
	},
	board.King: {
		`<path d="M46 8 L54 8 L54 18 L62 18 L62 26 L54 26 L54 34 L46 34 L46 26 L38 26 L38 18 L46 18 Z"`,
		`<path d="M24 42 L76 42 L66 76 L34 76 Z"`,
		`<rect x="28" y="78" width="44" height="8"`,
	},
}

// pieceSVG builds the SVG document for a piece of type pt and color c.
func pieceSVG(pt board.PieceType, c board.Color) string {
	fill, stroke := "#ffffff", "#000000"
	if c == board.Black {
		fill, stroke = "#222222", "#f0f0f0"
	}
	attrs := fmt.Sprintf(` fill="%s" stroke="%s" stroke-width="3"/>`, fill, stroke)

	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="100" height="100">`)
	for _, el := range pieceShapes[pt] {
		sb.WriteString(el)
		sb.WriteString(attrs)
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}

type spriteKey struct {
	piece board.PieceType
	color board.Color
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[spriteKey]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[spriteKey]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

// loadPieces rasterises every piece silhouette.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, c := range []board.Color{board.White, board.Black} {
		for pt := board.Pawn; pt <= board.King; pt++ {
			icon, err := oksvg.ReadIconStream(strings.NewReader(pieceSVG(pt, c)))
			if err != nil {
				log.Printf("Failed to parse SVG for %s %s: %v", c, pt, err)
				continue
			}
			icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

			rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
			scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
			raster := rasterx.NewDasher(renderSize, renderSize, scanner)
			icon.Draw(raster, 1.0)

			sm.pieces[spriteKey{pt, c}] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// DrawPieceAt draws the occupant o at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, o board.Occupant, x, y int) {
	if o.IsEmpty() {
		return
	}
	sprite := sm.pieces[spriteKey{o.Piece, o.Color}]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
