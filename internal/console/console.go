// Package console implements a line-oriented command loop for playing and
// inspecting a game by hand.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hailam/chessrules/internal/render"
	"github.com/hailam/chessrules/internal/storage"
)

// StatsSource provides persisted statistics for the "stats" command.
type StatsSource interface {
	LoadStats() (*storage.Stats, error)
	RecordGameStart() error
}

// Console reads commands and writes replies.
type Console struct {
	session *game.Session
	stats   StatsSource
	opts    render.Options
	out     io.Writer
}

// New creates a console over session. stats may be nil.
func New(session *game.Session, stats StatsSource, opts render.Options, out io.Writer) *Console {
	return &Console{
		session: session,
		stats:   stats,
		opts:    opts,
		out:     out,
	}
}

// Run processes commands from in until "quit" or end of input.
func (c *Console) Run(in io.Reader) error {
	c.startGame()
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "quit", "exit":
			return nil
		case "help":
			c.handleHelp()
		case "board", "d":
			c.printBoard()
		case "turn":
			c.printf("%s to move\n", c.session.SideToMove())
		case "check":
			c.printf("%v\n", c.session.InCheck())
		case "move":
			c.handleMove(strings.Join(args, " "))
		case "place":
			c.handlePlace(args)
		case "clear":
			c.session.Clear()
			c.printf("board cleared\n")
		case "reset", "new":
			c.session.Reset()
			c.startGame()
			c.printf("new game\n")
		case "stats":
			c.handleStats()
		default:
			c.handleMove(line)
		}
	}
	return scanner.Err()
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) startGame() {
	if c.stats == nil {
		return
	}
	if err := c.stats.RecordGameStart(); err != nil {
		c.printf("warning: %v\n", err)
	}
}

func (c *Console) handleHelp() {
	c.printf(`commands:
  e2e4 | e2 e4 | move e7e8q   play a move (promotion letter n, b, r, q)
  board                       show the board
  turn                        show the side to move
  check                       report whether the side to move is in check
  place <sq> <piece|.>        put a piece on a square, e.g. "place e4 Q"
  clear                       empty the board
  reset                       start a new game
  stats                       show recorded move statistics
  quit                        leave
`)
}

// printBoard draws a snapshot so a concurrent move cannot tear the diagram.
func (c *Console) printBoard() {
	c.printf("%s", render.String(c.session.Snapshot(), c.opts))
}

func (c *Console) handleMove(text string) {
	r, err := c.session.Move(text)
	var moveErr *game.MoveError
	switch {
	case errors.As(err, &moveErr):
		c.printf("%s\n", moveErr.Result)
	case err != nil:
		c.printf("error: %v\n", err)
	default:
		c.printf("%s\n", r)
	}
}

// handlePlace handles "place <square> <piece>". Uppercase letters are
// White pieces, lowercase Black; "." empties the square.
func (c *Console) handlePlace(args []string) {
	if len(args) != 2 || len(args[1]) != 1 {
		c.printf("usage: place <square> <piece|.>\n")
		return
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}

	letter := args[1][0]
	if letter == '.' {
		c.session.PlaceOccupant(board.Occupant{}, sq)
		return
	}
	pt, err := board.ParsePieceType(letter)
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	color := board.Black
	if letter >= 'A' && letter <= 'Z' {
		color = board.White
	}
	c.session.PlaceOccupant(board.NewOccupant(pt, color), sq)
}

func (c *Console) handleStats() {
	if c.stats == nil {
		c.printf("storage disabled\n")
		return
	}
	stats, err := c.stats.LoadStats()
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	c.printf("games %d, moves %d, rejected %d (%.1f%% accepted)\n",
		stats.GamesStarted, stats.MovesPlayed, stats.Rejected, stats.AcceptRate())
	for _, r := range board.Results() {
		if n := stats.Count(r); n > 0 {
			c.printf("  %-12s %d\n", r, n)
		}
	}
}
