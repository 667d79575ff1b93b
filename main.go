// ChessRules - a chess board built with Ebitengine
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessrules/internal/config"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hailam/chessrules/internal/storage"
	"github.com/hailam/chessrules/internal/ui"
)

var configPath = flag.String("config", os.Getenv("CHESSRULES_CONFIG"), "path to the YAML configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if dir := os.Getenv("CHESSRULES_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	logger := log.New(os.Stderr, "chessrules: ", log.LstdFlags)
	opts := []game.Option{}
	if cfg.LogMoves {
		opts = append(opts, game.WithLogger(logger))
	}

	prefs := storage.DefaultPreferences()
	prefs.Coordinates = cfg.Coordinates
	prefs.Flipped = cfg.Flipped

	var store *storage.Storage
	if cfg.Storage {
		store, err = openStorage(cfg.DataDir, logger)
		if err != nil {
			log.Printf("Warning: Failed to initialize storage: %v", err)
		} else {
			defer store.Close()
			if prefs, err = store.LoadPreferences(); err != nil {
				log.Printf("Warning: Failed to load preferences: %v", err)
			}
			if err := store.RecordGameStart(); err != nil {
				log.Printf("Warning: Failed to record game: %v", err)
			}
			opts = append(opts, game.WithRecorder(store))
		}
	}

	g := ui.NewGame(game.NewSession(opts...), cfg.Window.SquareSize, prefs, store)

	w, h := g.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("ChessRules")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func openStorage(dataDir string, logger *log.Logger) (*storage.Storage, error) {
	dbDir, err := storage.GetDatabaseDir(dataDir)
	if err != nil {
		return nil, err
	}
	return storage.Open(dbDir, logger)
}
