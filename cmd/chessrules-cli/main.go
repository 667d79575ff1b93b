package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/chessrules/internal/config"
	"github.com/hailam/chessrules/internal/console"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hailam/chessrules/internal/render"
	"github.com/hailam/chessrules/internal/storage"
)

var (
	configPath  = flag.String("config", os.Getenv("CHESSRULES_CONFIG"), "path to the YAML configuration file")
	dataDir     = flag.String("data-dir", os.Getenv("CHESSRULES_DATA_DIR"), "directory for persistent statistics")
	noStorage   = flag.Bool("no-storage", false, "do not persist statistics")
	ascii       = flag.Bool("ascii", false, "draw pieces with letters instead of Unicode symbols")
	logMoves    = flag.Bool("log-moves", false, "log every move outcome to stderr")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	writeConfig = flag.String("write-config", "", "write the effective configuration to this file and exit")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *noStorage {
		cfg.Storage = false
	}
	if *ascii {
		cfg.Glyphs = "ascii"
	}
	if *logMoves {
		cfg.LogMoves = true
	}

	if *writeConfig != "" {
		if err := cfg.Save(*writeConfig); err != nil {
			log.Fatalf("config: %v", err)
		}
		return
	}

	glyphs, err := render.ParseGlyphSet(cfg.Glyphs)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := log.New(os.Stderr, "chessrules: ", log.LstdFlags)

	var opts []game.Option
	if cfg.LogMoves {
		opts = append(opts, game.WithLogger(logger))
	}

	var stats console.StatsSource
	if cfg.Storage {
		store, err := openStorage(cfg.DataDir, logger)
		if err != nil {
			log.Printf("Warning: storage disabled: %v", err)
		} else {
			defer store.Close()
			stats = store
			opts = append(opts, game.WithRecorder(store))
		}
	}

	session := game.NewSession(opts...)
	c := console.New(session, stats, render.Options{
		Glyphs:      glyphs,
		Coordinates: cfg.Coordinates,
		Flipped:     cfg.Flipped,
	}, os.Stdout)

	if err := c.Run(os.Stdin); err != nil {
		log.Printf("input: %v", err)
	}
}

func openStorage(dataDir string, logger *log.Logger) (*storage.Storage, error) {
	dbDir, err := storage.GetDatabaseDir(dataDir)
	if err != nil {
		return nil, err
	}
	return storage.Open(dbDir, logger)
}
