package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chessrules/internal/board"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Preferences stores viewer settings.
type Preferences struct {
	Glyphs      string    `json:"glyphs"`
	Coordinates bool      `json:"coordinates"`
	Flipped     bool      `json:"flipped"`
	LastPlayed  time.Time `json:"last_played"`
}

// DefaultPreferences returns default viewer preferences
func DefaultPreferences() *Preferences {
	return &Preferences{
		Glyphs:      "unicode",
		Coordinates: true,
		LastPlayed:  time.Now(),
	}
}

// Stats stores outcome statistics across sessions.
type Stats struct {
	GamesStarted int            `json:"games_started"`
	MovesPlayed  int            `json:"moves_played"`
	Rejected     int            `json:"rejected"`
	Results      map[string]int `json:"results"`
}

// NewStats returns empty statistics
func NewStats() *Stats {
	return &Stats{Results: make(map[string]int)}
}

// Count returns how many times r was returned.
func (s *Stats) Count(r board.Result) int {
	return s.Results[r.String()]
}

// AcceptRate returns the share of accepted moves as a percentage (0-100)
func (s *Stats) AcceptRate() float64 {
	total := s.MovesPlayed + s.Rejected
	if total == 0 {
		return 0
	}
	return float64(s.MovesPlayed) / float64(total) * 100
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir.
func Open(dir string, logger *log.Logger) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = newBadgerLogger(logger)
	return open(opts)
}

// OpenInMemory opens a database that is discarded on Close.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves viewer preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads viewer preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	err := s.db.View(func(txn *badger.Txn) error {
		return get(txn, keyPreferences, prefs)
	})
	return prefs, err
}

// LoadStats loads statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*Stats, error) {
	stats := NewStats()
	err := s.db.View(func(txn *badger.Txn) error {
		return get(txn, keyStats, stats)
	})
	return stats, err
}

// RecordResult counts one move outcome.
func (s *Storage) RecordResult(r board.Result) error {
	return s.updateStats(func(stats *Stats) {
		stats.Results[r.String()]++
		if r.Accepted() {
			stats.MovesPlayed++
		} else {
			stats.Rejected++
		}
	})
}

// RecordGameStart counts a new game.
func (s *Storage) RecordGameStart() error {
	return s.updateStats(func(stats *Stats) {
		stats.GamesStarted++
	})
}

// updateStats applies fn to the stored statistics in a single transaction.
func (s *Storage) updateStats(fn func(*Stats)) error {
	return s.db.Update(func(txn *badger.Txn) error {
		stats := NewStats()
		if err := get(txn, keyStats, stats); err != nil {
			return err
		}
		if stats.Results == nil {
			stats.Results = make(map[string]int)
		}
		fn(stats)

		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), data)
	})
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes key into v, leaving v untouched if the key is absent.
func get(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

// badgerLogger forwards badger's warnings and errors to a standard logger.
type badgerLogger struct {
	l *log.Logger
}

func newBadgerLogger(l *log.Logger) badger.Logger {
	if l == nil {
		return nil
	}
	return badgerLogger{l: l}
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Printf("badger error: "+format, args...)
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Printf("badger warning: "+format, args...)
}

func (badgerLogger) Infof(string, ...interface{})  {}
func (badgerLogger) Debugf(string, ...interface{}) {}
