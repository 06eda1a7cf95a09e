package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Deck file extensions recognized by Manager
const (
	ExtTOML = ".toml"
	ExtXLSX = ".xlsx"
)

// Manager handles discovery and loading of deck files in a directory
type Manager struct {
	dir    string
	files  []string
	logger *slog.Logger
}

// NewManager creates a manager for dir; nil logger discards
func NewManager(dir string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		dir:    dir,
		files:  []string{},
		logger: logger,
	}
}

// Discover scans the directory for deck files, skipping hidden files
// A missing directory is not an error, just no decks
func (m *Manager) Discover() error {
	m.files = []string{}
	if m.dir == "" {
		return nil
	}

	entries, err := os.ReadDir(m.dir)
	if errors.Is(err, fs.ErrNotExist) {
		m.logger.Info("deck directory does not exist", "dir", m.dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read deck directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			m.logger.Debug("skipping hidden file", "file", name)
			continue
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ExtTOML, ExtXLSX:
			m.files = append(m.files, filepath.Join(m.dir, name))
		}
	}
	slices.Sort(m.files)

	m.logger.Info("decks discovered", "dir", m.dir, "count", len(m.files))
	return nil
}

// Files returns the discovered deck paths in name order
func (m *Manager) Files() []string {
	return m.files
}

// LoadFile loads one deck by extension
// Spreadsheet row errors are logged; the valid rows still load
func (m *Manager) LoadFile(path string) (Deck, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtTOML:
		return LoadDeckFile(path)
	case ExtXLSX:
		f, err := os.Open(path)
		if err != nil {
			return Deck{}, fmt.Errorf("failed to open spreadsheet: %w", err)
		}
		defer f.Close()

		res, err := LoadSpreadsheet(f)
		if err != nil {
			return Deck{}, fmt.Errorf("%s: %w", path, err)
		}
		for _, re := range res.Errors {
			m.logger.Warn("spreadsheet row skipped", "file", path, "error", re.Error())
		}
		if len(res.Deck.Puzzles) == 0 {
			return Deck{}, fmt.Errorf("%s: no valid puzzles in %d rows", path, res.TotalRows)
		}
		res.Deck.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return res.Deck, nil
	default:
		return Deck{}, fmt.Errorf("unsupported deck file: %s", path)
	}
}

// LoadAll loads every discovered deck; failed files are logged and skipped
func (m *Manager) LoadAll() []Deck {
	decks := make([]Deck, 0, len(m.files))
	for _, path := range m.files {
		d, err := m.LoadFile(path)
		if err != nil {
			m.logger.Warn("deck skipped", "file", path, "error", err)
			continue
		}
		decks = append(decks, d)
	}
	return decks
}

// Entry is a puzzle tagged with the name of its deck
type Entry struct {
	Deck   string
	Puzzle Puzzle
}

// Entries returns every puzzle of every deck in order, tagged with its deck
func Entries(decks []Deck) []Entry {
	var out []Entry
	for _, d := range decks {
		for _, p := range d.Puzzles {
			out = append(out, Entry{Deck: d.Name, Puzzle: p})
		}
	}
	return out
}

// Flatten returns every puzzle of every deck in order
func Flatten(decks []Deck) []Puzzle {
	entries := Entries(decks)
	out := make([]Puzzle, len(entries))
	for i, e := range entries {
		out[i] = e.Puzzle
	}
	return out
}
