// Package config holds gameplay constants and the user's preferences.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// CellPerTile is the width of one movement tile in grid cells.
const CellPerTile = 3

// HistoryLength is how many visited tiles the player's trail keeps.
const HistoryLength = 20

// Defaults for the tunable settings.
const (
	DefaultMemoryForgot     = 5
	DefaultProbFindTreasure = 0.33
	DefaultMoveTimeQuiet    = 800 * time.Millisecond
	DefaultMoveTimeLoud     = 500 * time.Millisecond
	DefaultMinigamePeriod   = 1200 * time.Millisecond
	DefaultQuietZoneWidth   = 0.25
	DefaultTileSize         = 32
	MinTileSize             = 12
	MaxTileSize             = 96
)

// DefaultPath is where preferences are read from and saved to.
const DefaultPath = "preferences.yaml"

// Settings are the tunables that may be overridden by the preferences file
// or LABYRINTH_* environment variables.
type Settings struct {
	MemoryForgot     int           `yaml:"memory_forgot"`
	ProbFindTreasure float64       `yaml:"prob_find_treasure"`
	MoveTimeQuiet    time.Duration `yaml:"move_time_quiet"`
	MoveTimeLoud     time.Duration `yaml:"move_time_loud"`
	MinigamePeriod   time.Duration `yaml:"minigame_period"`
	QuietZoneWidth   float64       `yaml:"quiet_zone_width"`
	TileSize         int           `yaml:"tile_size"`

	path string
	mu   sync.Mutex
}

// Defaults returns settings with every field at its default value.
func Defaults() *Settings {
	return &Settings{
		MemoryForgot:     DefaultMemoryForgot,
		ProbFindTreasure: DefaultProbFindTreasure,
		MoveTimeQuiet:    DefaultMoveTimeQuiet,
		MoveTimeLoud:     DefaultMoveTimeLoud,
		MinigamePeriod:   DefaultMinigamePeriod,
		QuietZoneWidth:   DefaultQuietZoneWidth,
		TileSize:         DefaultTileSize,
		path:             DefaultPath,
	}
}

var (
	current   = Defaults()
	currentMu sync.RWMutex
)

// Current returns the active settings.
func Current() *Settings {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the active settings.
func SetCurrent(s *Settings) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = s
}

// Load reads settings from path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Settings, error) {
	s := Defaults()
	s.path = path

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read preferences %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse preferences %s: %w", path, err)
		}
	}

	if err := s.applyEnv(); err != nil {
		return nil, err
	}
	s.clamp()
	return s, nil
}

func (s *Settings) applyEnv() error {
	if v := os.Getenv("LABYRINTH_MEMORY_FORGOT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LABYRINTH_MEMORY_FORGOT: %w", err)
		}
		s.MemoryForgot = n
	}
	if v := os.Getenv("LABYRINTH_PROB_FIND_TREASURE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LABYRINTH_PROB_FIND_TREASURE: %w", err)
		}
		s.ProbFindTreasure = f
	}
	if v := os.Getenv("LABYRINTH_TILE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LABYRINTH_TILE_SIZE: %w", err)
		}
		s.TileSize = n
	}
	return nil
}

func (s *Settings) clamp() {
	if s.MemoryForgot < 1 {
		s.MemoryForgot = 1
	}
	if s.ProbFindTreasure < 0 {
		s.ProbFindTreasure = 0
	}
	if s.ProbFindTreasure > 1 {
		s.ProbFindTreasure = 1
	}
	if s.MoveTimeQuiet <= 0 {
		s.MoveTimeQuiet = DefaultMoveTimeQuiet
	}
	if s.MoveTimeLoud <= 0 {
		s.MoveTimeLoud = DefaultMoveTimeLoud
	}
	if s.MinigamePeriod <= 0 {
		s.MinigamePeriod = DefaultMinigamePeriod
	}
	if s.QuietZoneWidth <= 0 || s.QuietZoneWidth > 1 {
		s.QuietZoneWidth = DefaultQuietZoneWidth
	}
	if s.TileSize < MinTileSize {
		s.TileSize = MinTileSize
	}
	if s.TileSize > MaxTileSize {
		s.TileSize = MaxTileSize
	}
}

// SetTileSize stores the renderer zoom level and writes the preferences file.
func (s *Settings) SetTileSize(size int) error {
	s.mu.Lock()
	s.TileSize = size
	s.clamp()
	s.mu.Unlock()
	return s.Save()
}

// Save writes the settings to the path they were loaded from.
func (s *Settings) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path
	if path == "" {
		path = DefaultPath
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preferences dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write preferences %s: %w", path, err)
	}
	return nil
}
