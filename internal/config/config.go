// Package config provides YAML-based configuration loading for City Bomber.
// Every gameplay constant lives here so hosts and tests share one source.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/citybomber/internal/core"
)

// BomberConfig contains all configuration for the game.
type BomberConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Plane     PlaneConfig     `yaml:"plane"`
	Bomb      BombConfig      `yaml:"bomb"`
	City      CityConfig      `yaml:"city"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Timing    TimingConfig    `yaml:"timing"`
	Audio     AudioConfig     `yaml:"audio"`
}

// PlayfieldConfig defines the logical drawing area.
type PlayfieldConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlaneConfig defines the bomber.
type PlaneConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Velocity int `yaml:"-"` // Pixels per tick, a game rule
}

// BombConfig defines the bombs and the size of the bomb pool.
type BombConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	MaxBombs int `yaml:"-"` // Bombs that may be falling at once, a game rule
}

// CityConfig defines the skyline.
type CityConfig struct {
	Buildings     int      `yaml:"buildings"`
	StartX        int      `yaml:"start_x"`
	BuildingWidth int      `yaml:"building_width"`
	BuildingGap   int      `yaml:"building_gap"`
	LevelHeight   int      `yaml:"level_height"`
	MaxDestroy    int      `yaml:"-"`       // Levels one bomb may take off a building, a game rule
	Palette       []string `yaml:"palette"` // Body and window colors
}

// ScoringConfig defines points awarded during a run.
type ScoringConfig struct {
	PointsPerLevel int `yaml:"points_per_level"`
	LandingBonus   int `yaml:"landing_bonus"`
}

// TimingConfig defines the frame clock and the pause after a run ends.
type TimingConfig struct {
	TickRate int           `yaml:"tick_rate"`
	EndDelay time.Duration `yaml:"end_delay"`
}

// AudioConfig defines the sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`      // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"` // Output rate, sounds are resampled to it
	SoundsDir  string  `yaml:"sounds_dir"`  // WAV directory, empty = synthesized cues
}

// FallStep returns how far a bomb falls per tick.
func (c BombConfig) FallStep() int {
	return c.Height * 3 / 4
}

// RowDrop returns how far the plane descends when it wraps around.
func (c PlaneConfig) RowDrop() int {
	return c.Height * 3 / 2
}

// ColumnX returns the left edge of the building in the given column.
func (c CityConfig) ColumnX(column int) int {
	return c.StartX + column*(c.BuildingWidth+c.BuildingGap)
}

// MaxLevels returns the exclusive upper bound for a new building's height.
func (c BomberConfig) MaxLevels() int {
	return (c.Playfield.Height / 2) / c.City.LevelHeight
}

// Colors resolves the palette names.
func (c CityConfig) Colors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		col, err := core.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("config: palette: %w", err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// Validate rejects configurations the simulation cannot run.
func (c BomberConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield must have a positive size")
	check(c.Plane.Width > 0 && c.Plane.Height > 0, "plane must have a positive size")
	check(c.Plane.Velocity > 0, "plane velocity must be positive")
	check(c.Plane.Height <= c.Playfield.Height, "plane taller than playfield")
	check(c.Bomb.Width > 0 && c.Bomb.Height > 0, "bomb must have a positive size")
	check(c.Bomb.FallStep() > 0, "bomb too small to fall")
	check(c.Bomb.MaxBombs > 0, "bomb pool must not be empty")
	check(c.City.Buildings > 0, "city needs at least one building")
	check(c.City.BuildingWidth > 0 && c.City.BuildingGap >= 0, "building width must be positive and gap non-negative")
	check(c.City.LevelHeight > 0, "level height must be positive")
	check(c.City.MaxDestroy > 0, "destroy limit must be positive")
	if c.City.LevelHeight > 0 {
		check(c.MaxLevels() > 2, "playfield too short for buildings of at least two levels")
	}
	check(c.Playfield.Height/max(c.Plane.Height, 1) >= 8, "playfield too short for the plane's starting rows")
	check(c.Timing.TickRate > 0, "tick rate must be positive")
	check(c.Timing.EndDelay >= 0, "end delay must not be negative")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio volume must be within [0, 1]")

	colors, err := c.City.Colors()
	if err != nil {
		errs = append(errs, err)
	} else {
		distinct := make(map[core.Color]bool)
		for _, col := range colors {
			distinct[col] = true
		}
		check(len(distinct) >= 2, "palette needs at least two distinct colors")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
