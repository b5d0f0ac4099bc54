package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/citybomber.yaml
var defaultBomberYAML []byte

// DefaultBomberConfig returns the default configuration: an 800x600 field,
// sixteen buildings and a two-bomb pool.
func DefaultBomberConfig() BomberConfig {
	return BomberConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
			Title:  "City Bomber",
		},
		Plane: PlaneConfig{
			Width:    50,
			Height:   30,
			Velocity: 7,
		},
		Bomb: BombConfig{
			Width:    15,
			Height:   15,
			MaxBombs: 2,
		},
		City: CityConfig{
			Buildings:     16,
			StartX:        100,
			BuildingWidth: 32,
			BuildingGap:   5,
			LevelHeight:   30,
			MaxDestroy:    5,
			Palette:       []string{"white", "red", "blue"},
		},
		Scoring: ScoringConfig{
			PointsPerLevel: 10,
			LandingBonus:   100,
		},
		Timing: TimingConfig{
			TickRate: 50,
			EndDelay: 3 * time.Second,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.8,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBomberYAML
}
