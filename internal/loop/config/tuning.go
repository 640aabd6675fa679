package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the per-session gameplay parameters. The zero value is not
// usable; start from DefaultTuning.
type Tuning struct {
	PlayWidth    float64 `yaml:"playWidth"`
	PlayHeight   float64 `yaml:"playHeight"`
	FishSize     float64 `yaml:"fishSize"`
	NetWidth     float64 `yaml:"netWidth"`
	NetHeight    float64 `yaml:"netHeight"`
	MarginLeft   float64 `yaml:"marginLeft"`
	MarginRight  float64 `yaml:"marginRight"`
	BaseSpeed    float64 `yaml:"baseSpeed"`
	SpeedStep    float64 `yaml:"speedStep"`
	MaxLives     int     `yaml:"maxLives"`
	ParticleLife int     `yaml:"particleLife"`
	ParticleRise float64 `yaml:"particleRise"`
}

// DefaultTuning returns the stock game feel.
func DefaultTuning() Tuning {
	return Tuning{
		PlayWidth:    PlayWidth,
		PlayHeight:   PlayHeight,
		FishSize:     FishSize,
		NetWidth:     NetWidth,
		NetHeight:    NetHeight,
		MarginLeft:   MarginLeft,
		MarginRight:  MarginRight,
		BaseSpeed:    BaseSpeed,
		SpeedStep:    SpeedStep,
		MaxLives:     MaxLives,
		ParticleLife: ParticleLife,
		ParticleRise: ParticleRise,
	}
}

// LoadTuning reads a YAML tuning file. Keys missing from the file keep their
// default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	return t, nil
}

// ResolveTuning loads the tuning file at path, or returns the defaults when
// path is empty.
func ResolveTuning(path string) (Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	return LoadTuning(path)
}

// Validate checks that the parameters describe a playable game.
func (t Tuning) Validate() error {
	if t.PlayWidth <= 0 || t.PlayHeight <= 0 {
		return fmt.Errorf("play area must be positive: %.1fx%.1f", t.PlayWidth, t.PlayHeight)
	}
	if t.FishSize <= 0 {
		return fmt.Errorf("fish size must be positive: %.1f", t.FishSize)
	}
	if t.NetWidth <= 0 || t.NetHeight <= 0 {
		return fmt.Errorf("net size must be positive: %.1fx%.1f", t.NetWidth, t.NetHeight)
	}
	if t.MarginLeft < 0 || t.MarginRight < 0 {
		return fmt.Errorf("margins must not be negative: left=%.1f right=%.1f", t.MarginLeft, t.MarginRight)
	}
	if need := t.MarginLeft + t.MarginRight + t.FishSize; t.PlayWidth < need {
		return fmt.Errorf("play width %.1f too small for margins and fish (need %.1f)", t.PlayWidth, need)
	}
	if t.BaseSpeed <= 0 {
		return fmt.Errorf("base speed must be positive: %.2f", t.BaseSpeed)
	}
	if t.SpeedStep < 0 {
		return fmt.Errorf("speed step must not be negative: %.2f", t.SpeedStep)
	}
	if t.MaxLives < 1 {
		return fmt.Errorf("max lives must be at least 1: %d", t.MaxLives)
	}
	if t.ParticleLife < 1 {
		return fmt.Errorf("particle life must be at least 1 frame: %d", t.ParticleLife)
	}
	return nil
}
