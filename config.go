package easel

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string `envconfig:"TITLE" default:"easel"`
	Width  int    `envconfig:"WIDTH" default:"1200"`
	Height int    `envconfig:"HEIGHT" default:"700"`

	// CanvasTop is the height of the host's toolbar strip. The canvas starts
	// below it, and pointer positions are shifted by it into canvas space.
	CanvasTop int `envconfig:"CANVAS_TOP" default:"28"`

	// DoubleClickMS is the longest gap between two clicks that still counts
	// as a double click.
	DoubleClickMS int `envconfig:"DOUBLE_CLICK_MS" default:"400"`

	// Debug turns on development logging.
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// LoadRunConfig reads RunConfig from EASEL_* environment variables, falling
// back to the defaults above.
func LoadRunConfig() (RunConfig, error) {
	var cfg RunConfig
	if err := envconfig.Process("easel", &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("easel: load config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return RunConfig{}, fmt.Errorf("easel: load config: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.CanvasTop < 0 || cfg.CanvasTop >= cfg.Height {
		return RunConfig{}, fmt.Errorf("easel: load config: canvas top %d outside window height %d", cfg.CanvasTop, cfg.Height)
	}
	return cfg, nil
}

// DoubleClickWindow returns DoubleClickMS as a duration.
func (c RunConfig) DoubleClickWindow() time.Duration {
	return time.Duration(c.DoubleClickMS) * time.Millisecond
}

// CanvasOrigin returns the canvas origin in window coordinates.
func (c RunConfig) CanvasOrigin() Vec2 {
	return Vec2{0, float64(c.CanvasTop)}
}
