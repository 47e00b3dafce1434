// Package style defines the overlay's visual styling and its optional
// file-based configuration.
//
// Styling here is data only: tint, blur, corner radius, shadow, and the
// show/hide animation duration. Applying these to pixels is the embedding
// UI layer's job.
package style

import (
	goerrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional configuration file name.
const ConfigFile = "popover.yaml"

// Style describes the overlay's visual treatment.
type Style struct {
	// TintColor is drawn over the blurred backdrop.
	TintColor Color `yaml:"tint_color,omitempty"`
	// CornerRadius is the overlay's corner radius in pixels.
	CornerRadius float64 `yaml:"corner_radius,omitempty"`
	// BlurRadius is the backdrop blur radius in pixels. Zero disables blur.
	BlurRadius float64 `yaml:"blur_radius,omitempty"`
	// ShadowOpacity is the drop shadow opacity (0-1). Zero disables it.
	ShadowOpacity float64 `yaml:"shadow_opacity,omitempty"`
	// AnimationMillis is the show/hide transition length in milliseconds.
	AnimationMillis int `yaml:"animation_ms,omitempty"`
}

// AnimationDuration returns the transition length as a time.Duration.
func (s Style) AnimationDuration() time.Duration {
	return time.Duration(s.AnimationMillis) * time.Millisecond
}

// DefaultStyle returns the built-in visual treatment.
func DefaultStyle() Style {
	return Style{
		TintColor:       RGBA(255, 255, 255, 0.6),
		CornerRadius:    12,
		BlurRadius:      24,
		ShadowOpacity:   0.2,
		AnimationMillis: 250,
	}
}

// Config represents the optional popover.yaml configuration.
type Config struct {
	Style Style `yaml:"style"`
	// Margin overrides the horizontal placement margin. Zero means keep
	// the engine default.
	Margin float64 `yaml:"margin,omitempty"`
}

// LoadOptional reads popover.yaml from dir if present. A missing file
// yields the default configuration.
func LoadOptional(dir string) (*Config, error) {
	defaults := &Config{Style: DefaultStyle()}

	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	cfg := Config{Style: DefaultStyle()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	return &cfg, nil
}
