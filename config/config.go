package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/soocke/viewfinder-go/domain/framing"
)

// Config holds runtime configuration for the viewfinder overlay and app behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug    bool `json:"debug"`
	DarkMode bool `json:"dark_mode"`

	// Framing
	SquarePortrait bool                `json:"square_portrait"`
	Constraints    framing.Constraints `json:"constraints"`

	// Drawing parameters
	LineLength       int     `json:"line_length"`
	StrokeWidth      float64 `json:"stroke_width"`
	CornerRadius     float64 `json:"corner_radius"` // 0 disables corner rounding
	PointSize        int     `json:"point_size"`
	AnimationDelayMS int     `json:"animation_delay_ms"`
	LaserAlpha       []int   `json:"laser_alpha"`

	// Host window
	WindowWidth    int `json:"window_width"`
	WindowHeight   int `json:"window_height"`
	LayerCacheSize int `json:"layer_cache_size"`
}

// DefaultLaserAlpha is the stock 8-step laser pulse.
var DefaultLaserAlpha = []int{0, 64, 128, 192, 255, 192, 128, 64}

// ErrLaserAlphaLength reports a laser_alpha table that is not 8 entries long.
var ErrLaserAlphaLength = errors.New("laser_alpha must have 8 entries")

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		SquarePortrait:   true,
		Constraints:      framing.DefaultConstraints(),
		LineLength:       60,
		StrokeWidth:      4,
		CornerRadius:     4,
		PointSize:        10,
		AnimationDelayMS: 80,
		LaserAlpha:       append([]int(nil), DefaultLaserAlpha...),
		WindowWidth:      960,
		WindowHeight:     640,
		LayerCacheSize:   8,
	}
}

// DefaultPath returns the per-user config file location, creating parent
// directories as needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("viewfinder-go", "config.json"))
}

// AnimationDelay returns the laser frame delay as a duration.
func (c *Config) AnimationDelay() time.Duration {
	return time.Duration(c.AnimationDelayMS) * time.Millisecond
}

// Validate clamps/normalizes values to safe ranges. A malformed constraint
// table is replaced by the defaults and reported.
func (c *Config) Validate() error {
	if c.LineLength <= 0 {
		c.LineLength = 60
	}
	if c.StrokeWidth <= 0 {
		c.StrokeWidth = 4
	}
	if c.CornerRadius < 0 {
		c.CornerRadius = 0
	}
	if c.PointSize < 0 {
		c.PointSize = 10
	}
	if c.AnimationDelayMS <= 0 {
		c.AnimationDelayMS = 80
	}
	if c.AnimationDelayMS < 10 {
		c.AnimationDelayMS = 10
	}
	var alphaErr error
	if len(c.LaserAlpha) != len(DefaultLaserAlpha) {
		if len(c.LaserAlpha) != 0 {
			alphaErr = fmt.Errorf("config: %w: got %d entries", ErrLaserAlphaLength, len(c.LaserAlpha))
		}
		c.LaserAlpha = append([]int(nil), DefaultLaserAlpha...)
	}
	for i, a := range c.LaserAlpha {
		c.LaserAlpha[i] = min(max(a, 0), 255)
	}
	if c.WindowWidth < framing.MinFrameWidth {
		c.WindowWidth = 960
	}
	if c.WindowHeight < framing.MinFrameHeight {
		c.WindowHeight = 640
	}
	if c.LayerCacheSize <= 0 {
		c.LayerCacheSize = 8
	}
	if err := c.Constraints.Validate(); err != nil {
		c.Constraints = framing.DefaultConstraints()
		return errors.Join(alphaErr, fmt.Errorf("config: %w", err))
	}
	return alphaErr
}

// Calculator builds the framing calculator described by the config.
func (c *Config) Calculator() *framing.Calculator {
	return framing.NewCalculator(c.Constraints, c.SquarePortrait)
}

// LaserAlphaTable returns the alpha table as bytes.
func (c *Config) LaserAlphaTable() []uint8 {
	out := make([]uint8, len(c.LaserAlpha))
	for i, a := range c.LaserAlpha {
		out[i] = uint8(min(max(a, 0), 255))
	}
	return out
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
