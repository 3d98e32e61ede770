package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Falling stars
	StarDensity  = 0.00015
	StarMinCount = 80
	StarMaxCount = 300

	// Particle network
	NetworkCount     = 50
	InfluenceRadius  = 150
	InfluenceForce   = 0.02
	LinkDistance     = 100
	LinkMaxAlpha     = 0.3
	BounceDamping    = 0.8
	NetworkGlowBlur  = 15
	StarGlowBlur     = 6
	TwinkleFrequency = 0.002

	// Hero typing speeds in milliseconds per rune
	TitleTypingMs    = 80
	SubtitleTypingMs = 60

	LoadingMs = 2000
)

const (
	BackdropStars   = "stars"
	BackdropNetwork = "network"
)

var ErrUnknownBackdrop = errors.New("unknown backdrop")

// Config is the user-tunable part of the showcase. Zero values in a yaml file
// keep the defaults because the file is decoded over Default().
type Config struct {
	Backdrop string        `yaml:"backdrop"`
	Seed     int64         `yaml:"seed"`
	Content  string        `yaml:"content"`
	IconsDir string        `yaml:"icons_dir"`
	Sound    bool          `yaml:"sound"`
	Window   WindowConfig  `yaml:"window"`
	Stars    StarsConfig   `yaml:"stars"`
	Network  NetworkConfig `yaml:"network"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type StarsConfig struct {
	Density float64 `yaml:"density"`
	Min     int     `yaml:"min"`
	Max     int     `yaml:"max"`
}

type NetworkConfig struct {
	Count   int  `yaml:"count"`
	Attract bool `yaml:"attract"`
}

func Default() *Config {
	return &Config{
		Backdrop: BackdropStars,
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Portfolio - Esc/Q: Quit",
		},
		Stars: StarsConfig{
			Density: StarDensity,
			Min:     StarMinCount,
			Max:     StarMaxCount,
		},
		Network: NetworkConfig{
			Count: NetworkCount,
		},
	}
}

// Load reads a yaml config over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv loads the given .env files (missing files are skipped) and then
// applies FOLIO_* overrides from the process environment.
func (c *Config) ApplyEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	if v, ok := os.LookupEnv("FOLIO_BACKDROP"); ok {
		c.Backdrop = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("FOLIO_SEED"); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("FOLIO_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv("FOLIO_CONTENT"); ok {
		c.Content = v
	}
	if v, ok := os.LookupEnv("FOLIO_ICONS"); ok {
		c.IconsDir = v
	}
	if v, ok := os.LookupEnv("FOLIO_SOUND"); ok {
		sound, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("FOLIO_SOUND: %w", err)
		}
		c.Sound = sound
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Backdrop {
	case BackdropStars, BackdropNetwork:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackdrop, c.Backdrop)
	}
	if c.Stars.Density <= 0 {
		return fmt.Errorf("stars.density must be positive, got %v", c.Stars.Density)
	}
	if c.Stars.Min <= 0 || c.Stars.Min > c.Stars.Max {
		return fmt.Errorf("stars bounds invalid: min=%d max=%d", c.Stars.Min, c.Stars.Max)
	}
	if c.Network.Count <= 0 {
		return fmt.Errorf("network.count must be positive, got %d", c.Network.Count)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size invalid: %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
