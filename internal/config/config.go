package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iburimskiy/circular-view/internal/view"
)

// FileName is the config file looked up in the config directory.
const FileName = "circularview.cfg.json"

// EnvPrefix prefixes environment overrides, e.g. CIRCULARVIEW_RING_MARKERCOUNT.
const EnvPrefix = "CIRCULARVIEW"

var ErrInvalid = errors.New("invalid config")

type WindowConfig struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

type RingConfig struct {
	MarkerCount                    int     `json:"markerCount" mapstructure:"markerCount"`
	StartAngle                     float64 `json:"startAngle" mapstructure:"startAngle"`
	MarkerRadius                   float64 `json:"markerRadius" mapstructure:"markerRadius"`
	Padding                        float64 `json:"padding" mapstructure:"padding"`
	CircleWeight                   float64 `json:"circleWeight" mapstructure:"circleWeight"`
	AnimateMarkersOnStillHighlight bool    `json:"animateMarkersOnStillHighlight" mapstructure:"animateMarkersOnStillHighlight"`
	DrawHighlightedMarkerOnTop     bool    `json:"drawHighlightedMarkerOnTop" mapstructure:"drawHighlightedMarkerOnTop"`
}

type HubConfig struct {
	Text string `json:"text" mapstructure:"text"`
}

type AnimationConfig struct {
	BounceDuration time.Duration `json:"bounceDuration" mapstructure:"bounceDuration"`
	BounceOffset   float64       `json:"bounceOffset" mapstructure:"bounceOffset"`
	SweepDuration  time.Duration `json:"sweepDuration" mapstructure:"sweepDuration"`
}

type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// Config is the full application configuration.
type Config struct {
	LogLevel  string          `json:"logLevel" mapstructure:"logLevel"`
	Window    WindowConfig    `json:"window" mapstructure:"window"`
	Ring      RingConfig      `json:"ring" mapstructure:"ring"`
	Hub       HubConfig       `json:"hub" mapstructure:"hub"`
	Animation AnimationConfig `json:"animation" mapstructure:"animation"`
	Audio     AudioConfig     `json:"audio" mapstructure:"audio"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 768)

	v.SetDefault("ring.markerCount", 10)
	v.SetDefault("ring.startAngle", 270.0)
	v.SetDefault("ring.markerRadius", 40.0)
	v.SetDefault("ring.padding", 20.0)
	v.SetDefault("ring.circleWeight", 0.9)
	v.SetDefault("ring.animateMarkersOnStillHighlight", false)
	v.SetDefault("ring.drawHighlightedMarkerOnTop", true)

	v.SetDefault("hub.text", "")

	v.SetDefault("animation.bounceDuration", "650ms")
	v.SetDefault("animation.bounceOffset", 25.0)
	v.SetDefault("animation.sweepDuration", "2s")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.3)
}

// Load reads FileName from configDir on top of the defaults. A missing
// file is not an error; environment variables override both.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the view cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Ring.MarkerCount < 0:
		return fmt.Errorf("%w: negative marker count %d", ErrInvalid, c.Ring.MarkerCount)
	case c.Ring.MarkerRadius < 0:
		return fmt.Errorf("%w: negative marker radius %v", ErrInvalid, c.Ring.MarkerRadius)
	case c.Ring.CircleWeight <= 0 || c.Ring.CircleWeight > 1:
		return fmt.Errorf("%w: circle weight %v outside (0, 1]", ErrInvalid, c.Ring.CircleWeight)
	case c.Animation.BounceDuration <= 0:
		return fmt.Errorf("%w: non-positive bounce duration %v", ErrInvalid, c.Animation.BounceDuration)
	case c.Animation.SweepDuration < 0:
		return fmt.Errorf("%w: negative sweep duration %v", ErrInvalid, c.Animation.SweepDuration)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	return nil
}

// ViewOptions converts the ring, hub and animation sections.
func (c *Config) ViewOptions() view.Options {
	opts := view.DefaultOptions()
	opts.StartAngle = c.Ring.StartAngle
	opts.MarkerRadius = c.Ring.MarkerRadius
	opts.Padding = c.Ring.Padding
	opts.CircleWeight = c.Ring.CircleWeight
	opts.AnimateMarkersOnStillHighlight = c.Ring.AnimateMarkersOnStillHighlight
	opts.DrawHighlightedMarkerOnTop = c.Ring.DrawHighlightedMarkerOnTop
	opts.Text = c.Hub.Text
	opts.BounceDuration = c.Animation.BounceDuration
	opts.BounceOffset = c.Animation.BounceOffset
	return opts
}
