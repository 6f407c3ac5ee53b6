// Package config provides configuration loading for the recorder CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the recorder defaults the CLI starts from.
type Config struct {
	// DataDir is the base directory session folders live under.
	DataDir string `yaml:"data_dir"`

	// Video dimensions.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// FourCC identifies the codec to request from the sink.
	FourCC string `yaml:"fourcc"`

	// FrameRate overrides timestamp-derived rate estimation when > 0.
	FrameRate float64 `yaml:"frame_rate"`

	// FFmpegPath is an optional custom ffmpeg binary path.
	FFmpegPath string `yaml:"ffmpeg_path"`

	// LogLevel is one of debug, info, warn, error, quiet.
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		DataDir:  defaultDataDir(),
		Width:    1280,
		Height:   720,
		FourCC:   "MP4V",
		LogLevel: "info",
	}
}

// defaultDataDir mirrors the capture tooling convention of keeping
// session data under the user's home directory.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "camrec_data"
	}
	return filepath.Join(home, "camrec_data")
}

// Load reads a YAML config file and overlays it on the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
