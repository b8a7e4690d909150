package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOptionsFile is looked up next to the binary when no path is given.
const DefaultOptionsFile = "streetbrawl.yaml"

// Options are presentation settings read at startup. They never change
// gameplay values.
type Options struct {
	Scale  float64 `yaml:"scale"`
	Debug  bool    `yaml:"debug"`
	Mute   bool    `yaml:"mute"`
	Volume float64 `yaml:"volume"`
	Seed   int64   `yaml:"seed"` // 0 picks a time based seed
}

func DefaultOptions() Options {
	return Options{
		Scale:  1,
		Volume: Audio.DefaultSFXVol,
	}
}

// LoadOptions reads options from path. A missing file yields the defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultOptions(), nil
	}
	if err != nil {
		return DefaultOptions(), fmt.Errorf("read options %s: %w", path, err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("options %s: %w", path, err)
	}
	return opts, nil
}

// ParseOptions decodes YAML on top of the defaults.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), fmt.Errorf("parse: %w", err)
	}
	if opts.Scale <= 0 {
		return DefaultOptions(), fmt.Errorf("scale must be positive, got %v", opts.Scale)
	}
	if opts.Volume < 0 {
		opts.Volume = 0
	}
	if opts.Volume > 1 {
		opts.Volume = 1
	}
	return opts, nil
}
