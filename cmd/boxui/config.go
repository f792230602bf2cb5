// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/BurntSushi/toml"

	"boxui.org/markup"
	"boxui.org/style"
)

// config is the rendering configuration.
type config struct {
	Width      int         `toml:"width"`
	Height     int         `toml:"height"`
	Background string      `toml:"background"`
	Scale      float64     `toml:"scale"`
	Debug      bool        `toml:"debug"`
	Chrome     style.Space `toml:"chrome"`
}

func defaultConfig() config {
	return config{
		Width:      800,
		Height:     600,
		Background: "white",
		Scale:      1,
	}
}

// loadConfig reads the TOML file at path over the defaults.
func loadConfig(path string) (config, error) {
	cnf := defaultConfig()
	if path == "" {
		return cnf, nil
	}
	md, err := toml.DecodeFile(path, &cnf)
	if err != nil {
		return config{}, fmt.Errorf("config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return config{}, fmt.Errorf("config: %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cnf, nil
}

// validate checks cnf and returns its background color.
func (c config) validate() (color.NRGBA, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return color.NRGBA{}, fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return color.NRGBA{}, errors.New("scale must be positive")
	}
	bg, err := markup.ParseColor(c.Background)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("background: %w", err)
	}
	return bg, nil
}
