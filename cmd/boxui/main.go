// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"boxui.org/f32"
	"boxui.org/internal/log"
)

var (
	configPath = flag.String("config", "", "TOML configuration file.")
	destPath   = flag.String("o", "boxui.png", "output file, or directory for several documents.")
	width      = flag.Int("width", 0, "window width in pixels (overrides the configuration).")
	height     = flag.Int("height", 0, "window height in pixels (overrides the configuration).")
	scale      = flag.Float64("scale", 0, "output scale factor (overrides the configuration).")
	verbose    = flag.Bool("v", false, "print the layout trace.")
	clickAt    = flag.String("click", "", "click at x,y before rendering.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "boxui: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr() error {
	cnf, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *width > 0 {
		cnf.Width = *width
	}
	if *height > 0 {
		cnf.Height = *height
	}
	if *scale > 0 {
		cnf.Scale = *scale
	}
	if *verbose {
		cnf.Debug = true
	}
	if cnf.Debug {
		log.SetDebug(os.Stderr)
	}
	var click *f32.Point
	if *clickAt != "" {
		p, err := parsePoint(*clickAt)
		if err != nil {
			return fmt.Errorf("-click: %w", err)
		}
		click = &p
	}
	docs, err := documents(flag.Args(), *destPath)
	if err != nil {
		return err
	}
	return render(cnf, docs, click, os.Stdout)
}

// parsePoint parses "x,y".
func parsePoint(s string) (f32.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return f32.Point{}, errors.New("want x,y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return f32.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return f32.Point{}, err
	}
	return f32.Pt(float32(x), float32(y)), nil
}
