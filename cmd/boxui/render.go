// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"boxui.org/app"
	"boxui.org/f32"
	"boxui.org/layout"
	"boxui.org/markup"
	"boxui.org/widget"
)

//go:embed default.html
var defaultDocument []byte

// document is a markup source and the image it renders to.
type document struct {
	name string
	// path is the markup file. The default document has none.
	path string
	out  string
}

// documents maps the markup files in args to their output images.
func documents(args []string, dest string) ([]document, error) {
	switch len(args) {
	case 0:
		return []document{{name: "default", out: dest}}, nil
	case 1:
		return []document{{name: args[0], path: args[0], out: dest}}, nil
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, err
	}
	docs := make([]document, len(args))
	seen := make(map[string]string)
	for i, a := range args {
		base := strings.TrimSuffix(filepath.Base(a), filepath.Ext(a)) + ".png"
		if prev, ok := seen[base]; ok {
			return nil, fmt.Errorf("%s and %s render to the same image %s", prev, a, base)
		}
		seen[base] = a
		docs[i] = document{name: a, path: a, out: filepath.Join(dest, base)}
	}
	return docs, nil
}

func (d document) open() (io.ReadCloser, error) {
	if d.path == "" {
		return io.NopCloser(bytes.NewReader(defaultDocument)), nil
	}
	return os.Open(d.path)
}

// render lays out and renders every document concurrently. Click
// handlers report to out.
func render(cnf config, docs []document, click *f32.Point, out io.Writer) error {
	bg, err := cnf.validate()
	if err != nil {
		return err
	}
	var ids layout.IDs
	var mu sync.Mutex
	var renders errgroup.Group
	for _, d := range docs {
		d := d
		renders.Go(func() error {
			handlers := func(name string) func(*widget.Button) {
				return func(b *widget.Button) {
					mu.Lock()
					defer mu.Unlock()
					fmt.Fprintf(out, "%s: %s clicked\n", d.name, name)
				}
			}
			img, err := renderDocument(cnf, d, &ids, handlers, bg, click)
			if err != nil {
				return fmt.Errorf("%s: %w", d.name, err)
			}
			return writePNG(d.out, img)
		})
	}
	return renders.Wait()
}

func renderDocument(cnf config, d document, ids *layout.IDs, handlers markup.Handlers, bg color.NRGBA, click *f32.Point) (image.Image, error) {
	r, err := d.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	root, err := markup.Parse(r, ids, handlers)
	if err != nil {
		return nil, err
	}
	w := app.NewWindow(root,
		app.Size(cnf.Width, cnf.Height),
		app.Chrome(cnf.Chrome),
		app.Background(bg),
	)
	if click != nil {
		w.Click(*click)
	}
	img := w.Screenshot()
	if cnf.Scale == 1 {
		return img, nil
	}
	sz := img.Bounds().Size()
	scaled := image.NewRGBA(image.Rectangle{Max: image.Point{
		X: max(1, int(float64(sz.X)*cnf.Scale)),
		Y: max(1, int(float64(sz.Y)*cnf.Scale)),
	}})
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
