// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"image/color"

	"boxui.org/f32"
	"boxui.org/internal/log"
	"boxui.org/io/event"
	"boxui.org/io/key"
	"boxui.org/io/pointer"
	"boxui.org/layout"
	"boxui.org/op"
	"boxui.org/op/clip"
	"boxui.org/op/paint"
	"boxui.org/raster"
	"boxui.org/style"
	"boxui.org/widget"
)

// Option configures a window.
type Option func(*Config)

// Config describes a window configuration.
type Config struct {
	// Size is the window size in pixels.
	Size image.Point
	// Chrome is the space taken by window decorations on each side.
	Chrome style.Space
	// Background fills the window behind the root element.
	Background color.NRGBA
}

// Window hosts a root element.
type Window struct {
	root   widget.Element
	cnf    Config
	cursor f32.Point
	ops    op.Ops
	raster raster.Rasterizer
}

// NewWindow returns a window for root, laid out for its initial size.
func NewWindow(root widget.Element, options ...Option) *Window {
	defaultOptions := []Option{
		Size(800, 600),
		Background(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	}
	options = append(defaultOptions, options...)
	w := &Window{root: root}
	w.cnf.apply(options)
	w.layout()
	return w
}

// Option applies the options to the window and lays it out again.
func (w *Window) Option(opts ...Option) {
	w.cnf.apply(opts)
	w.layout()
}

// Config returns the current configuration.
func (w *Window) Config() Config {
	return w.cnf
}

// Root returns the root element.
func (w *Window) Root() widget.Element {
	return w.root
}

// Resize changes the window size and lays the tree out again.
func (w *Window) Resize(width, height int) {
	w.Option(Size(width, height))
}

// layout runs both passes over the whole tree. The root is placed
// inside the chrome, offset by its own margin.
func (w *Window) layout() {
	root := w.root
	root.Layout(nil)
	chrome := w.cnf.Chrome.Sanitize()
	margin := root.Style().Sanitize().Margin
	root.SetPosition(f32.Pt(chrome.Left+margin.Left, chrome.Top+margin.Top))
	avail := layout.Size{
		Width:  float32(w.cnf.Size.X) - chrome.Horizontal() - margin.Horizontal(),
		Height: float32(w.cnf.Size.Y) - chrome.Vertical() - margin.Vertical(),
	}.Clamp()
	log.Layout.Printf("window: %dx%d, root %v at %v", w.cnf.Size.X, w.cnf.Size.Y, avail, root.Position())
	root.SetSize(avail)
	root.Layout(&avail)
}

// Frame returns the drawing operations of the window. The list is
// valid until the next call to Frame.
func (w *Window) Frame() *op.Ops {
	w.ops.Reset()
	bg := f32.Rect(0, 0, float32(w.cnf.Size.X), float32(w.cnf.Size.Y))
	paint.FillShape(&w.ops, w.cnf.Background, clip.RRect{Rect: bg}.Path())
	w.root.Render(&w.ops)
	return &w.ops
}

// Screenshot renders a frame to an image.
func (w *Window) Screenshot() *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: w.cnf.Size})
	w.raster.Frame(w.Frame(), img)
	return img
}

// Click delivers a click at p.
func (w *Window) Click(p f32.Point) {
	w.cursor = p
	w.dispatch(pointer.Event{Kind: pointer.Click, Position: p})
}

// Move delivers a pointer move to p.
func (w *Window) Move(p f32.Point) {
	w.cursor = p
	w.dispatch(pointer.Event{Kind: pointer.Move, Position: p})
}

// KeyPress delivers a key press at the last pointer position.
func (w *Window) KeyPress(r rune) {
	w.dispatch(key.Event{Char: r})
}

func (w *Window) dispatch(e event.Event) {
	w.root.HandleEvent(w.cursor, e)
	w.root.Update()
}

func (c *Config) apply(opts []Option) {
	for _, o := range opts {
		o(c)
	}
}

// Size sets the size of the window. The size must be positive.
func Size(w, h int) Option {
	if w <= 0 {
		panic("width must be larger than 0")
	}
	if h <= 0 {
		panic("height must be larger than 0")
	}
	return func(cnf *Config) {
		cnf.Size = image.Point{X: w, Y: h}
	}
}

// Chrome sets the space taken by window decorations.
func Chrome(s style.Space) Option {
	return func(cnf *Config) {
		cnf.Chrome = s
	}
}

// Background sets the window background color.
func Background(c color.NRGBA) Option {
	return func(cnf *Config) {
		cnf.Background = c
	}
}
