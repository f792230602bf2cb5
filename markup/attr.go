// SPDX-License-Identifier: Unlicense OR MIT

package markup

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/net/html"

	"boxui.org/style"
)

type attributes map[string]string

func newAttributes(attrs []html.Attribute) attributes {
	out := make(attributes, len(attrs))
	for _, attr := range attrs {
		out[attr.Key] = attr.Val
	}
	return out
}

var sizeModes = map[string]style.SizeMode{
	"fit-content":       style.FitContent,
	"exact":             style.Exact,
	"fill-parent":       style.FillParent,
	"fit-parent-width":  style.FitParentWidth,
	"fit-parent-height": style.FitParentHeight,
	"percent":           style.Percent,
}

var axes = map[string]style.Axes{
	"horizontal": style.Horizontal,
	"vertical":   style.Vertical,
	"both":       style.Both,
}

var alignments = map[string]style.Alignment{
	"start":  style.Start,
	"center": style.Center,
	"end":    style.End,
}

// style converts the attributes to a Style.
func (a attributes) style() (style.Style, error) {
	var st style.Style
	var percent style.Axes
	for key, val := range a {
		val = strings.TrimSpace(val)
		var err error
		switch key {
		case "width", "height":
			var d style.Dim
			var pct bool
			d, pct, err = parseDim(val)
			ax := style.Horizontal
			if key == "width" {
				st.Size.Width = d
			} else {
				st.Size.Height = d
				ax = style.Vertical
			}
			if pct {
				percent |= ax
			}
		case "size":
			m, ok := sizeModes[val]
			if !ok {
				err = fmt.Errorf("unknown size mode %q", val)
			}
			st.Size.Mode = m
		case "exact":
			ax, ok := axes[val]
			if !ok {
				err = fmt.Errorf("unknown axes %q", val)
			}
			st.Size.Axes = ax
		case "margin":
			st.Margin, err = parseSpace(val)
		case "padding":
			st.Padding, err = parseSpace(val)
		case "border":
			st.Border.Width, err = parseLength(val)
		case "border-color":
			st.Border.Color, err = ParseColor(val)
		case "border-radius":
			st.Border.Radius, err = parseCorners(val)
		case "spacing-x":
			st.Spacing.X, err = parseLength(val)
		case "spacing-y":
			st.Spacing.Y, err = parseLength(val)
		case "align":
			al, ok := alignments[val]
			if !ok {
				err = fmt.Errorf("unknown alignment %q", val)
			}
			st.Alignment = al
		case "color":
			st.Color, err = ParseColor(val)
		case "onclick":
		default:
			err = fmt.Errorf("unknown attribute %q", key)
		}
		if err != nil {
			return style.Style{}, fmt.Errorf("%s: %w", key, err)
		}
	}
	if _, ok := a["exact"]; ok {
		if _, ok := a["size"]; ok && st.Size.Mode != style.Exact {
			return style.Style{}, fmt.Errorf("exact: conflicts with size %q", a["size"])
		}
		st.Size.Mode = style.Exact
	}
	if percent != 0 {
		if _, ok := a["size"]; ok && st.Size.Mode != style.Percent {
			return style.Style{}, fmt.Errorf("%% lengths conflict with size %q", a["size"])
		}
		if _, ok := a["exact"]; ok {
			return style.Style{}, fmt.Errorf("%% lengths conflict with exact %q", a["exact"])
		}
		st.Size.Mode = style.Percent
		st.Size.Axes = percent
	}
	return st, nil
}

// parseLength parses a length in pixels.
func parseLength(s string) (float32, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

// parseDim parses a width or height, reporting whether it is a
// percentage.
func parseDim(s string) (style.Dim, bool, error) {
	pct := strings.HasSuffix(s, "%")
	v, err := parseLength(strings.TrimSuffix(s, "%"))
	if err != nil {
		return style.Dim{}, false, err
	}
	return style.Px(v), pct, nil
}

// parseLengths parses one to four space separated lengths.
func parseLengths(s string) ([]float32, error) {
	fields := strings.Fields(s)
	if len(fields) < 1 || len(fields) > 4 {
		return nil, fmt.Errorf("want 1 to 4 lengths, got %q", s)
	}
	vs := make([]float32, len(fields))
	for i, f := range fields {
		v, err := parseLength(f)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

// expand applies the CSS shorthand rules to one to four values.
func expand(vs []float32) (top, right, bottom, left float32) {
	switch len(vs) {
	case 1:
		return vs[0], vs[0], vs[0], vs[0]
	case 2:
		return vs[0], vs[1], vs[0], vs[1]
	case 3:
		return vs[0], vs[1], vs[2], vs[1]
	default:
		return vs[0], vs[1], vs[2], vs[3]
	}
}

func parseSpace(s string) (style.Space, error) {
	vs, err := parseLengths(s)
	if err != nil {
		return style.Space{}, err
	}
	t, r, b, l := expand(vs)
	return style.Space{Top: t, Right: r, Bottom: b, Left: l}, nil
}

// parseCorners parses radii in the order top-left, top-right,
// bottom-right, bottom-left.
func parseCorners(s string) (style.Corners, error) {
	vs, err := parseLengths(s)
	if err != nil {
		return style.Corners{}, err
	}
	nw, ne, se, sw := expand(vs)
	return style.Corners{NW: nw, NE: ne, SE: se, SW: sw}, nil
}

// ParseColor parses #rgb, #rrggbb, #rrggbbaa, an SVG color name or
// transparent.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return color.NRGBA{}, nil
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
