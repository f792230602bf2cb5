// SPDX-License-Identifier: Unlicense OR MIT

/*
Package markup builds element trees from HTML-like documents.

A document holds exactly one root element. Two elements are known:
<row>, a horizontal container, and <button>, a clickable leaf. Both
need explicit closing tags. Style is given by attributes:

	<row padding="10 20" border="2" border-color="black" align="center">
		<button width="50" height="100" color="#f00" onclick="hello"></button>
		<button width="50%" height="20" margin="5"></button>
	</row>

Lengths are pixels, with an optional px suffix. A width or height
with a % suffix selects the percent size mode for its axis only. Colors are #rgb,
#rrggbb, #rrggbbaa or SVG color names.
*/
package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"boxui.org/layout"
	"boxui.org/widget"
)

// Handlers resolves the names used by onclick attributes to click
// handlers. It returns nil for unknown names.
type Handlers func(name string) func(*widget.Button)

// Map returns Handlers looking names up in m.
func Map(m map[string]func(*widget.Button)) Handlers {
	return func(name string) func(*widget.Button) {
		return m[name]
	}
}

var (
	// ErrNoRoot is returned for documents without elements.
	ErrNoRoot = errors.New("markup: no root element")
	// ErrManyRoots is returned for documents with more than one
	// root element.
	ErrManyRoots = errors.New("markup: more than one root element")
)

// Parse reads a document from r and builds its element tree, stamping
// identities from ids.
func Parse(r io.Reader, ids *layout.IDs, handlers Handlers) (widget.Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("markup: %w", err)
	}
	body := find(doc, "body")
	if body == nil {
		return nil, ErrNoRoot
	}
	roots, err := elementChildren(body)
	if err != nil {
		return nil, err
	}
	switch len(roots) {
	case 0:
		return nil, ErrNoRoot
	case 1:
	default:
		return nil, ErrManyRoots
	}
	b := &builder{ids: ids, handlers: handlers}
	return b.build(roots[0])
}

type builder struct {
	ids      *layout.IDs
	handlers Handlers
}

func (b *builder) build(n *html.Node) (widget.Element, error) {
	attrs := newAttributes(n.Attr)
	st, err := attrs.style()
	if err != nil {
		return nil, fmt.Errorf("markup: <%s>: %w", n.Data, err)
	}
	children, err := elementChildren(n)
	if err != nil {
		return nil, err
	}
	switch n.Data {
	case "button":
		if len(children) > 0 {
			return nil, fmt.Errorf("markup: <button> cannot contain <%s>", children[0].Data)
		}
		var onClick func(*widget.Button)
		if name, ok := attrs["onclick"]; ok {
			if b.handlers != nil {
				onClick = b.handlers(name)
			}
			if onClick == nil {
				return nil, fmt.Errorf("markup: <button>: unknown handler %q", name)
			}
		}
		return widget.NewButton(b.ids, st, onClick), nil
	case "row":
		if _, ok := attrs["onclick"]; ok {
			return nil, errors.New("markup: <row>: onclick is only supported on <button>")
		}
		row := widget.NewRow(b.ids, st)
		for _, c := range children {
			e, err := b.build(c)
			if err != nil {
				return nil, err
			}
			row.Add(e)
		}
		return row, nil
	default:
		return nil, fmt.Errorf("markup: unknown element <%s>", n.Data)
	}
}

// elementChildren returns the element children of n. Comments and
// white space are skipped, other text is an error.
func elementChildren(n *html.Node) ([]*html.Node, error) {
	var res []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			res = append(res, c)
		case html.TextNode:
			if s := strings.TrimSpace(c.Data); s != "" {
				return nil, fmt.Errorf("markup: unexpected text %q", s)
			}
		}
	}
	return res, nil
}

func find(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := find(c, tag); f != nil {
			return f
		}
	}
	return nil
}
