// SPDX-License-Identifier: Unlicense OR MIT

package markup

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"boxui.org/f32"
	"boxui.org/io/pointer"
	"boxui.org/layout"
	"boxui.org/style"
	"boxui.org/widget"
)

const nested = `
<row padding="20 120 10 10" border="2" border-color="black" color="#787878">
	<row border="2" border-color="black">
		<button width="40" height="60" color="#ffff00" onclick="hello"></button>
		<button width="20px" height="40" color="cyan"></button>
	</row>
</row>
`

func TestParseNested(t *testing.T) {
	var ids layout.IDs
	var clicked []layout.ID
	root, err := Parse(strings.NewReader(nested), &ids, Map(map[string]func(*widget.Button){
		"hello": func(b *widget.Button) { clicked = append(clicked, b.ID()) },
	}))
	if err != nil {
		t.Fatal(err)
	}
	root.Layout(nil)
	root.Layout(&layout.Size{Width: 198, Height: 98})
	var buttons []widget.Element
	widget.Walk(root, func(e widget.Element) bool {
		if _, ok := e.(*widget.Button); ok {
			buttons = append(buttons, e)
		}
		return true
	})
	if len(buttons) != 2 {
		t.Fatalf("got %d buttons", len(buttons))
	}
	want := []f32.Rectangle{f32.Rect(14, 24, 54, 84), f32.Rect(54, 24, 74, 64)}
	for i, b := range buttons {
		if got := layout.Bounds(b); got != want[i] {
			t.Errorf("button %d: %v, want %v", i, got, want[i])
		}
	}
	root.HandleEvent(f32.Pt(20, 30), pointer.Event{Kind: pointer.Click})
	if len(clicked) != 1 || clicked[0] != buttons[0].ID() {
		t.Errorf("clicked = %v", clicked)
	}
	st := root.Style()
	if st.Padding != (style.Space{Top: 20, Right: 120, Bottom: 10, Left: 10}) ||
		st.Color != (color.NRGBA{R: 0x78, G: 0x78, B: 0x78, A: 0xff}) ||
		st.Border.Color != (color.NRGBA{A: 0xff}) {
		t.Errorf("root style:\n%s", spew.Sdump(st))
	}
}

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		attrs string
		want  style.Style
	}{
		{`margin="1 2 3"`, style.Style{Margin: style.Space{Top: 1, Right: 2, Bottom: 3, Left: 2}}},
		{`padding="4"`, style.Style{Padding: style.UniformSpace(4)}},
		{`padding="1 2"`, style.Style{Padding: style.Space{Top: 1, Right: 2, Bottom: 1, Left: 2}}},
		{`border-radius="1 2 3 4"`, style.Style{Border: style.Border{Radius: style.Corners{NW: 1, NE: 2, SE: 3, SW: 4}}}},
		{`spacing-x="10" spacing-y="3"`, style.Style{Spacing: style.Spacing{X: 10, Y: 3}}},
		{`align="end"`, style.Style{Alignment: style.End}},
		{`color="#11223344"`, style.Style{Color: color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}}},
		{`color="#abc"`, style.Style{Color: color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}}},
		{`color="transparent"`, style.Style{}},
		{`width="30" height="20" exact="horizontal"`, style.Style{Size: style.Size{
			Width: style.Px(30), Height: style.Px(20), Mode: style.Exact, Axes: style.Horizontal,
		}}},
		{`width="30" size="exact"`, style.Style{Size: style.Size{Width: style.Px(30), Mode: style.Exact}}},
		{`width="50%"`, style.Style{Size: style.Size{Width: style.Px(50), Mode: style.Percent, Axes: style.Horizontal}}},
		{`width="50%" height="20"`, style.Style{Size: style.Size{
			Width: style.Px(50), Height: style.Px(20), Mode: style.Percent, Axes: style.Horizontal,
		}}},
		{`width="50%" height="10%"`, style.Style{Size: style.Size{
			Width: style.Px(50), Height: style.Px(10), Mode: style.Percent, Axes: style.Both,
		}}},
		{`size="fill-parent"`, style.Style{Size: style.Size{Mode: style.FillParent}}},
		{`size="fit-parent-width"`, style.Style{Size: style.Size{Mode: style.FitParentWidth}}},
	}
	for _, test := range tests {
		var ids layout.IDs
		e, err := Parse(strings.NewReader(`<button `+test.attrs+`></button>`), &ids, nil)
		if err != nil {
			t.Errorf("%s: %v", test.attrs, err)
			continue
		}
		if got := e.Style(); got != test.want {
			t.Errorf("%s: got\n%s\nwant\n%s", test.attrs, spew.Sdump(got), spew.Sdump(test.want))
		}
	}
}

func TestParsePercentOneAxis(t *testing.T) {
	var ids layout.IDs
	root, err := Parse(strings.NewReader(`<row><button width="50%" height="20"></button></row>`), &ids, nil)
	if err != nil {
		t.Fatal(err)
	}
	root.Layout(nil)
	root.Layout(&layout.Size{Width: 800, Height: 600})
	b := root.(*widget.Row).Elements()[0]
	if got := b.Size(); got != (layout.Size{Width: 400, Height: 20}) {
		t.Errorf("button size = %v, want 400x20", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		doc    string
		substr string
	}{
		{``, "no root"},
		{`<row></row><row></row>`, "more than one"},
		{`<div></div>`, "unknown element <div>"},
		{`<button><row></row></button>`, "cannot contain"},
		{`<row>hello</row>`, "unexpected text"},
		{`<button width="wide"></button>`, "width"},
		{`<button colour="red"></button>`, "unknown attribute"},
		{`<button color="notacolor"></button>`, "unknown color"},
		{`<button color="#12345"></button>`, "invalid color"},
		{`<button margin="1 2 3 4 5"></button>`, "1 to 4"},
		{`<button align="middle"></button>`, "unknown alignment"},
		{`<button size="huge"></button>`, "unknown size mode"},
		{`<button exact="diagonal"></button>`, "unknown axes"},
		{`<button exact="both" size="percent"></button>`, "conflicts"},
		{`<button width="5%" size="exact"></button>`, "conflict"},
		{`<button height="5%" exact="both"></button>`, "conflict"},
		{`<button onclick="missing"></button>`, "unknown handler"},
		{`<row onclick="x"></row>`, "only supported"},
	}
	for _, test := range tests {
		var ids layout.IDs
		_, err := Parse(strings.NewReader(test.doc), &ids, Map(map[string]func(*widget.Button){
			"x": func(*widget.Button) {},
		}))
		if err == nil {
			t.Errorf("%q: no error", test.doc)
			continue
		}
		if !strings.Contains(err.Error(), test.substr) {
			t.Errorf("%q: error %q does not mention %q", test.doc, err, test.substr)
		}
	}
}

func TestParseNoRoot(t *testing.T) {
	var ids layout.IDs
	_, err := Parse(strings.NewReader("<!-- nothing -->"), &ids, nil)
	if !errors.Is(err, ErrNoRoot) {
		t.Errorf("err = %v, want ErrNoRoot", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"Red", color.NRGBA{R: 0xff, A: 0xff}},
		{" #00ff00 ", color.NRGBA{G: 0xff, A: 0xff}},
		{"#0000ff80", color.NRGBA{B: 0xff, A: 0x80}},
	}
	for _, test := range tests {
		got, err := ParseColor(test.in)
		if err != nil || got != test.want {
			t.Errorf("ParseColor(%q) = %v, %v, want %v", test.in, got, err, test.want)
		}
	}
	if _, err := ParseColor("#xyz"); err == nil {
		t.Error("ParseColor(#xyz) succeeded")
	}
}
