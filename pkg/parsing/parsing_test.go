package parsing

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/errors"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
)

type testBox struct {
	core.BaseComponent
	color graphics.Color
}

func (b *testBox) ParseProperties(model *Model, el *Element, children map[string]*Element) error {
	return Apply(children, "color", ParseColor, func(c graphics.Color) { b.color = c })
}

type testPanel struct {
	core.BaseParent
}

func (p *testPanel) ParseProperties(model *Model, el *Element, children map[string]*Element) error {
	parsed, err := model.ParseChildren(children["children"])
	if err != nil {
		return err
	}
	p.AddChildren(parsed...)
	return nil
}

func testRegistry() *Registry {
	r := NewRegistry()
	r.Register("box", func(el *Element) (core.Component, error) {
		b := &testBox{}
		b.SetSelf(b)
		return b, nil
	})
	r.Register("panel", func(el *Element) (core.Component, error) {
		p := &testPanel{}
		p.SetSelf(p)
		return p, nil
	})
	return r
}

const document = `
version: 1.0.0
components:
  panel:
    $id: root
    sizing: fill(1)
    children:
      - box:
          $id: first
          sizing:
            horizontal: fixed(40)
            vertical: ratio(0.5)
          margins: {top: 2, horizontal: 3}
          color: "#FF0000"
          tooltip-text: hello
      - box:
          positioning: relative(50, 100)
`

func TestExpandBuildsTree(t *testing.T) {
	m, err := LoadBytes([]byte(document), WithRegistry(testRegistry()))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	root, err := ExpandAs[*testPanel](m)
	if err != nil {
		t.Fatalf("ExpandAs: %v", err)
	}

	if root.ID() != "root" {
		t.Errorf("root id = %q", root.ID())
	}
	if h, v := root.Sizing(); h != layout.Fill(1) || v != layout.Fill(1) {
		t.Errorf("root sizing = %v, %v", h, v)
	}
	if len(root.Children()) != 2 {
		t.Fatalf("children = %d, want 2", len(root.Children()))
	}

	first := root.Children()[0].(*testBox)
	if h, v := first.Sizing(); h != layout.Fixed(40) || v != layout.Ratio(0.5) {
		t.Errorf("first sizing = %v, %v", h, v)
	}
	if got := first.Margins(); got != (graphics.Insets{Top: 2, Left: 3, Right: 3}) {
		t.Errorf("first margins = %+v", got)
	}
	if first.color != graphics.Color(0xFFFF0000) {
		t.Errorf("first color = %v", first.color)
	}
	if first.TooltipText() != "hello" {
		t.Errorf("tooltip = %q", first.TooltipText())
	}
	if got := root.Children()[1].Positioning(); got != layout.Relative(50, 100) {
		t.Errorf("second positioning = %v", got)
	}
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"no version", "components:\n  box: {}\n", "no version"},
		{"major 2", "version: 2.0.0\ncomponents:\n  box: {}\n", "unsupported version"},
		{"bad version", "version: banana\ncomponents:\n  box: {}\n", "invalid version"},
		{"no components", "version: 1.0.0\n", "no components"},
		{"unknown key", "version: 1.0.0\ntemplates: {}\n", "unknown document key"},
		{"two roots", "version: 1.0.0\ncomponents:\n  box: {}\n  panel: {}\n", "exactly one key"},
		{"sequence attribute", "version: 1.0.0\ncomponents:\n  box:\n    $id: [a]\n", "must be a scalar"},
		{"recursive alias", "version: 1.0.0\ncomponents:\n  panel: &a\n    children:\n      - panel: *a\n", "recursive alias"},
		{"recursive element alias", "version: 1.0.0\ncomponents:\n  panel:\n    children: &list\n      - panel:\n          children: *list\n", "recursive alias"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(tt.doc), WithRegistry(testRegistry()))
			if err == nil {
				t.Fatal("expected error")
			}
			var perr *errors.ParseError
			if !stderrors.As(err, &perr) {
				t.Fatalf("error %T is not a ParseError", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadExpandsAliases(t *testing.T) {
	doc := "version: 1.0.0\ncomponents:\n  panel:\n    children:\n      - box: &red\n          color: \"#FF0000\"\n      - box: *red\n"
	m, err := LoadBytes([]byte(doc), WithRegistry(testRegistry()))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	root, err := ExpandAs[*testPanel](m)
	if err != nil {
		t.Fatalf("ExpandAs: %v", err)
	}
	if len(root.Children()) != 2 {
		t.Fatalf("children = %d, want 2", len(root.Children()))
	}
	for i, child := range root.Children() {
		if got := child.(*testBox).color; got != graphics.Color(0xFFFF0000) {
			t.Errorf("child %d color = %v", i, got)
		}
	}
}

func TestExpandReportsLocation(t *testing.T) {
	doc := "version: 1\ncomponents:\n  panel:\n    children:\n      - gizmo: {}\n"
	m, err := LoadBytes([]byte(doc), WithRegistry(testRegistry()))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	_, err = m.Expand()
	var perr *errors.ParseError
	if !stderrors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Element != "gizmo" || perr.Line != 5 {
		t.Fatalf("error located at <%s> line %d", perr.Element, perr.Line)
	}
}

func TestExpandRejectsInvalidSizing(t *testing.T) {
	doc := "version: 1\ncomponents:\n  box:\n    sizing: fill(0)\n"
	m, err := LoadBytes([]byte(doc), WithRegistry(testRegistry()))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if _, err := m.Expand(); err == nil {
		t.Fatal("expected zero fill weight to fail parsing")
	}
}

func scalarElement(text string) *Element {
	return &Element{Name: "value", Text: text}
}

func TestParseSizing(t *testing.T) {
	tests := []struct {
		in      string
		want    layout.Sizing
		wantErr bool
	}{
		{in: "fixed(40)", want: layout.Fixed(40)},
		{in: "content", want: layout.Content()},
		{in: "content(2)", want: layout.ContentPadded(2)},
		{in: "fill", want: layout.Fill(1)},
		{in: "fill(2.5)", want: layout.Fill(2.5)},
		{in: "ratio(0.5)", want: layout.Ratio(0.5)},
		{in: "fixed", wantErr: true},
		{in: "fixed(-1)", wantErr: true},
		{in: "ratio(0)", wantErr: true},
		{in: "stretch(1)", wantErr: true},
		{in: "fill(1", wantErr: true},
		{in: "fill(Inf)", wantErr: true},
		{in: "ratio(NaN)", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseSizing(scalarElement(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSizing(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseSizing(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseSizingPairRejectsRatioCycle(t *testing.T) {
	el := &Element{Name: "sizing", Children: []*Element{
		{Name: "horizontal", Text: "ratio(1)"},
		{Name: "vertical", Text: "ratio(2)"},
	}}
	if _, _, err := ParseSizingPair(el, layout.Content(), layout.Content()); err == nil {
		t.Fatal("expected ratio on both axes to be rejected")
	}
}

func TestParsePositioning(t *testing.T) {
	tests := []struct {
		in      string
		want    layout.Positioning
		wantErr bool
	}{
		{in: "layout", want: layout.Layout()},
		{in: "absolute(4, 8)", want: layout.Absolute(4, 8)},
		{in: "relative(0,100)", want: layout.Relative(0, 100)},
		{in: "relative(101, 0)", wantErr: true},
		{in: "absolute(4)", wantErr: true},
		{in: "floating(1, 2)", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePositioning(scalarElement(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePositioning(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePositioning(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseScalars(t *testing.T) {
	if v, err := ParseBool(scalarElement("true")); err != nil || !v {
		t.Errorf("ParseBool(true) = %v, %v", v, err)
	}
	if _, err := ParseBool(scalarElement("yes")); err == nil {
		t.Error("ParseBool(yes) should fail")
	}
	if v, err := ParseFloat(scalarElement(" 0.75 ")); err != nil || v != 0.75 {
		t.Errorf("ParseFloat = %v, %v", v, err)
	}
	if _, err := ParseInt(scalarElement("1.5")); err == nil {
		t.Error("ParseInt(1.5) should fail")
	}
	if c, err := ParseColor(scalarElement("0x80FFFFFF")); err != nil || c != graphics.Color(0x80FFFFFF) {
		t.Errorf("ParseColor = %v, %v", c, err)
	}
	if _, err := ParseColor(scalarElement("red")); err == nil {
		t.Error("ParseColor(red) should fail")
	}
	id, err := ParseIdentifier(scalarElement("owo:thing"))
	if err != nil || id.String() != "owo:thing" {
		t.Errorf("ParseIdentifier = %v, %v", id, err)
	}
	if _, err := ParseInsets(scalarElement("-1")); err == nil {
		t.Error("negative insets should fail")
	}
}

func TestExpectAttributes(t *testing.T) {
	el := &Element{Name: "entity", Attributes: map[string]string{"type": "pig"}}
	if err := ExpectAttributes(el, "type"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := ExpectAttributes(el, "type", "id")
	if err == nil || !strings.Contains(err.Error(), "id") {
		t.Fatalf("expected missing id, got %v", err)
	}
}

func TestExpectChildren(t *testing.T) {
	el := &Element{Name: "label", Children: []*Element{{Name: "text", Text: "hi"}}}
	if err := ExpectChildren(el, "text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := ExpectChildren(el, "text", "color", "max-width")
	if err == nil || !strings.Contains(err.Error(), "color, max-width") {
		t.Fatalf("expected missing color and max-width, got %v", err)
	}
}

func TestAttributeError(t *testing.T) {
	inner := stderrors.New("want vertical or horizontal")
	err := AttributeError(&Element{Name: "flow-layout", Line: 3}, "direction", "up", inner)
	if !stderrors.Is(err, inner) {
		t.Fatal("expected the cause to be wrapped")
	}
	if want := `invalid direction attribute "up"`; !strings.Contains(err.Error(), want) {
		t.Fatalf("error %q does not mention %q", err, want)
	}
}
