package components_test

import (
	"strings"
	"testing"

	"github.com/go-owo/owo/pkg/components"
	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/errors"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
	"github.com/go-owo/owo/pkg/parsing"
	owotest "github.com/go-owo/owo/pkg/testing"
)

func TestLabelContentSize(t *testing.T) {
	l := components.NewLabel("hello")
	got := l.Measure(layout.Loose(graphics.Size{Width: 500, Height: 500}))
	want := graphics.Size{Width: graphics.TextWidth("hello"), Height: graphics.LineHeight()}
	if got != want {
		t.Fatalf("Measure() = %+v, want %+v", got, want)
	}
	if want.Width != 35 {
		t.Fatalf("basic face should advance 7px per glyph, got %d", want.Width)
	}
}

func TestLabelWrapsToAvailableWidth(t *testing.T) {
	l := components.NewLabel("aaa bbb ccc")
	got := l.Measure(layout.Loose(graphics.Size{Width: 50, Height: 500}))
	if got.Height != 2*graphics.LineHeight() {
		t.Fatalf("height = %d, want two lines", got.Height)
	}
	l.Arrange(graphics.RectFromPointSize(graphics.Point{}, got))

	canvas := owotest.NewRecordingCanvas()
	l.Draw(canvas.Context(), 0, 0, 0, 0)
	texts := canvas.OpsNamed("drawText")
	if len(texts) != 2 || texts[0].Params["text"] != "aaa bbb" || texts[1].Params["text"] != "ccc" {
		t.Fatalf("drawn lines = %v", texts)
	}
}

func TestTextBoxTyping(t *testing.T) {
	tb := components.NewTextBox(layout.Fixed(100))
	var changes []string
	tb.Observe(func(s string) { changes = append(changes, s) })

	if tb.OnCharTyped('a', 0) {
		t.Fatal("unfocused text box consumed a char")
	}
	tb.OnFocusGained(core.FocusKeyboardCycle)
	tb.OnCharTyped('h', 0)
	tb.OnCharTyped('i', 0)
	tb.OnKeyPress(core.KeyBackspace, 0, 0)

	if tb.Text() != "h" {
		t.Fatalf("Text() = %q, want h", tb.Text())
	}
	if len(changes) != 3 {
		t.Fatalf("changes = %v", changes)
	}
}

func TestTextBoxHostHookUpdatesValue(t *testing.T) {
	tb := components.NewTextBox(layout.Fixed(100))
	tb.OnChanged("from host")
	if tb.TextValue().Get() != "from host" {
		t.Fatalf("value = %q", tb.TextValue().Get())
	}
}

func TestTextBoxMaxLength(t *testing.T) {
	tb := components.NewTextBox(layout.Fixed(100))
	tb.SetText("abcdef")
	tb.SetMaxLength(3)
	if tb.Text() != "abc" {
		t.Fatalf("Text() = %q, want abc", tb.Text())
	}
	tb.OnFocusGained(core.FocusMouseClick)
	if !tb.OnCharTyped('d', 0) || tb.Text() != "abc" {
		t.Fatalf("typing past the limit changed text to %q", tb.Text())
	}
}

func TestTextBoxHostHookClampsAndReports(t *testing.T) {
	var reported []*errors.OwoError
	errors.SetHandler(reportRecorder(func(err *errors.OwoError) { reported = append(reported, err) }))
	t.Cleanup(func() { errors.SetHandler(nil) })

	tb := components.NewTextBox(layout.Fixed(100))
	tb.SetMaxLength(4)
	tb.OnChanged("overflow")

	if tb.Text() != "over" {
		t.Fatalf("Text() = %q, want over", tb.Text())
	}
	if len(reported) != 1 || reported[0].Kind != errors.KindValidation {
		t.Fatalf("reported = %v, want one validation error", reported)
	}
}

func TestTextBoxEditsScheduleLayout(t *testing.T) {
	tb := components.NewTextBox(layout.Content())
	tb.Arrange(graphics.Rect{Width: 50, Height: 20})
	if tb.NeedsLayout() {
		t.Fatal("expected clean text box after layout")
	}

	tb.SetText("wider")
	if !tb.NeedsLayout() {
		t.Fatal("SetText did not schedule a layout pass")
	}
	tb.Arrange(graphics.Rect{Width: 50, Height: 20})

	tb.OnChanged("wider still")
	if !tb.NeedsLayout() {
		t.Fatal("host edit did not schedule a layout pass")
	}
}

func TestParseLabelRequiresText(t *testing.T) {
	m, err := parsing.LoadBytes([]byte("version: 1\ncomponents:\n  label:\n    color: \"#FFFFFF\"\n"))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if _, err := m.Expand(); err == nil || !strings.Contains(err.Error(), "missing required elements: text") {
		t.Fatalf("Expand error = %v", err)
	}
}

type reportRecorder func(*errors.OwoError)

func (r reportRecorder) HandleError(err *errors.OwoError)   { r(err) }
func (r reportRecorder) HandlePanic(err *errors.PanicError) {}

func TestParseLeaves(t *testing.T) {
	doc := `
version: 1.0.0
components:
  stack-layout:
    children:
      - label:
          $id: title
          text: Title
          color: "#FFAA00"
          text-align: center
      - box:
          $id: swatch
          sizing: fixed(8)
          color: "#00FF00"
          outline: true
      - text-box:
          $id: name
          max-length: 4
          text: Alexander
`
	m, err := parsing.LoadBytes([]byte(doc))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	root, err := m.Expand()
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	label := core.FindByID(root, "title").(*components.Label)
	if label.Text() != "Title" || label.Color() != graphics.RGB(0xFF, 0xAA, 0x00) {
		t.Errorf("label = %q %v", label.Text(), label.Color())
	}
	box := core.FindByID(root, "swatch").(*components.Box)
	if box.Color() != graphics.RGB(0, 0xFF, 0) {
		t.Errorf("box color = %v", box.Color())
	}
	name := core.FindByID(root, "name").(*components.TextBox)
	if name.Text() != "Alex" {
		t.Errorf("text box = %q, want Alex", name.Text())
	}
}
