package graphics

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextAlign controls horizontal alignment of lines within a text block.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// String returns a human-readable representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	default:
		return "left"
	}
}

// DefaultFace is the fixed-size face text is measured with. Hosts draw text
// with their own font but are expected to match its metrics closely enough
// for layout.
var DefaultFace font.Face = basicfont.Face7x13

// TextWidth returns the advance width of a single line in pixels.
func TextWidth(text string) int {
	return font.MeasureString(DefaultFace, text).Ceil()
}

// LineHeight returns the height of one line in pixels.
func LineHeight() int {
	return DefaultFace.Metrics().Height.Ceil()
}

// TextLine is one laid-out line.
type TextLine struct {
	Text  string
	Width int
}

// TextLayout contains measured lines of a text block.
type TextLayout struct {
	Lines      []TextLine
	Size       Size
	LineHeight int
}

// LayoutText splits text into lines at newlines and, when maxWidth is
// positive, wraps words that would overflow it. A single word wider than
// maxWidth gets a line of its own.
func LayoutText(text string, maxWidth int) *TextLayout {
	tl := &TextLayout{LineHeight: LineHeight()}
	for _, paragraph := range strings.Split(text, "\n") {
		for _, line := range wrapLine(paragraph, maxWidth) {
			w := TextWidth(line)
			tl.Lines = append(tl.Lines, TextLine{Text: line, Width: w})
			tl.Size.Width = max(tl.Size.Width, w)
		}
	}
	tl.Size.Height = len(tl.Lines) * tl.LineHeight
	return tl
}

func wrapLine(paragraph string, maxWidth int) []string {
	if maxWidth <= 0 || TextWidth(paragraph) <= maxWidth {
		return []string{paragraph}
	}
	var lines []string
	var current string
	for _, word := range strings.Fields(paragraph) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && TextWidth(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// Draw draws the lines inside a box of the given width starting at (x, y).
func (tl *TextLayout) Draw(canvas Canvas, x, y, width int, align TextAlign, color Color) {
	for i, line := range tl.Lines {
		lx := x
		switch align {
		case TextAlignCenter:
			lx += (width - line.Width) / 2
		case TextAlignRight:
			lx += width - line.Width
		}
		canvas.DrawText(line.Text, lx, y+i*tl.LineHeight, color)
	}
}
