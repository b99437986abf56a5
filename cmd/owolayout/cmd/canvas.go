package cmd

import (
	"fmt"
	"io"

	"github.com/go-owo/owo/pkg/graphics"
)

// printCanvas writes every draw call as one line.
type printCanvas struct {
	w     io.Writer
	depth int
}

func (c *printCanvas) printf(format string, args ...any) {
	for range c.depth {
		fmt.Fprint(c.w, "  ")
	}
	fmt.Fprintf(c.w, format+"\n", args...)
}

func (c *printCanvas) Push() {
	c.printf("push")
	c.depth++
}

func (c *printCanvas) Pop() {
	c.depth = max(0, c.depth-1)
	c.printf("pop")
}

func (c *printCanvas) Translate(x, y, z float64) { c.printf("translate %.2f %.2f %.2f", x, y, z) }
func (c *printCanvas) Scale(x, y, z float64)     { c.printf("scale %.2f %.2f %.2f", x, y, z) }
func (c *printCanvas) RotateX(degrees float64)   { c.printf("rotateX %.2f", degrees) }
func (c *printCanvas) RotateY(degrees float64)   { c.printf("rotateY %.2f", degrees) }

func (c *printCanvas) FillRect(rect graphics.Rect, color graphics.Color) {
	c.printf("fill (%d, %d) %dx%d %s", rect.X, rect.Y, rect.Width, rect.Height, color)
}

func (c *printCanvas) DrawText(text string, x, y int, color graphics.Color) {
	c.printf("text (%d, %d) %q %s", x, y, text, color)
}

func (c *printCanvas) EnableScissor(rect graphics.Rect) {
	c.printf("scissor (%d, %d) %dx%d", rect.X, rect.Y, rect.Width, rect.Height)
}

func (c *printCanvas) DisableScissor() { c.printf("scissor off") }
