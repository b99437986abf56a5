package testing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-owo/owo/pkg/graphics"
)

// DisplayOp represents a recorded canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// String renders the op as "name(key=value, ...)" with sorted keys.
func (o DisplayOp) String() string {
	if len(o.Params) == 0 {
		return o.Op
	}
	parts := make([]string, 0, len(o.Params))
	for _, k := range sortedKeys(o.Params) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, o.Params[k]))
	}
	return o.Op + "(" + strings.Join(parts, ", ") + ")"
}

// RecordingCanvas implements graphics.Canvas and records every call.
type RecordingCanvas struct {
	ops   []DisplayOp
	depth int
}

// NewRecordingCanvas returns an empty recording canvas.
func NewRecordingCanvas() *RecordingCanvas {
	return &RecordingCanvas{}
}

// Context wraps the canvas in a draw context.
func (c *RecordingCanvas) Context() *graphics.DrawContext {
	return graphics.NewDrawContext(c)
}

// Ops returns the recorded operations in order.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// OpsNamed returns the recorded operations called op.
func (c *RecordingCanvas) OpsNamed(op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range c.ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// Names returns the operation names in order, handy for sequence assertions.
func (c *RecordingCanvas) Names() []string {
	names := make([]string, len(c.ops))
	for i, o := range c.ops {
		names[i] = o.Op
	}
	return names
}

// Depth returns the current push depth. A balanced draw leaves it at zero.
func (c *RecordingCanvas) Depth() int {
	return c.depth
}

// Reset drops all recorded operations.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
	c.depth = 0
}

func (c *RecordingCanvas) Push() {
	c.depth++
	c.ops = append(c.ops, DisplayOp{Op: "push"})
}

func (c *RecordingCanvas) Pop() {
	c.depth--
	c.ops = append(c.ops, DisplayOp{Op: "pop"})
}

func (c *RecordingCanvas) Translate(x, y, z float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("x", round2(x), "y", round2(y), "z", round2(z)),
	})
}

func (c *RecordingCanvas) Scale(x, y, z float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "scale",
		Params: sortedMap("x", round2(x), "y", round2(y), "z", round2(z)),
	})
}

func (c *RecordingCanvas) RotateX(degrees float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "rotateX",
		Params: sortedMap("degrees", round2(degrees)),
	})
}

func (c *RecordingCanvas) RotateY(degrees float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "rotateY",
		Params: sortedMap("degrees", round2(degrees)),
	})
}

func (c *RecordingCanvas) FillRect(rect graphics.Rect, color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "fillRect",
		Params: sortedMap("rect", serializeRect(rect), "color", serializeColor(color)),
	})
}

func (c *RecordingCanvas) DrawText(text string, x, y int, color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawText",
		Params: sortedMap("text", text, "x", x, "y", y, "color", serializeColor(color)),
	})
}

func (c *RecordingCanvas) EnableScissor(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "enableScissor",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *RecordingCanvas) DisableScissor() {
	c.ops = append(c.ops, DisplayOp{Op: "disableScissor"})
}

// Record appends a custom operation, for fakes that draw through the canvas.
func (c *RecordingCanvas) Record(op string, kvs ...any) {
	c.ops = append(c.ops, DisplayOp{Op: op, Params: sortedMap(kvs...)})
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap("x", r.X, "y", r.Y, "width", r.Width, "height", r.Height)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. JSON encoding
// sorts the keys, which keeps snapshots stable.
func sortedMap(kvs ...any) map[string]any {
	if len(kvs) == 0 {
		return nil
	}
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
