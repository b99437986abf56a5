// Package layout holds the value types that decide how big a component is
// and where it goes: Sizing, Positioning and Constraints. Everything here is
// pure; containers and the component base call into it during a layout pass.
package layout

import (
	"fmt"
	"math"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/go-owo/owo/pkg/graphics"
)

// SizingMethod selects how one axis of a component is sized.
type SizingMethod int

const (
	// SizingContent sizes the axis to the component's intrinsic content plus
	// Value pixels of padding on each side.
	SizingContent SizingMethod = iota
	// SizingFixed sizes the axis to exactly Value pixels.
	SizingFixed
	// SizingFill takes a Weight-proportional share of the space the parent
	// distributes. Outside of a distributing axis it takes all available space.
	SizingFill
	// SizingRatio sizes the axis to Ratio times the other axis.
	SizingRatio
)

func (m SizingMethod) String() string {
	switch m {
	case SizingContent:
		return "content"
	case SizingFixed:
		return "fixed"
	case SizingFill:
		return "fill"
	case SizingRatio:
		return "ratio"
	default:
		return fmt.Sprintf("SizingMethod(%d)", int(m))
	}
}

// Sizing describes how one axis of a component derives its pixel extent.
// The zero value is content sizing without padding.
type Sizing struct {
	Method SizingMethod
	Value  int
	Weight float64
	Ratio  float64
}

// Fixed sizes an axis to px pixels.
func Fixed(px int) Sizing {
	return Sizing{Method: SizingFixed, Value: px}
}

// Content sizes an axis to the intrinsic content.
func Content() Sizing {
	return Sizing{Method: SizingContent}
}

// ContentPadded sizes an axis to the intrinsic content plus padding on both sides.
func ContentPadded(padding int) Sizing {
	return Sizing{Method: SizingContent, Value: padding}
}

// Fill takes a weighted share of the parent's remaining space.
func Fill(weight float64) Sizing {
	return Sizing{Method: SizingFill, Weight: weight}
}

// Ratio sizes an axis relative to the other one.
func Ratio(ratio float64) Sizing {
	return Sizing{Method: SizingRatio, Ratio: ratio}
}

// IsContent reports whether the axis depends on intrinsic content.
func (s Sizing) IsContent() bool { return s.Method == SizingContent }

// IsFill reports whether the axis takes parent space.
func (s Sizing) IsFill() bool { return s.Method == SizingFill }

// IsRatio reports whether the axis follows the other axis.
func (s Sizing) IsRatio() bool { return s.Method == SizingRatio }

// finite rejects NaN and infinite weights and ratios.
var finite = validation.By(func(value any) error {
	if v, ok := value.(float64); ok && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return validation.NewError("sizing_not_finite", "must be a finite number")
	}
	return nil
})

// Validate rejects negative pixel values and non-positive or non-finite
// weights and ratios.
func (s Sizing) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Method, validation.In(SizingContent, SizingFixed, SizingFill, SizingRatio)),
		validation.Field(&s.Value, validation.Min(0)),
		validation.Field(&s.Weight, validation.When(s.Method == SizingFill,
			validation.Required.Error("fill weight must be positive"),
			finite,
			validation.Min(0.0).Exclusive().Error("fill weight must be positive"),
		)),
		validation.Field(&s.Ratio, validation.When(s.Method == SizingRatio,
			validation.Required.Error("ratio must be positive"),
			finite,
			validation.Min(0.0).Exclusive().Error("ratio must be positive"),
		)),
	)
}

// ValidatePair validates both axes and rejects sizings where each axis
// depends on the other.
func ValidatePair(horizontal, vertical Sizing) error {
	if err := horizontal.Validate(); err != nil {
		return fmt.Errorf("horizontal: %w", err)
	}
	if err := vertical.Validate(); err != nil {
		return fmt.Errorf("vertical: %w", err)
	}
	if horizontal.IsRatio() && vertical.IsRatio() {
		return validation.NewError("sizing_ratio_cycle", "at most one axis may use ratio sizing")
	}
	return nil
}

// Resolve computes the extent of a non-ratio axis. available is the space the
// parent offers on this axis and content is the intrinsic content extent.
// Ratio axes resolve to 0 here; use ResolveSize.
func (s Sizing) Resolve(available, content int) int {
	switch s.Method {
	case SizingFixed:
		return s.Value
	case SizingContent:
		return content + 2*s.Value
	case SizingFill:
		if available >= Unbounded {
			return 0
		}
		return max(0, available)
	default:
		return 0
	}
}

// ResolveSize computes both axes within constraints. content is only invoked
// when an axis uses content sizing, receiving the space available to it.
func ResolveSize(horizontal, vertical Sizing, c Constraints, content func(space graphics.Size) graphics.Size) graphics.Size {
	var intrinsic graphics.Size
	if (horizontal.IsContent() || vertical.IsContent()) && content != nil {
		space := c.Max()
		if horizontal.IsContent() {
			space.Width = deflateMax(space.Width, 2*horizontal.Value)
		}
		if vertical.IsContent() {
			space.Height = deflateMax(space.Height, 2*vertical.Value)
		}
		intrinsic = content(space)
	}

	var size graphics.Size
	switch {
	case horizontal.IsRatio() && vertical.IsRatio():
		// Rejected by ValidatePair; nothing sensible to derive from.
	case horizontal.IsRatio():
		size.Height = clampInt(vertical.Resolve(c.MaxHeight, intrinsic.Height), c.MinHeight, c.MaxHeight)
		size.Width = roundRatio(size.Height, horizontal.Ratio)
	case vertical.IsRatio():
		size.Width = clampInt(horizontal.Resolve(c.MaxWidth, intrinsic.Width), c.MinWidth, c.MaxWidth)
		size.Height = roundRatio(size.Width, vertical.Ratio)
	default:
		size.Width = horizontal.Resolve(c.MaxWidth, intrinsic.Width)
		size.Height = vertical.Resolve(c.MaxHeight, intrinsic.Height)
	}
	return c.Constrain(size)
}

func roundRatio(other int, ratio float64) int {
	return int(math.Round(float64(other) * ratio))
}

// DistributeFill splits remaining pixels between fill children by weight.
// The returned shares always sum to remaining (or 0 when there is nothing to
// share) so weighted children tile the space without gaps.
func DistributeFill(remaining int, weights []float64) []int {
	shares := make([]int, len(weights))
	if remaining <= 0 || len(weights) == 0 {
		return shares
	}
	total := 0.0
	for _, w := range weights {
		if usableWeight(w) {
			total += w
		}
	}
	if total <= 0 {
		return shares
	}
	cumulative := 0.0
	assigned := 0
	for i, w := range weights {
		if usableWeight(w) {
			cumulative += w
		}
		edge := int(math.Round(cumulative / total * float64(remaining)))
		shares[i] = edge - assigned
		assigned = edge
	}
	return shares
}

// usableWeight reports whether w can take part in fill distribution.
func usableWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 1)
}

// String renders the sizing in markup shorthand, e.g. "fill(2)".
func (s Sizing) String() string {
	switch s.Method {
	case SizingFixed:
		return "fixed(" + strconv.Itoa(s.Value) + ")"
	case SizingContent:
		if s.Value == 0 {
			return "content"
		}
		return "content(" + strconv.Itoa(s.Value) + ")"
	case SizingFill:
		return "fill(" + strconv.FormatFloat(s.Weight, 'g', -1, 64) + ")"
	case SizingRatio:
		return "ratio(" + strconv.FormatFloat(s.Ratio, 'g', -1, 64) + ")"
	default:
		return s.Method.String()
	}
}
