package parsing

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
)

// Apply parses the child element called name, if present, and passes the
// result to set. A missing child is not an error.
func Apply[T any](children map[string]*Element, name string, parse func(*Element) (T, error), set func(T)) error {
	el, ok := children[name]
	if !ok {
		return nil
	}
	v, err := parse(el)
	if err != nil {
		return err
	}
	set(v)
	return nil
}

// ExpectAttributes fails unless el carries every named attribute.
func ExpectAttributes(el *Element, names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := el.Attributes[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return el.Errorf("missing required attributes: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ExpectChildren fails unless el has a child element for every name.
func ExpectChildren(el *Element, names ...string) error {
	var missing []string
	for _, name := range names {
		if el.Child(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return el.Errorf("missing required elements: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ExpectOnly fails when el has a child element whose name is not allowed.
func ExpectOnly(el *Element, allowed ...string) error {
	for _, child := range el.Children {
		if !slices.Contains(allowed, child.Name) {
			return child.Errorf("unexpected element, want one of: %s", strings.Join(allowed, ", "))
		}
	}
	return nil
}

func scalar(el *Element) (string, error) {
	if !el.IsScalar() {
		return "", el.Errorf("expected a scalar value")
	}
	return strings.TrimSpace(el.Text), nil
}

// ParseText returns the element's text.
func ParseText(el *Element) (string, error) {
	if !el.IsScalar() {
		return "", el.Errorf("expected text")
	}
	return el.Text, nil
}

// ParseFloat parses the element's text as a float.
func ParseFloat(el *Element) (float64, error) {
	s, err := scalar(el)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, el.Errorf("invalid number %q", s)
	}
	return v, nil
}

// ParseInt parses the element's text as an integer.
func ParseInt(el *Element) (int, error) {
	s, err := scalar(el)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, el.Errorf("invalid integer %q", s)
	}
	return v, nil
}

// ParseBool parses "true" or "false".
func ParseBool(el *Element) (bool, error) {
	s, err := scalar(el)
	if err != nil {
		return false, err
	}
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, el.Errorf("invalid boolean %q, want true or false", s)
}

// ParseIdentifier parses "namespace:path", defaulting the namespace.
func ParseIdentifier(el *Element) (core.Identifier, error) {
	s, err := scalar(el)
	if err != nil {
		return core.Identifier{}, err
	}
	return ParseIdentifierText(el, s)
}

// ParseIdentifierText parses s as an identifier, reporting errors against el.
// Attribute values go through here.
func ParseIdentifierText(el *Element, s string) (core.Identifier, error) {
	id, err := core.ParseIdentifier(s)
	if err != nil {
		return core.Identifier{}, el.Wrap(err, "invalid identifier")
	}
	return id, nil
}

// ParseColor parses "#RRGGBB", "#AARRGGBB" or the 0x forms of both.
// Six digit colors are opaque.
func ParseColor(el *Element) (graphics.Color, error) {
	s, err := scalar(el)
	if err != nil {
		return 0, err
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		hex, ok = strings.CutPrefix(strings.ToLower(s), "0x")
	}
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return 0, el.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, el.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return graphics.Color(v), nil
}

// call splits "name(a, b)" into its name and trimmed arguments. A bare name
// has no arguments.
func call(s string) (name string, args []string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return strings.TrimSpace(s), nil, true
	}
	if !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	name = strings.TrimSpace(s[:open])
	inner := strings.TrimSpace(s[open+1 : len(s)-1])
	if inner == "" {
		return name, nil, true
	}
	for _, arg := range strings.Split(inner, ",") {
		args = append(args, strings.TrimSpace(arg))
	}
	return name, args, true
}

// ParseSizing parses one axis: "fixed(40)", "content", "content(2)",
// "fill", "fill(2)" or "ratio(0.5)".
func ParseSizing(el *Element) (layout.Sizing, error) {
	s, err := scalar(el)
	if err != nil {
		return layout.Sizing{}, err
	}
	name, args, ok := call(s)
	if !ok || len(args) > 1 {
		return layout.Sizing{}, el.Errorf("invalid sizing %q", s)
	}

	var sizing layout.Sizing
	switch name {
	case "fixed":
		if len(args) != 1 {
			return layout.Sizing{}, el.Errorf("fixed sizing needs a pixel value")
		}
		px, err := strconv.Atoi(args[0])
		if err != nil {
			return layout.Sizing{}, el.Errorf("invalid fixed size %q", args[0])
		}
		sizing = layout.Fixed(px)
	case "content":
		padding := 0
		if len(args) == 1 {
			if padding, err = strconv.Atoi(args[0]); err != nil {
				return layout.Sizing{}, el.Errorf("invalid content padding %q", args[0])
			}
		}
		sizing = layout.ContentPadded(padding)
	case "fill":
		weight := 1.0
		if len(args) == 1 {
			if weight, err = strconv.ParseFloat(args[0], 64); err != nil {
				return layout.Sizing{}, el.Errorf("invalid fill weight %q", args[0])
			}
		}
		sizing = layout.Fill(weight)
	case "ratio":
		if len(args) != 1 {
			return layout.Sizing{}, el.Errorf("ratio sizing needs a ratio")
		}
		ratio, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return layout.Sizing{}, el.Errorf("invalid ratio %q", args[0])
		}
		sizing = layout.Ratio(ratio)
	default:
		return layout.Sizing{}, el.Errorf("unknown sizing method %q", name)
	}

	if err := sizing.Validate(); err != nil {
		return layout.Sizing{}, el.Wrap(err, "invalid sizing")
	}
	return sizing, nil
}

// ParseSizingPair parses a sizing element. A scalar applies to both axes; a
// body may set "horizontal" and "vertical" separately, keeping the given
// defaults for axes it omits.
func ParseSizingPair(el *Element, horizontal, vertical layout.Sizing) (layout.Sizing, layout.Sizing, error) {
	if el.IsScalar() {
		s, err := ParseSizing(el)
		if err != nil {
			return horizontal, vertical, err
		}
		return s, s, nil
	}
	if err := ExpectOnly(el, "horizontal", "vertical"); err != nil {
		return horizontal, vertical, err
	}
	children := el.ChildMap()
	if err := Apply(children, "horizontal", ParseSizing, func(s layout.Sizing) { horizontal = s }); err != nil {
		return horizontal, vertical, err
	}
	if err := Apply(children, "vertical", ParseSizing, func(s layout.Sizing) { vertical = s }); err != nil {
		return horizontal, vertical, err
	}
	if err := layout.ValidatePair(horizontal, vertical); err != nil {
		return horizontal, vertical, el.Wrap(err, "invalid sizing")
	}
	return horizontal, vertical, nil
}

// ParsePositioning parses "layout", "absolute(x, y)" or "relative(x, y)".
func ParsePositioning(el *Element) (layout.Positioning, error) {
	s, err := scalar(el)
	if err != nil {
		return layout.Positioning{}, err
	}
	name, args, ok := call(s)
	if !ok {
		return layout.Positioning{}, el.Errorf("invalid positioning %q", s)
	}
	if name == "layout" {
		if len(args) != 0 {
			return layout.Positioning{}, el.Errorf("layout positioning takes no arguments")
		}
		return layout.Layout(), nil
	}
	if len(args) != 2 {
		return layout.Positioning{}, el.Errorf("%s positioning needs x and y", name)
	}
	x, errX := strconv.Atoi(args[0])
	y, errY := strconv.Atoi(args[1])
	if errX != nil || errY != nil {
		return layout.Positioning{}, el.Errorf("invalid coordinates in %q", s)
	}

	var p layout.Positioning
	switch name {
	case "absolute":
		p = layout.Absolute(x, y)
	case "relative":
		p = layout.Relative(x, y)
	default:
		return layout.Positioning{}, el.Errorf("unknown positioning %q", name)
	}
	if err := p.Validate(); err != nil {
		return layout.Positioning{}, el.Wrap(err, "invalid positioning")
	}
	return p, nil
}

// ParseInsets parses a uniform inset ("4") or a body with any of top,
// bottom, left, right, vertical and horizontal.
func ParseInsets(el *Element) (graphics.Insets, error) {
	if el.IsScalar() {
		v, err := ParseInt(el)
		if err != nil {
			return graphics.Insets{}, err
		}
		return validInsets(el, graphics.InsetsAll(v))
	}
	if err := ExpectOnly(el, "top", "bottom", "left", "right", "vertical", "horizontal"); err != nil {
		return graphics.Insets{}, err
	}

	var in graphics.Insets
	children := el.ChildMap()
	sides := []struct {
		name string
		set  func(int)
	}{
		{"vertical", func(v int) { in.Top, in.Bottom = v, v }},
		{"horizontal", func(v int) { in.Left, in.Right = v, v }},
		{"top", func(v int) { in.Top = v }},
		{"bottom", func(v int) { in.Bottom = v }},
		{"left", func(v int) { in.Left = v }},
		{"right", func(v int) { in.Right = v }},
	}
	for _, side := range sides {
		if err := Apply(children, side.name, ParseInt, side.set); err != nil {
			return graphics.Insets{}, err
		}
	}
	return validInsets(el, in)
}

func validInsets(el *Element, in graphics.Insets) (graphics.Insets, error) {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Top, validation.Min(0)),
		validation.Field(&in.Bottom, validation.Min(0)),
		validation.Field(&in.Left, validation.Min(0)),
		validation.Field(&in.Right, validation.Min(0)),
	)
	if err != nil {
		return graphics.Insets{}, el.Wrap(err, "invalid insets")
	}
	return in, nil
}

// ParseEnum parses one of the given names and returns its value.
func ParseEnum[T any](el *Element, values map[string]T) (T, error) {
	var zero T
	s, err := scalar(el)
	if err != nil {
		return zero, err
	}
	v, ok := values[s]
	if !ok {
		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		slices.Sort(names)
		return zero, el.Errorf("invalid value %q, want one of: %s", s, strings.Join(names, ", "))
	}
	return v, nil
}

// EnumParser adapts ParseEnum for Apply.
func EnumParser[T any](values map[string]T) func(*Element) (T, error) {
	return func(el *Element) (T, error) {
		return ParseEnum(el, values)
	}
}

// AttributeError reports an invalid attribute value on el.
func AttributeError(el *Element, name, value string, err error) error {
	return el.Wrap(err, fmt.Sprintf("invalid %s attribute %q", name, value))
}
