package parsing

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-owo/owo/pkg/errors"
)

// AttributePrefix marks mapping keys that are attributes of the enclosing
// element rather than child elements.
const AttributePrefix = "$"

// Element is one node of a parsed markup document.
//
// An element either carries a scalar Text (for example "fill(1)") or a body
// made of attributes and ordered child elements.
type Element struct {
	Name       string
	Attributes map[string]string
	Children   []*Element
	Text       string

	Line   int
	Column int
}

// Attribute returns the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

// Child returns the first child element with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, child := range e.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// ChildMap indexes the children by name. Later duplicates win.
func (e *Element) ChildMap() map[string]*Element {
	m := make(map[string]*Element, len(e.Children))
	for _, child := range e.Children {
		m[child.Name] = child
	}
	return m
}

// IsScalar reports whether the element holds a scalar value and no body.
func (e *Element) IsScalar() bool {
	return len(e.Children) == 0 && len(e.Attributes) == 0
}

// Errorf builds a parse error located at the element.
func (e *Element) Errorf(format string, args ...any) *errors.ParseError {
	return &errors.ParseError{
		Element: e.Name,
		Line:    e.Line,
		Column:  e.Column,
		Msg:     fmt.Sprintf(format, args...),
	}
}

// Wrap builds a parse error located at the element around err.
func (e *Element) Wrap(err error, msg string) *errors.ParseError {
	return &errors.ParseError{
		Element: e.Name,
		Line:    e.Line,
		Column:  e.Column,
		Msg:     msg,
		Err:     err,
	}
}

// decoder turns yaml nodes into elements. It tracks the aliases being
// expanded so an anchor that contains itself fails instead of recursing.
type decoder struct {
	expanding map[*yaml.Node]bool
}

func decodeElement(node *yaml.Node) (*Element, error) {
	d := &decoder{expanding: make(map[*yaml.Node]bool)}
	return d.element(node)
}

// element decodes a single-key mapping {name: body}.
func (d *decoder) element(node *yaml.Node) (*Element, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		if d.expanding[node.Alias] {
			return nil, &errors.ParseError{Line: node.Line, Column: node.Column, Msg: "recursive alias"}
		}
		d.expanding[node.Alias] = true
		defer delete(d.expanding, node.Alias)
		return d.element(node.Alias)
	}
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return nil, &errors.ParseError{
			Line:   node.Line,
			Column: node.Column,
			Msg:    "expected an element written as a mapping with exactly one key",
		}
	}
	return d.body(node.Content[0], node.Content[1])
}

// body decodes the value of key into an element named after the key.
func (d *decoder) body(key, value *yaml.Node) (*Element, error) {
	el := &Element{
		Name:   key.Value,
		Line:   key.Line,
		Column: key.Column,
	}
	if strings.HasPrefix(el.Name, AttributePrefix) {
		return nil, el.Errorf("attribute used where an element was expected")
	}

	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			el.Text = value.Value
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			k, v := value.Content[i], value.Content[i+1]
			if name, ok := strings.CutPrefix(k.Value, AttributePrefix); ok {
				if v.Kind != yaml.ScalarNode {
					return nil, el.Errorf("attribute %q must be a scalar", name)
				}
				if el.Attributes == nil {
					el.Attributes = make(map[string]string)
				}
				el.Attributes[name] = v.Value
				continue
			}
			child, err := d.body(k, v)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		}
	case yaml.SequenceNode:
		for _, item := range value.Content {
			child, err := d.element(item)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		}
	case yaml.AliasNode:
		if value.Alias == nil || d.expanding[value.Alias] {
			return nil, el.Errorf("recursive alias")
		}
		d.expanding[value.Alias] = true
		defer delete(d.expanding, value.Alias)
		return d.body(key, value.Alias)
	default:
		return nil, el.Errorf("unsupported markup node")
	}
	return el, nil
}
