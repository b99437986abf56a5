// Package parsing builds component trees from YAML markup.
//
// A document names its format version and a single root element:
//
//	version: 1.0.0
//	components:
//	  flow-layout:
//	    $direction: vertical
//	    sizing: {horizontal: fill(1), vertical: content}
//	    children:
//	      - label: {text: Hello}
//	      - entity: {$type: minecraft:pig, scale: 0.75}
//
// Keys starting with "$" are attributes, every other key is a child element.
// Component packages register their element names with Register from init.
package parsing

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/errors"
	"github.com/go-owo/owo/pkg/logging"
)

// SupportedMajor is the document format major version this package reads.
const SupportedMajor = "v1"

// Model is a loaded markup document.
type Model struct {
	Version string
	Root    *Element

	registry *Registry
	logger   logging.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithRegistry resolves element names against r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(m *Model) { m.registry = r }
}

// WithLogger sets the logger used while expanding the model.
func WithLogger(l logging.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// LoadFile reads and parses the document at path.
func LoadFile(path string, opts ...Option) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	return LoadBytes(data, opts...)
}

// Load parses a document from r.
func Load(r io.Reader, opts ...Option) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	return LoadBytes(data, opts...)
}

// LoadBytes parses a document.
func LoadBytes(data []byte, opts ...Option) (*Model, error) {
	m := &Model{
		registry: defaultRegistry,
		logger:   logging.Get("parsing"),
	}
	for _, opt := range opts {
		opt(m)
	}

	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, &errors.ParseError{Msg: "empty document"}
		}
		return nil, &errors.ParseError{Msg: "invalid yaml", Err: err}
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, &errors.ParseError{Line: root.Line, Column: root.Column, Msg: "document must be a mapping"}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "version":
			m.Version = value.Value
		case "components":
			el, err := decodeElement(value)
			if err != nil {
				return nil, err
			}
			m.Root = el
		default:
			return nil, &errors.ParseError{Line: key.Line, Column: key.Column, Msg: fmt.Sprintf("unknown document key %q", key.Value)}
		}
	}

	if err := checkVersion(m.Version); err != nil {
		return nil, err
	}
	if m.Root == nil {
		return nil, &errors.ParseError{Msg: "document has no components"}
	}
	return m, nil
}

func checkVersion(version string) error {
	if version == "" {
		return &errors.ParseError{Msg: "document has no version"}
	}
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return &errors.ParseError{Msg: fmt.Sprintf("invalid version %q", version)}
	}
	if major := semver.Major(v); major != SupportedMajor {
		return &errors.ParseError{Msg: fmt.Sprintf("unsupported version %s, want %s.x", version, SupportedMajor)}
	}
	return nil
}

// Registry returns the factory registry the model resolves against.
func (m *Model) Registry() *Registry {
	return m.registry
}

// Expand builds the component tree of the document's root element.
func (m *Model) Expand() (core.Component, error) {
	return m.ParseComponent(m.Root)
}

// ExpandAs builds the root component and asserts its concrete type.
func ExpandAs[T core.Component](m *Model) (T, error) {
	var zero T
	c, err := m.Expand()
	if err != nil {
		return zero, err
	}
	typed, ok := c.(T)
	if !ok {
		return zero, m.Root.Errorf("root component is %T, want %T", c, zero)
	}
	return typed, nil
}

// ParseComponent constructs the component for el, then applies the base
// properties and the component's own properties.
func (m *Model) ParseComponent(el *Element) (core.Component, error) {
	factory, ok := m.registry.Lookup(el.Name)
	if !ok {
		return nil, el.Errorf("unknown component %q", el.Name)
	}
	c, err := factory(el)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, el.Errorf("factory returned no component")
	}

	children := el.ChildMap()
	if err := m.parseBaseProperties(c, el, children); err != nil {
		return nil, err
	}
	if parser, ok := c.(PropertyParser); ok {
		if err := parser.ParseProperties(m, el, children); err != nil {
			return nil, err
		}
	}
	m.logger.Debug("parsed component", "element", el.Name, "line", el.Line, "id", c.ID())
	return c, nil
}

// ParseChildren parses every element below a "children" element in order.
func (m *Model) ParseChildren(el *Element) ([]core.Component, error) {
	if el == nil {
		return nil, nil
	}
	if el.Text != "" {
		return nil, el.Errorf("children must be a list of components")
	}
	out := make([]core.Component, 0, len(el.Children))
	for _, child := range el.Children {
		c, err := m.ParseComponent(child)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *Model) parseBaseProperties(c core.Component, el *Element, children map[string]*Element) error {
	if id, ok := el.Attribute("id"); ok {
		c.SetID(id)
	}
	if sizing, ok := children["sizing"]; ok {
		currentH, currentV := c.Sizing()
		h, v, err := ParseSizingPair(sizing, currentH, currentV)
		if err != nil {
			return err
		}
		if err := c.SetSizing(h, v); err != nil {
			return sizing.Wrap(err, "invalid sizing")
		}
	}
	if err := Apply(children, "positioning", ParsePositioning, c.SetPositioning); err != nil {
		return err
	}
	if err := Apply(children, "margins", ParseInsets, c.SetMargins); err != nil {
		return err
	}
	return Apply(children, "tooltip-text", ParseText, c.SetTooltipText)
}
