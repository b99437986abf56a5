package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-owo/owo/pkg/core"
)

// Finder locates components in a tree.
type Finder interface {
	// Evaluate returns all matching components under root (depth-first pre-order).
	Evaluate(root core.Component) []core.Component
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	components []core.Component
	finder     Finder
}

// Find evaluates finder against the tree rooted at root.
func Find(root core.Component, finder Finder) FinderResult {
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{components: finder.Evaluate(root), finder: finder}
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Component {
	if len(r.components) == 0 {
		panic(fmt.Sprintf("Finder found no components: %s", r.description()))
	}
	return r.components[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.Component {
	if len(r.components) == 0 {
		return nil
	}
	return r.components[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Component {
	if index < 0 || index >= len(r.components) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.components), r.description()))
	}
	return r.components[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Component {
	return r.components
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.components)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.components) > 0
}

// --- Concrete finders ---

type typeFinder struct {
	componentType reflect.Type
}

func (f *typeFinder) Evaluate(root core.Component) []core.Component {
	return collectMatches(root, func(c core.Component) bool {
		return reflect.TypeOf(c) == f.componentType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.componentType)
}

// ByType returns a finder that matches components of type T, for example
// ByType[*components.Label]().
func ByType[T core.Component]() Finder {
	return &typeFinder{componentType: reflect.TypeFor[T]()}
}

type idFinder struct {
	id string
}

func (f *idFinder) Evaluate(root core.Component) []core.Component {
	return collectMatches(root, func(c core.Component) bool {
		return c.ID() == f.id
	})
}

func (f *idFinder) Description() string {
	return fmt.Sprintf("ByID(%q)", f.id)
}

// ByID returns a finder that matches components with the given id.
func ByID(id string) Finder {
	return &idFinder{id: id}
}

// texter is implemented by components showing a single text value.
type texter interface {
	Text() string
}

type textFinder struct {
	text     string
	contains bool
}

func (f *textFinder) Evaluate(root core.Component) []core.Component {
	return collectMatches(root, func(c core.Component) bool {
		t, ok := c.(texter)
		if !ok {
			return false
		}
		if f.contains {
			return strings.Contains(t.Text(), f.text)
		}
		return t.Text() == f.text
	})
}

func (f *textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches components with a Text method (labels
// and text boxes) whose text equals text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining is like ByText but matches substrings.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, contains: true}
}

type predicateFinder struct {
	fn   func(core.Component) bool
	desc string
}

func (f *predicateFinder) Evaluate(root core.Component) []core.Component {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches components satisfying fn.
func ByPredicate(fn func(core.Component) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds components matching 'matching' that are descendants
// of components matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root core.Component) []core.Component {
	var results []core.Component
	seen := make(map[core.Component]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		parent, ok := ancestor.(core.ParentComponent)
		if !ok {
			continue
		}
		for _, child := range parent.Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches components satisfying 'matching'
// that are descendants of components matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds components matching 'matching' that are ancestors of
// components matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(root core.Component) []core.Component {
	descendants := f.of.Evaluate(root)
	if len(descendants) == 0 {
		return nil
	}
	var results []core.Component
	for _, candidate := range f.matching.Evaluate(root) {
		for _, d := range descendants {
			if d != candidate && core.IsAttached(d, candidate) {
				results = append(results, candidate)
				break
			}
		}
	}
	return results
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches components satisfying 'matching'
// that are ancestors of components matching 'of'.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

// collectMatches performs a depth-first pre-order traversal, collecting
// components that satisfy the predicate.
func collectMatches(root core.Component, predicate func(core.Component) bool) []core.Component {
	var results []core.Component
	core.Walk(root, func(c core.Component) bool {
		if predicate(c) {
			results = append(results, c)
		}
		return true
	})
	return results
}
