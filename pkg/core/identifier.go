package core

import (
	"fmt"
	"strings"
)

// DefaultNamespace is assumed for identifiers written without a namespace.
const DefaultNamespace = "minecraft"

// Identifier is a namespaced resource name such as "minecraft:pig".
type Identifier struct {
	Namespace string
	Path      string
}

// ParseIdentifier parses "namespace:path" or a bare path.
func ParseIdentifier(s string) (Identifier, error) {
	s = strings.TrimSpace(s)
	namespace, path, found := strings.Cut(s, ":")
	if !found {
		namespace, path = DefaultNamespace, s
	}
	if namespace == "" || !validIdentifierPart(namespace, false) {
		return Identifier{}, fmt.Errorf("invalid identifier namespace in %q", s)
	}
	if path == "" || !validIdentifierPart(path, true) {
		return Identifier{}, fmt.Errorf("invalid identifier path in %q", s)
	}
	return Identifier{Namespace: namespace, Path: path}, nil
}

func validIdentifierPart(s string, allowSlash bool) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
		case r == '/' && allowSlash:
		default:
			return false
		}
	}
	return true
}

func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}
