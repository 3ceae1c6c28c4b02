// FILE: lixenwraith/sitecore/config/helper.go
package config

import (
	"fmt"
	"sort"
	"strings"
)

// splitPath breaks a dot-delimited path into its segments.
func splitPath(path string) []string {
	return strings.Split(strings.Trim(path, "."), ".")
}

// ValidatePath checks that every segment of a dot-delimited path is a
// usable key.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	for _, segment := range strings.Split(path, ".") {
		if !isValidKeySegment(segment) {
			return fmt.Errorf("%w: segment %q in path %q", ErrInvalidPath, segment, path)
		}
	}
	return nil
}

// isValidKeySegment checks if a single path segment is a valid bare key:
// ASCII letters, digits, underscores and dashes.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}

// flatten converts a mapping into path -> plain value pairs for every leaf.
func flatten(m *Mapping) map[string]any {
	flat := make(map[string]any)
	m.Walk(func(segments []string, v Value) {
		flat[strings.Join(segments, ".")] = v.Interface()
	})
	return flat
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
