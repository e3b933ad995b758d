// Package normalization maps loosely written enum strings from the site file
// and the command line onto typed values.
package normalization

import (
	"fmt"
	"slices"
	"strings"
)

// Normalizer converts case- and whitespace-insensitive spellings to T.
type Normalizer[T comparable] struct {
	name         string
	values       map[string]T
	defaultValue T
	canonical    []string
}

// NewNormalizer builds a normalizer for the named enum. values holds the
// canonical spellings; aliases maps additional spellings to canonical ones.
func NewNormalizer[T comparable](name string, values map[string]T, aliases map[string]string, defaultValue T) *Normalizer[T] {
	n := &Normalizer[T]{
		name:         name,
		values:       make(map[string]T, len(values)+len(aliases)),
		defaultValue: defaultValue,
	}
	for k, v := range values {
		key := clean(k)
		n.values[key] = v
		n.canonical = append(n.canonical, key)
	}
	for alias, target := range aliases {
		if v, ok := n.values[clean(target)]; ok {
			n.values[clean(alias)] = v
		}
	}
	slices.Sort(n.canonical)
	return n
}

// Normalize returns the matching value, or the default when raw is empty or
// unknown.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[clean(raw)]; ok {
		return v
	}
	return n.defaultValue
}

// Parse is like Normalize but rejects unknown input. Empty input yields the
// default.
func (n *Normalizer[T]) Parse(raw string) (T, error) {
	key := clean(raw)
	if key == "" {
		return n.defaultValue, nil
	}
	if v, ok := n.values[key]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q, valid options: %s", n.name, raw, strings.Join(n.canonical, ", "))
}

// Valid lists the canonical spellings in sorted order.
func (n *Normalizer[T]) Valid() []string {
	return slices.Clone(n.canonical)
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
