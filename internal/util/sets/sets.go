package sets

// Set is a generic hash set for comparable keys.
type Set[T comparable] map[T]struct{}

// New creates a set pre-populated with the provided values.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Has returns true if v is present.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of distinct values.
func (s Set[T]) Len() int { return len(s) }

// FirstDuplicate returns the first value in vals that repeats an earlier one,
// along with its index.
func FirstDuplicate[T comparable](vals []T) (dup T, index int, found bool) {
	seen := make(Set[T], len(vals))
	for i, v := range vals {
		if !seen.Add(v) {
			return v, i, true
		}
	}
	var zero T
	return zero, -1, false
}
