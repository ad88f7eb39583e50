package spinchan

// slot is a single-value cell. Callers synchronize access.
type slot[T any] struct {
	val  T    // value stored in this slot
	full bool // whether val holds an unconsumed value
}

// put stores v, overwriting whatever is already there.
func (s *slot[T]) put(v T) {
	s.val = v
	s.full = true
}

// take empties the slot and returns its value.
// Returns (zero, false) if the slot is empty.
func (s *slot[T]) take() (T, bool) {
	var zero T
	if !s.full {
		return zero, false
	}
	v := s.val
	s.val = zero
	s.full = false
	return v, true
}
