package common

// Stack is a generic LIFO container.
// Zero-value ready: var s common.Stack[int].
type Stack[T any] struct {
	items []T
}

// NewStack returns a stack holding the given bottom-to-top items.
func NewStack[T any](items ...T) *Stack[T] {
	return &Stack[T]{items: append([]T(nil), items...)}
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// The bool result is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	idx := len(s.items) - 1
	v := s.items[idx]
	s.items[idx] = zero
	s.items = s.items[:idx]
	return v, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of elements currently in the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack has no elements.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Items returns a bottom-to-top copy of the contents.
func (s *Stack[T]) Items() []T {
	return append([]T(nil), s.items...)
}
