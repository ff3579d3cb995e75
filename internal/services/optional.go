package services

// Optional is a filter value that is either unconstrained or pinned to one
// value. The zero value is unconstrained.
type Optional[T comparable] struct {
	value T
	set   bool
}

func Unconstrained[T comparable]() Optional[T] {
	return Optional[T]{}
}

func EqualTo[T comparable](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

func (optional Optional[T]) IsSet() bool {
	return optional.set
}

// Get returns the pinned value and whether one is set.
func (optional Optional[T]) Get() (T, bool) {
	return optional.value, optional.set
}

func (optional Optional[T]) Matches(candidate T) bool {
	return !optional.set || optional.value == candidate
}

// pointer exposes the pinned value as a nilable query parameter.
func (optional Optional[T]) pointer() *T {
	if !optional.set {
		return nil
	}
	value := optional.value
	return &value
}
