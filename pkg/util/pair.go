package util

import "fmt"

// Pair provides a simple encapsulation of two items paired together.  This is
// the element type produced when zipping two sequences.
type Pair[S any, T any] struct {
	Left  S
	Right T
}

// NewPair returns a new instance of Pair by value.
func NewPair[S any, T any](left S, right T) Pair[S, T] {
	return Pair[S, T]{left, right}
}

// Unpack returns both halves of this pair.
func (p Pair[S, T]) Unpack() (S, T) {
	return p.Left, p.Right
}

func (p Pair[S, T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.Left, p.Right)
}
