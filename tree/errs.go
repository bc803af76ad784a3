package tree

import "errors"

var (
	// ErrInvalidArity is returned by child-list mutators when the resulting
	// child count would violate the node's arity range.
	ErrInvalidArity = errors.New("invalid arity")

	// ErrInvalidChild is returned when a child fails the node's child
	// validator.
	ErrInvalidChild = errors.New("invalid child")

	// ErrNotFound is returned by removal and replacement operations when the
	// target node is not a current child.
	ErrNotFound = errors.New("child not found")

	// ErrIndexOutOfRange is returned by index-based removal and replacement
	// operations when the index is out of range.
	ErrIndexOutOfRange = errors.New("index out of range")
)
