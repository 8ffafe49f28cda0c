package ordtree

import "github.com/cockroachdb/errors"

var (
	ErrEmptyTree    = errors.New("empty tree")
	ErrInvalidOrder = errors.New("invalid order")
	ErrInvariant    = errors.New("invariant violated")
)
