// Package tree implements the pure operations over a mindmap document.
//
// Every operation takes a document root and returns a new root; arguments
// are never mutated. Only the nodes on the path from the root to the edited
// node are copied, everything else is shared with the input document.
package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that a referenced node id is absent from the document.
	ErrNotFound = errors.New("node not found")

	// ErrInvariantViolation indicates that an edit would break the tree invariants.
	ErrInvariantViolation = errors.New("invariant violation")
)

// Specific invariant violations. All of them match ErrInvariantViolation
// with errors.Is.
var (
	ErrRootImmutable = fmt.Errorf("%w: the root node cannot be removed or moved", ErrInvariantViolation)
	ErrCyclicMove    = fmt.Errorf("%w: a node cannot be moved under itself or its descendants", ErrInvariantViolation)
	ErrDuplicateID   = fmt.Errorf("%w: node id already in use", ErrInvariantViolation)
	ErrNoParent      = fmt.Errorf("%w: the root node has no parent", ErrInvariantViolation)
	ErrEmptyDocument = fmt.Errorf("%w: document has no root", ErrInvariantViolation)
)
