package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructuralError(t *testing.T) {
	err := NewStructuralError("element name index", "index %d >= table length %d", 5, 3)
	require.Contains(t, err.Error(), "element name index")
	require.Contains(t, err.Error(), "index 5 >= table length 3")
}

func TestOutOfBoundsError(t *testing.T) {
	err := &OutOfBoundsError{Address: Address{Segment: 1, Index: 2}, Reason: "segment index out of range"}
	require.Contains(t, err.Error(), "(1,2)")
	require.Contains(t, err.Error(), "segment index out of range")
}

func TestUseAfterDisposeError(t *testing.T) {
	err := &UseAfterDisposeError{What: "element"}
	require.Contains(t, err.Error(), "element")
}

func TestFrozenViolationError(t *testing.T) {
	err := &FrozenViolationError{}
	require.Contains(t, err.Error(), "frozen")
}

func TestInvalidArgumentError(t *testing.T) {
	err := &InvalidArgumentError{Reason: "name must not be empty"}
	require.Contains(t, err.Error(), "name must not be empty")
}
