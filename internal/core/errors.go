package core

import "fmt"

// StructuralError reports a malformed record: a bad name or extension
// index, non-zero flags, an unknown type code, a duplicate attribute name,
// or a missing string address.
type StructuralError struct {
	// Context names the record or field where the error was first detected,
	// e.g. "element name index" or "attribute type word".
	Context string
	// Detail carries the offending index/address/name.
	Detail string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error: %s: %s", e.Context, e.Detail)
}

// NewStructuralError builds a StructuralError with a formatted detail.
func NewStructuralError(context, format string, args ...interface{}) *StructuralError {
	return &StructuralError{Context: context, Detail: fmt.Sprintf(format, args...)}
}

// OutOfBoundsError reports an address outside its heap.
type OutOfBoundsError struct {
	Address Address
	Reason  string
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("address (%d,%d) out of bounds: %s", e.Address.Segment, e.Address.Index, e.Reason)
}

// UseAfterDisposeError reports an operation attempted on a disposed Element
// or a closed DataCenter. This is a programming error, never
// retried.
type UseAfterDisposeError struct {
	What string // "element" or "data center"
}

func (e *UseAfterDisposeError) Error() string {
	return fmt.Sprintf("use after dispose: %s has already been disposed", e.What)
}

// FrozenViolationError reports an attempt to tear down a frozen DataCenter
//.
type FrozenViolationError struct{}

func (e *FrozenViolationError) Error() string {
	return "data center is frozen: dispose is not permitted"
}

// InvalidArgumentError reports a null name in a query or an unsupported
// fallback type.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}
