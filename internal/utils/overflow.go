package utils

import "fmt"

// AddUint16 safely computes base+delta as a uint16 index, failing instead of
// wrapping when the sum would exceed the 16-bit element/segment index
// space. Element and attribute indices are u16 throughout the container
// format; iterating attribute_base.Index+i or child_base.Index+i
// without this check risks silently wrapping to a small index instead of
// surfacing the malformed count that caused it.
func AddUint16(base uint16, delta int) (uint16, error) {
	sum := int(base) + delta
	if sum < 0 || sum > 0xFFFF {
		return 0, fmt.Errorf("index overflow: %d + %d exceeds 16-bit range", base, delta)
	}
	return uint16(sum), nil
}
