package core

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Segment is a contiguous run of fixed-stride records inside a heap's
// backing byte buffer.
type Segment struct {
	Base   int // byte offset of this segment's first record within Data.
	Count  int // number of records in this segment.
	Stride int // bytes per record.
}

// Heap is a sequence of segments sharing one record stride, backed by a
// single fully-resident byte buffer. Element heaps use a 16-byte stride,
// attribute heaps an 8-byte stride.
type Heap struct {
	Data     []byte
	Segments []Segment
	Stride   int
}

// NewHeap builds a Heap view over data, given the record count of each
// segment in order. Segment bases are computed from Stride and the
// preceding segments' counts.
func NewHeap(data []byte, stride int, segmentCounts []int) *Heap {
	segments := make([]Segment, len(segmentCounts))
	base := 0
	for i, count := range segmentCounts {
		segments[i] = Segment{Base: base, Count: count, Stride: stride}
		base += count * stride
	}
	return &Heap{Data: data, Segments: segments, Stride: stride}
}

// ReaderAt returns a Cursor positioned at the first byte of the record at
// addr, failing with OutOfBounds when either index is out of range (spec
// §4.2).
func (h *Heap) ReaderAt(addr Address) (*Cursor, error) {
	if int(addr.Segment) >= len(h.Segments) {
		return nil, &OutOfBoundsError{Address: addr, Reason: "segment index out of range"}
	}
	seg := h.Segments[addr.Segment]
	if int(addr.Index) >= seg.Count {
		return nil, &OutOfBoundsError{Address: addr, Reason: "element index out of range"}
	}
	pos := seg.Base + int(addr.Index)*h.Stride
	if pos+h.Stride > len(h.Data) {
		return nil, &OutOfBoundsError{Address: addr, Reason: "record extends beyond heap buffer"}
	}
	return &Cursor{buf: h.Data, pos: pos, recordEnd: pos + h.Stride}, nil
}

// Cursor is a little-endian read cursor positioned within a Heap's backing
// buffer, bounded to the record it was created for.
type Cursor struct {
	buf       []byte
	pos       int
	recordEnd int
}

func (c *Cursor) need(n int) error {
	if c.pos+n > c.recordEnd {
		return errors.Errorf("cursor read of %d bytes at offset %d exceeds record bound %d", n, c.pos, c.recordEnd)
	}
	return nil
}

// ReadUint16 reads a little-endian uint16 and advances the cursor.
func (c *Cursor) ReadUint16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadInt32 reads a little-endian int32 and advances the cursor.
func (c *Cursor) ReadInt32() (int32, error) {
	u, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

// ReadUint32 reads a little-endian uint32 and advances the cursor.
func (c *Cursor) ReadUint32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadAddress reads a little-endian Address (segment then index) and
// advances the cursor.
func (c *Cursor) ReadAddress() (Address, error) {
	if err := c.need(AddressSize); err != nil {
		return Address{}, err
	}
	a := ReadAddress(c.buf[c.pos:])
	c.pos += AddressSize
	return a, nil
}

// Rewind moves the cursor back n bytes, needed when a 4-byte primitive must
// be re-read as an Address.
func (c *Cursor) Rewind(n int) {
	c.pos -= n
	if c.pos < 0 {
		c.pos = 0
	}
}
