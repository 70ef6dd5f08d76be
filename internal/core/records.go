package core

// ElementRecord is the raw, on-disk 16-byte element record.
type ElementRecord struct {
	NameIndexPlusOne uint16
	ExtensionWord    uint16
	AttributeCount   uint16
	ChildCount       uint16
	AttributeBase    Address
	ChildBase        Address
}

// ParseElementRecord reads one 16-byte element record from cur.
func ParseElementRecord(cur *Cursor) (ElementRecord, error) {
	var rec ElementRecord
	var err error
	if rec.NameIndexPlusOne, err = cur.ReadUint16(); err != nil {
		return rec, err
	}
	if rec.ExtensionWord, err = cur.ReadUint16(); err != nil {
		return rec, err
	}
	if rec.AttributeCount, err = cur.ReadUint16(); err != nil {
		return rec, err
	}
	if rec.ChildCount, err = cur.ReadUint16(); err != nil {
		return rec, err
	}
	if rec.AttributeBase, err = cur.ReadAddress(); err != nil {
		return rec, err
	}
	if rec.ChildBase, err = cur.ReadAddress(); err != nil {
		return rec, err
	}
	return rec, nil
}

// IsPlaceholder reports whether this record is a placeholder (name index
// zero): its attribute/child fields are never consulted.
func (r ElementRecord) IsPlaceholder() bool {
	return r.NameIndexPlusOne == 0
}

// AttributeRecord is the raw, on-disk 8-byte attribute record.
type AttributeRecord struct {
	NameIndexPlusOne uint16
	TypeWord         uint16
	Primitive        uint32
}

// ParseAttributeRecord reads one 8-byte attribute record from cur.
func ParseAttributeRecord(cur *Cursor) (AttributeRecord, error) {
	var rec AttributeRecord
	var err error
	if rec.NameIndexPlusOne, err = cur.ReadUint16(); err != nil {
		return rec, err
	}
	if rec.TypeWord, err = cur.ReadUint16(); err != nil {
		return rec, err
	}
	if rec.Primitive, err = cur.ReadUint32(); err != nil {
		return rec, err
	}
	return rec, nil
}
