// Package testing provides hand-built binary fixture helpers shared across
// the data center package tests, constructing records with encoding/binary
// rather than golden-file images.
package testing

import "encoding/binary"

// ElementRecordSize is the on-disk width of one element record.
const ElementRecordSize = 16

// AttributeRecordSize is the on-disk width of one attribute record.
const AttributeRecordSize = 8

// PutElementRecord encodes one 16-byte element record into buf at offset.
func PutElementRecord(buf []byte, offset int, nameIndexPlusOne, extWord, attrCount, childCount uint16, attrSeg, attrIdx, childSeg, childIdx uint16) {
	b := buf[offset : offset+ElementRecordSize]
	binary.LittleEndian.PutUint16(b[0:2], nameIndexPlusOne)
	binary.LittleEndian.PutUint16(b[2:4], extWord)
	binary.LittleEndian.PutUint16(b[4:6], attrCount)
	binary.LittleEndian.PutUint16(b[6:8], childCount)
	binary.LittleEndian.PutUint16(b[8:10], attrSeg)
	binary.LittleEndian.PutUint16(b[10:12], attrIdx)
	binary.LittleEndian.PutUint16(b[12:14], childSeg)
	binary.LittleEndian.PutUint16(b[14:16], childIdx)
}

// PutAttributeRecord encodes one 8-byte attribute record into buf at offset.
func PutAttributeRecord(buf []byte, offset int, nameIndexPlusOne, typeWord uint16, primitive uint32) {
	b := buf[offset : offset+AttributeRecordSize]
	binary.LittleEndian.PutUint16(b[0:2], nameIndexPlusOne)
	binary.LittleEndian.PutUint16(b[2:4], typeWord)
	binary.LittleEndian.PutUint32(b[4:8], primitive)
}
