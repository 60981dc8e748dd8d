package engine

import "encoding/binary"

// RecordRef is the stable identifier RecordCluster issues for a stored
// record. It is the bucket sequence number bbolt assigns to the record,
// big-endian encoded when it needs to travel as an IndexMap value.
type RecordRef uint64

// Bytes returns the 8-byte big-endian encoding of the ref, as stored in the
// index bucket.
func (r RecordRef) Bytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(r))
	return b
}

// decodeRecordRef parses the 8-byte big-endian encoding produced by Bytes.
func decodeRecordRef(b []byte) (RecordRef, bool) {
	if len(b) != 8 {
		return 0, false
	}
	return RecordRef(binary.BigEndian.Uint64(b)), true
}
