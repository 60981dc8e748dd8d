package engine

import (
	bolt "go.etcd.io/bbolt"
)

var recordsBucketName = []byte("records")

// ClusterCreateRecord appends payload as a new record and returns the
// RecordRef bbolt assigned it.
func ClusterCreateRecord(b *bolt.Bucket, payload []byte) (RecordRef, error) {
	seq, err := b.NextSequence()
	if err != nil {
		return 0, err
	}
	ref := RecordRef(seq)
	if err := b.Put(ref.Bytes(), payload); err != nil {
		return 0, err
	}
	return ref, nil
}

// ClusterUpdateRecord overwrites the payload stored at ref.
func ClusterUpdateRecord(b *bolt.Bucket, ref RecordRef, payload []byte) error {
	return b.Put(ref.Bytes(), payload)
}

// ClusterDeleteRecord removes the record at ref.
func ClusterDeleteRecord(b *bolt.Bucket, ref RecordRef) error {
	return b.Delete(ref.Bytes())
}

// ClusterReadRecord returns the payload stored at ref, if any. The returned
// slice is a copy and remains valid after the enclosing transaction ends.
func ClusterReadRecord(b *bolt.Bucket, ref RecordRef) ([]byte, bool) {
	v := b.Get(ref.Bytes())
	if v == nil {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}
