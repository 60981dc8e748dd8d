package engine

import (
	"bytes"

	bolt "go.etcd.io/bbolt"
)

var indexBucketName = []byte("index")

// IndexGet looks up key in the index bucket, returning its RecordRef.
func IndexGet(b *bolt.Bucket, key string) (RecordRef, bool) {
	v := b.Get([]byte(key))
	if v == nil {
		return 0, false
	}
	ref, ok := decodeRecordRef(v)
	return ref, ok
}

// IndexPut inserts or overwrites the (key, ref) mapping.
func IndexPut(b *bolt.Bucket, key string, ref RecordRef) error {
	return b.Put([]byte(key), ref.Bytes())
}

// IndexRemove deletes key from the index, returning the RecordRef it used to
// map to, if any.
func IndexRemove(b *bolt.Bucket, key string) (RecordRef, bool, error) {
	ref, ok := IndexGet(b, key)
	if !ok {
		return 0, false, nil
	}
	if err := b.Delete([]byte(key)); err != nil {
		return 0, false, err
	}
	return ref, true, nil
}

// IndexMajorIterator walks the index in ascending key order starting at the
// first key greater than or equal to prefix, calling fn for each entry whose
// key begins with prefix and stopping at the first key that does not.
func IndexMajorIterator(b *bolt.Bucket, prefix string, fn func(key string, ref RecordRef) error) error {
	c := b.Cursor()
	prefixBytes := []byte(prefix)
	for k, v := c.Seek(prefixBytes); k != nil && bytes.HasPrefix(k, prefixBytes); k, v = c.Next() {
		ref, ok := decodeRecordRef(v)
		if !ok {
			continue
		}
		if err := fn(string(k), ref); err != nil {
			return err
		}
	}
	return nil
}
