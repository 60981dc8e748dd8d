package engine

import (
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Store owns the single bbolt file backing both the index and records
// buckets for one catalog.
type Store struct {
	path string
	db   *bolt.DB
	txns *TxnMgr
}

// NewStore returns a Store bound to the bbolt file at path. The file is not
// opened until Create or Open is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Create opens (creating if necessary) the backing file and ensures both
// buckets exist.
func (s *Store) Create() error {
	return s.open()
}

// Open opens the backing file, ensuring both buckets exist. Like Create, it
// creates the file if it does not exist yet.
func (s *Store) Open() error {
	return s.open()
}

func (s *Store) open() error {
	db, err := bolt.Open(s.path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return fmt.Errorf("engine: failed to open %s: %w", s.path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(indexBucketName); err != nil {
			return fmt.Errorf("engine: failed to create index bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists(recordsBucketName); err != nil {
			return fmt.Errorf("engine: failed to create records bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return err
	}
	s.db = db
	s.txns = &TxnMgr{db: db}
	return nil
}

// Txns returns the TxnMgr for this store's open file.
func (s *Store) Txns() *TxnMgr {
	return s.txns
}

// View runs fn in a read-only bbolt transaction, handing it the index and
// records buckets. Reads never go through the TxnMgr.
func (s *Store) View(fn func(index, records *bolt.Bucket) error) error {
	if s.db == nil {
		return ErrNotOpen
	}
	return s.db.View(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(indexBucketName), tx.Bucket(recordsBucketName))
	})
}

// Close closes the backing file.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.txns = nil
	return err
}

// Delete closes the backing file (if open) and removes it from disk.
func (s *Store) Delete() error {
	if err := s.Close(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("engine: failed to delete %s: %w", s.path, err)
	}
	return nil
}
