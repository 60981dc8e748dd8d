package catalog

import (
	"sync"

	"github.com/cuemby/catalogstore/internal/engine"
	"github.com/cuemby/catalogstore/pkg/log"
	"github.com/cuemby/catalogstore/pkg/metrics"
	bolt "go.etcd.io/bbolt"
)

// scopeName is the single TxnMgr scope name used by every mutating
// CatalogStore call (spec §4.3, §5).
const scopeName = "dbConfig"

// UpdateListener is invoked after a successful put, outside the TxnMgr
// scope; a panic from the listener must not be treated as if the write
// itself had failed, since the write already committed (spec §4.4, §9).
type UpdateListener func(key string, value []byte)

// Store is the keyed persistent map described in spec §4.3: get/put/drop/
// prefixScan/clear atop an engine.Store, guarded by a single non-reentrant
// readers/writer lock.
type Store struct {
	mu       sync.RWMutex
	eng      *engine.Store
	open     bool
	listener UpdateListener
	fault    engine.FaultInjector
}

// NewStore returns a Store bound to the bbolt file at path. The file is not
// touched until Create or Load is called.
func NewStore(path string) *Store {
	return &Store{eng: engine.NewStore(path)}
}

// SetUpdateListener installs the single update listener invoked after every
// successful put (spec §4.4). Passing nil removes it.
func (s *Store) SetUpdateListener(l UpdateListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// SetFaultInjector installs a hook called at named checkpoints inside every
// mutating scope's body, for fault-injection tests (spec §8). It may be
// called before or after Create/Load; the hook is (re-)applied to the
// engine's TxnMgr immediately if the store is already open, and is applied
// again whenever the store is subsequently (re-)opened.
func (s *Store) SetFaultInjector(f engine.FaultInjector) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = f
	if s.open {
		s.eng.Txns().Fault = f
	}
}

// Create initializes the backing engine and transitions the store to open.
func (s *Store) Create() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.Create(); err != nil {
		return NewStorageError("create", err)
	}
	s.eng.Txns().Fault = s.fault
	s.open = true
	return nil
}

// Load opens an existing backing engine and transitions the store to open.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.Open(); err != nil {
		return NewStorageError("load", err)
	}
	s.eng.Txns().Fault = s.fault
	s.open = true
	return nil
}

// Close closes the backing engine. Callers are responsible for flushing any
// computed values (configuration, minimumClusters) before calling Close;
// Lifecycle.Close does this (spec §4.5).
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil
	}
	s.open = false
	if err := s.eng.Close(); err != nil {
		return NewStorageError("close", err)
	}
	return nil
}

// Delete closes (if needed) and removes the backing engine's file.
func (s *Store) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	if err := s.eng.Delete(); err != nil {
		return NewStorageError("delete", err)
	}
	return nil
}

// Get returns the payload stored under key, or ok=false if absent.
func (s *Store) Get(key string) (value []byte, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return nil, false, ErrNotOpen
	}

	timer := metrics.NewTimer()
	err = s.eng.View(func(index, records *bolt.Bucket) error {
		ref, found := engine.IndexGet(index, key)
		if !found {
			return nil
		}
		payload, present := engine.ClusterReadRecord(records, ref)
		if present {
			value = payload
			ok = true
		}
		return nil
	})
	timer.ObserveDurationVec(metrics.CommitDuration, "get")
	if err != nil {
		metrics.StoreOperationsTotal.WithLabelValues("get", "error").Inc()
		return nil, false, NewStorageError("get", err)
	}
	metrics.StoreOperationsTotal.WithLabelValues("get", "ok").Inc()
	return value, ok, nil
}

// Put inserts or overwrites key's payload transactionally, then invokes the
// update listener (if any) after the commit completes.
func (s *Store) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNotOpen
	}

	timer := metrics.NewTimer()
	err := engine.WithScope(s.eng.Txns(), scopeName, func(scope *engine.Scope) error {
		index := scope.Index()
		records := scope.Records()
		if ref, found := engine.IndexGet(index, key); found {
			return engine.ClusterUpdateRecord(records, ref, value)
		}
		ref, err := engine.ClusterCreateRecord(records, value)
		if err != nil {
			return err
		}
		if err := scope.Checkpoint("afterClusterCreate"); err != nil {
			return err
		}
		return engine.IndexPut(index, key, ref)
	})
	timer.ObserveDurationVec(metrics.CommitDuration, "put")
	if err != nil {
		metrics.StoreOperationsTotal.WithLabelValues("put", "error").Inc()
		return NewStorageError("put", err)
	}
	metrics.StoreOperationsTotal.WithLabelValues("put", "ok").Inc()

	if s.listener != nil {
		s.listener(key, value)
	}
	return nil
}

// Drop removes key's mapping and record, if present.
func (s *Store) Drop(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNotOpen
	}

	timer := metrics.NewTimer()
	err := engine.WithScope(s.eng.Txns(), scopeName, func(scope *engine.Scope) error {
		ref, found, err := engine.IndexRemove(scope.Index(), key)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}
		if err := scope.Checkpoint("afterIndexRemove"); err != nil {
			return err
		}
		return engine.ClusterDeleteRecord(scope.Records(), ref)
	})
	timer.ObserveDurationVec(metrics.CommitDuration, "drop")
	if err != nil {
		metrics.StoreOperationsTotal.WithLabelValues("drop", "error").Inc()
		return NewStorageError("drop", err)
	}
	metrics.StoreOperationsTotal.WithLabelValues("drop", "ok").Inc()
	return nil
}

// Entry is one (key, value) pair returned by PrefixScan.
type Entry struct {
	Key   string
	Value []byte
}

// PrefixScan returns every entry whose key begins with prefix, in ascending
// key order (spec §4.3, P6).
func (s *Store) PrefixScan(prefix string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return nil, ErrNotOpen
	}

	var out []Entry
	err := s.eng.View(func(index, records *bolt.Bucket) error {
		return engine.IndexMajorIterator(index, prefix, func(key string, ref engine.RecordRef) error {
			payload, ok := engine.ClusterReadRecord(records, ref)
			if !ok {
				return nil
			}
			out = append(out, Entry{Key: key, Value: payload})
			return nil
		})
	})
	if err != nil {
		metrics.StoreOperationsTotal.WithLabelValues("prefixScan", "error").Inc()
		return nil, NewStorageError("prefixScan", err)
	}
	metrics.StoreOperationsTotal.WithLabelValues("prefixScan", "ok").Inc()
	return out, nil
}

// Clear removes every entry whose key begins with prefix, in a single
// atomic scope (spec §4.3).
func (s *Store) Clear(prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNotOpen
	}

	timer := metrics.NewTimer()
	err := engine.WithScope(s.eng.Txns(), scopeName, func(scope *engine.Scope) error {
		var victims []struct {
			key string
			ref engine.RecordRef
		}
		if err := engine.IndexMajorIterator(scope.Index(), prefix, func(key string, ref engine.RecordRef) error {
			victims = append(victims, struct {
				key string
				ref engine.RecordRef
			}{key, ref})
			return nil
		}); err != nil {
			return err
		}

		for _, v := range victims {
			if _, _, err := engine.IndexRemove(scope.Index(), v.key); err != nil {
				return err
			}
			if err := engine.ClusterDeleteRecord(scope.Records(), v.ref); err != nil {
				return err
			}
		}
		return nil
	})
	timer.ObserveDurationVec(metrics.CommitDuration, "clear")
	if err != nil {
		metrics.StoreOperationsTotal.WithLabelValues("clear", "error").Inc()
		return NewStorageError("clear", err)
	}
	metrics.StoreOperationsTotal.WithLabelValues("clear", "ok").Inc()
	log.Debug("catalog: cleared prefix " + prefix)
	return nil
}
