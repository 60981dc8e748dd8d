package engine

import (
	bolt "go.etcd.io/bbolt"
)

// FaultInjector is called at named checkpoints inside a scope body, letting
// tests simulate a crash at a precise point without actually killing the
// process. A non-nil error returned from the injector aborts the scope as if
// the body itself had failed.
type FaultInjector func(checkpoint string) error

// Scope is one atomic-operation scope: a single bbolt write transaction
// spanning both the index and records buckets.
type Scope struct {
	tx    *bolt.Tx
	name  string
	fault FaultInjector
}

// Checkpoint calls the scope's FaultInjector, if any, reporting checkpoint.
// Callers place these at seams such as "afterClusterCreate" between
// RecordCluster.create and IndexMap.put inside put(), or "afterIndexRemove"
// between IndexMap.remove and RecordCluster.delete inside drop().
func (s *Scope) Checkpoint(checkpoint string) error {
	if s.fault == nil {
		return nil
	}
	return s.fault(checkpoint)
}

// Index returns the index bucket visible within this scope.
func (s *Scope) Index() *bolt.Bucket {
	return s.tx.Bucket(indexBucketName)
}

// Records returns the records bucket visible within this scope.
func (s *Scope) Records() *bolt.Bucket {
	return s.tx.Bucket(recordsBucketName)
}

// Name returns the atomic operation's name, as passed to
// StartAtomicOperation ("dbConfig" for every CatalogStore mutator).
func (s *Scope) Name() string {
	return s.name
}

// End commits the scope if rollback is false, or discards all writes made
// within it if rollback is true. It is the only way a Scope's transaction is
// resolved; the caller must call End exactly once.
func (s *Scope) End(rollback bool) error {
	if rollback {
		return s.tx.Rollback()
	}
	return s.tx.Commit()
}

// TxnMgr starts atomic operation scopes. In this single-node engine, a scope
// is a bbolt write transaction; StartAtomicOperation/Scope.End map directly
// onto bbolt's own Begin/Commit/Rollback.
type TxnMgr struct {
	db    *bolt.DB
	Fault FaultInjector
}

// StartAtomicOperation begins a new atomic operation scope named name.
// trackNonTx has no effect here: bbolt has no notion of non-transactional
// tracked writes to reconcile with a scope.
func (m *TxnMgr) StartAtomicOperation(name string, trackNonTx bool) (*Scope, error) {
	tx, err := m.db.Begin(true)
	if err != nil {
		return nil, err
	}
	return &Scope{tx: tx, name: name, fault: m.Fault}, nil
}

// WithScope runs fn inside one named atomic operation scope, committing on a
// nil return and rolling back otherwise, the way bbolt itself shapes
// DB.Update.
func WithScope(mgr *TxnMgr, name string, fn func(s *Scope) error) error {
	scope, err := mgr.StartAtomicOperation(name, false)
	if err != nil {
		return err
	}
	rollback := true
	defer func() {
		if rollback {
			_ = scope.End(true)
		}
	}()
	if err := fn(scope); err != nil {
		return err
	}
	rollback = false
	return scope.End(false)
}
