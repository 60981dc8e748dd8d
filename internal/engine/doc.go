/*
Package engine provides single-node, bbolt-backed implementations of the
three collaborators a catalog store is built on: an ordered key→record-id
index (IndexMap), a paginated record cluster (RecordCluster), and an
atomic-operation manager (TxnMgr).

Architecture

Each collaborator gets a small, concrete body backed by one *bbolt.DB file,
opened once and holding two buckets.

	┌────────────────────── engine.Store ───────────────────────┐
	│                                                             │
	│   *bbolt.DB  (single file: <base>.db)                     │
	│                                                             │
	│   ┌─────────────────┐        ┌─────────────────────────┐ │
	│   │ bucket "index"  │        │ bucket "records"         │ │
	│   │ key  -> 8-byte  │        │ 8-byte seq -> payload    │ │
	│   │ RecordRef (BE)  │        │ bytes                    │ │
	│   └─────────────────┘        └─────────────────────────┘ │
	│                                                             │
	│   TxnMgr.StartAtomicOperation == bbolt.DB.Begin(true)      │
	│   Scope.End(rollback) == Tx.Rollback() / Tx.Commit()       │
	└─────────────────────────────────────────────────────────┘

Both buckets live inside one bbolt transaction, so a Store mutation that
touches both the index and the record payload commits as a single physical
write, without an application-level two-phase commit between two separate
files.
*/
package engine
