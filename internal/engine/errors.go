package engine

import "errors"

// ErrNotFound is the engine's not-found sentinel. IndexGet and
// ClusterReadRecord do not return it; they report a missing key or record
// through their boolean result.
var ErrNotFound = errors.New("engine: not found")

// ErrNotOpen is returned when an operation is attempted before Create/Open
// or after Close.
var ErrNotOpen = errors.New("engine: store not open")
