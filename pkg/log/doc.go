/*
Package log provides structured logging for the catalog store using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper
functions for common logging patterns. All logs include timestamps and
support filtering by severity level for production debugging.

# Architecture

	┌──────────────────── LOGGING SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Global Logger                    │          │
	│  │  - Zerolog instance                         │          │
	│  │  - Initialized via log.Init()               │          │
	│  │  - Thread-safe for concurrent use           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           Configuration                     │          │
	│  │  - Level: debug/info/warn/error             │          │
	│  │  - Format: JSON or console (human)          │          │
	│  │  - Output: stdout, file, or custom writer   │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │         Component Loggers                   │          │
	│  │  - WithComponent("catalog")                 │          │
	│  │  - WithKey("cluster_7")                     │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │            Log Output                       │          │
	│  │                                              │          │
	│  │  JSON Format:                               │          │
	│  │  {                                           │          │
	│  │    "level": "warn",                         │          │
	│  │    "component": "catalog",                  │          │
	│  │    "key": "property_validation",            │          │
	│  │    "time": "2026-07-31T10:30:00Z",         │          │
	│  │    "message": "unregistered key, skipping"  │          │
	│  │  }                                           │          │
	│  │                                              │          │
	│  │  Console Format:                            │          │
	│  │  10:30AM WRN unregistered key, skipping component=catalog key=property_validation │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Core Components

Global Logger:
  - Package-level zerolog.Logger instance
  - Initialized once via log.Init()
  - Accessible from all catalog packages without threading a logger through
    every call

Log Levels:
  - Debug: CatalogStore prefix clears
  - Info: Not used by the catalog packages
  - Warn: Recoverable anomalies — unknown configuration keys, duplicate
    index-engine registration, locale fallback
  - Error: Not used by the catalog packages; I/O failures are returned to
    the caller as StorageError rather than logged
  - Fatal: Unused by this package; the store never terminates the process

Context Loggers:
  - WithComponent: add a component field ("catalog", "engine", "catalogctl")
  - WithKey: add the catalog key under discussion — the natural unit of
    observability for a keyed configuration store, replacing node/service/
    task identifiers from a cluster-orchestration context

# Usage

Initializing the Logger:

	import "github.com/cuemby/catalogstore/pkg/log"

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     os.Stdout,
	})

Simple Logging:

	log.Info("catalog store opened")
	log.Warn("configuration key has no GlobalCatalog registration")
	log.Error("failed to commit atomic operation")

Component and Key Loggers:

	catalogLog := log.WithComponent("catalog")
	catalogLog.Warn().Str("key", "property_unknown").Msg("skipping unregistered key")

	keyLog := log.WithKey("engine_idx1")
	keyLog.Warn().Msg("index engine already exists, keeping existing descriptor")

# Design Patterns

Global Logger Pattern:
  - Single package-level Logger instance initialized once at process start,
    accessible from all packages without being passed down every call chain.

Context Logger Pattern:
  - Create child loggers with component/key fields and pass them down,
    avoiding repetitive field specification at every call site.

Structured Logging Pattern:
  - Typed fields (.Str, .Int, .Err) instead of string concatenation, so logs
    stay parseable by downstream aggregation tools.
*/
package log
