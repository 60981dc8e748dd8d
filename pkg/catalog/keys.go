package catalog

import "strconv"

// Single-field keys.
const (
	KeyVersion                 = "version"
	KeySchemaRecordId          = "schemaRecordId"
	KeyIndexManagerRecordId    = "indexManagerRecordId"
	KeyLocaleLanguage          = "localeLanguage"
	KeyLocaleCountry           = "localeCountry"
	KeyDateFormat              = "dateFormat"
	KeyDateTimeFormat          = "dateTimeFormat"
	KeyTimeZone                = "timeZone"
	KeyCharset                 = "charset"
	KeyConflictStrategy        = "conflictStrategy"
	KeyClusterSelection        = "clusterSelection"
	KeyRecordSerializer        = "recordSerializer"
	KeyCreateAtVersion         = "createAtVersion"
	KeyRecordSerializerVersion = "recordSerializerVersion"
	KeyBinaryFormatVersion     = "binaryFormatVersion"
	KeyMinimumClusters         = "minimumClusters"
	KeyPageSize                = "pageSize"
	KeyFreeListBoundary        = "freeListBoundary"
	KeyMaxKeySize              = "maxKeySize"
	KeyConfiguration           = "configuration"
)

// Group-key prefixes.
const (
	prefixCluster  = "cluster_"
	prefixEngine   = "engine_"
	prefixProperty = "property_"
)

// ClusterKey returns the catalog key for the cluster with the given id.
func ClusterKey(id int) string {
	return prefixCluster + strconv.Itoa(id)
}

// ParseClusterKey extracts the cluster id from a key beginning with
// prefixCluster. ok is false if key does not have that shape.
func ParseClusterKey(key string) (id int, ok bool) {
	if len(key) <= len(prefixCluster) || key[:len(prefixCluster)] != prefixCluster {
		return 0, false
	}
	n, err := strconv.Atoi(key[len(prefixCluster):])
	if err != nil {
		return 0, false
	}
	return n, true
}

// EngineKey returns the catalog key for the index engine with the given
// name.
func EngineKey(name string) string {
	return prefixEngine + name
}

// EngineNameFromKey extracts the engine name from a key beginning with
// prefixEngine. ok is false if key does not have that shape.
func EngineNameFromKey(key string) (name string, ok bool) {
	if len(key) <= len(prefixEngine) || key[:len(prefixEngine)] != prefixEngine {
		return "", false
	}
	return key[len(prefixEngine):], true
}

// PropertyKey returns the catalog key for the user property with the given
// name.
func PropertyKey(name string) string {
	return prefixProperty + name
}

// PropertyNameFromKey extracts the property name from a key beginning with
// prefixProperty. ok is false if key does not have that shape.
func PropertyNameFromKey(key string) (name string, ok bool) {
	if len(key) <= len(prefixProperty) || key[:len(prefixProperty)] != prefixProperty {
		return "", false
	}
	return key[len(prefixProperty):], true
}

// PropertyValidation is the well-known property name that also mirrors an
// in-memory boolean on the facade.
const PropertyValidation = "validation"

// GlobalEntry describes one key as known to the external global catalog:
// its declared type name and whether its value must be suppressed (written
// as null) when the configuration blob is serialized.
type GlobalEntry struct {
	Type   string
	Hidden bool
}

// GlobalCatalog is the external key-registry collaborator consulted while
// encoding/decoding the configuration blob. It is out of scope in
// the sense that production deployments would back it with a real schema
// registry; this module injects a small in-memory implementation so the
// store is self-contained, and accepts any implementation for testing.
type GlobalCatalog interface {
	FindByKey(key string) (GlobalEntry, bool)
}

// StaticGlobalCatalog is a fixed, in-memory GlobalCatalog suitable for
// embedding and for tests that need to mark specific keys hidden.
type StaticGlobalCatalog struct {
	entries map[string]GlobalEntry
}

// NewStaticGlobalCatalog builds a StaticGlobalCatalog with no registered
// entries; use Register to populate it.
func NewStaticGlobalCatalog() *StaticGlobalCatalog {
	return &StaticGlobalCatalog{entries: make(map[string]GlobalEntry)}
}

// Register records key's type and hidden flag.
func (c *StaticGlobalCatalog) Register(key, typ string, hidden bool) {
	c.entries[key] = GlobalEntry{Type: typ, Hidden: hidden}
}

// FindByKey implements GlobalCatalog.
func (c *StaticGlobalCatalog) FindByKey(key string) (GlobalEntry, bool) {
	e, ok := c.entries[key]
	return e, ok
}
