package catalog

import (
	"runtime"
	"sync"
	"time"

	"github.com/cuemby/catalogstore/pkg/log"
)

const maxAutoMinimumClusters = 64

// Facade is the typed view over a Store described in spec §4.4: fixed-key
// get/set accessors, derived locale/date-format instances, and the sparse
// cluster and index-engine views. It does not duplicate the store's lock;
// each accessor is itself a single Store call (or two, for a read-modify-
// write like addIndexEngine), so the non-reentrancy rule in spec §5 still
// holds. A small private mutex only guards the facade's own derived-value
// cache (the lazily constructed Locale) and the validation mirror.
type Facade struct {
	store  *Store
	global GlobalCatalog

	cacheMu     sync.Mutex
	localeCache *Locale
	validation  bool
}

// NewFacade wraps store with typed accessors, consulting global for the
// configuration blob's hidden-key suppression.
func NewFacade(store *Store, global GlobalCatalog) *Facade {
	return &Facade{store: store, global: global}
}

// Store returns the underlying Store, for callers that need lifecycle or
// raw access (Lifecycle uses this).
func (f *Facade) Store() *Store {
	return f.store
}

func (f *Facade) getString(key string) (*string, error) {
	raw, ok, err := f.store.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	v, _, err := DecodeString(key, raw, 0)
	return v, err
}

func (f *Facade) putString(key string, v *string) error {
	return f.store.Put(key, EncodeString(v))
}

func (f *Facade) getInt(key string, def int32) (int32, error) {
	raw, ok, err := f.store.Get(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	v, _, err := DecodeInt(key, raw, 0)
	return v, err
}

func (f *Facade) putInt(key string, v int32) error {
	return f.store.Put(key, EncodeInt(v))
}

// getRequiredString reads key and returns the stored value; it panics if the
// key is absent or stored as null — callers that require a non-null invariant
// (e.g. getDateFormat) call this after create()/load() have populated
// defaults, so absence here indicates a bug rather than a recoverable
// condition (spec §7).
func (f *Facade) getRequiredString(key string) (string, error) {
	v, err := f.getString(key)
	if err != nil {
		return "", err
	}
	if v == nil {
		panic("catalog: required key " + key + " has no value; create()/load() must populate it")
	}
	return *v, nil
}

// --- Simple typed accessors (spec §4.4 table) ---

func (f *Facade) GetVersion() (int32, error) { return f.getInt(KeyVersion, 0) }
func (f *Facade) setVersion(v int32) error   { return f.putInt(KeyVersion, v) }

func (f *Facade) GetSchemaRecordId() (string, error) { return f.getRequiredString(KeySchemaRecordId) }
func (f *Facade) setSchemaRecordId(v string) error    { return f.putString(KeySchemaRecordId, &v) }

func (f *Facade) GetIndexManagerRecordId() (string, error) {
	return f.getRequiredString(KeyIndexManagerRecordId)
}
func (f *Facade) setIndexManagerRecordId(v string) error {
	return f.putString(KeyIndexManagerRecordId, &v)
}

func (f *Facade) GetLocaleLanguage() (string, error) { return f.getRequiredString(KeyLocaleLanguage) }
func (f *Facade) SetLocaleLanguage(v string) error {
	f.invalidateLocaleCache()
	return f.putString(KeyLocaleLanguage, &v)
}

func (f *Facade) GetLocaleCountry() (string, error) { return f.getRequiredString(KeyLocaleCountry) }
func (f *Facade) SetLocaleCountry(v string) error {
	f.invalidateLocaleCache()
	return f.putString(KeyLocaleCountry, &v)
}

func (f *Facade) GetDateFormat() (string, error) { return f.getRequiredString(KeyDateFormat) }
func (f *Facade) SetDateFormat(v string) error    { return f.putString(KeyDateFormat, &v) }

func (f *Facade) GetDateTimeFormat() (string, error) { return f.getRequiredString(KeyDateTimeFormat) }
func (f *Facade) SetDateTimeFormat(v string) error    { return f.putString(KeyDateTimeFormat, &v) }

func (f *Facade) GetTimeZone() (string, error) { return f.getRequiredString(KeyTimeZone) }
func (f *Facade) SetTimeZone(v string) error    { return f.putString(KeyTimeZone, &v) }

func (f *Facade) GetCharset() (string, error) { return f.getRequiredString(KeyCharset) }
func (f *Facade) SetCharset(v string) error    { return f.putString(KeyCharset, &v) }

func (f *Facade) GetConflictStrategy() (*string, error) { return f.getString(KeyConflictStrategy) }
func (f *Facade) SetConflictStrategy(v *string) error    { return f.putString(KeyConflictStrategy, v) }

func (f *Facade) GetClusterSelection() (*string, error) { return f.getString(KeyClusterSelection) }
func (f *Facade) SetClusterSelection(v *string) error    { return f.putString(KeyClusterSelection, v) }

func (f *Facade) GetRecordSerializer() (*string, error) { return f.getString(KeyRecordSerializer) }
func (f *Facade) SetRecordSerializer(v *string) error    { return f.putString(KeyRecordSerializer, v) }

func (f *Facade) GetCreateAtVersion() (*string, error) { return f.getString(KeyCreateAtVersion) }
func (f *Facade) setCreateAtVersion(v string) error     { return f.putString(KeyCreateAtVersion, &v) }

func (f *Facade) GetRecordSerializerVersion() (int32, error) {
	return f.getInt(KeyRecordSerializerVersion, 0)
}
func (f *Facade) setRecordSerializerVersion(v int32) error {
	return f.putInt(KeyRecordSerializerVersion, v)
}

func (f *Facade) GetBinaryFormatVersion() (int32, error) {
	return f.getInt(KeyBinaryFormatVersion, 0)
}
func (f *Facade) setBinaryFormatVersion(v int32) error {
	return f.putInt(KeyBinaryFormatVersion, v)
}

func (f *Facade) GetPageSize() (int32, error) { return f.getInt(KeyPageSize, -1) }
func (f *Facade) SetPageSize(v int32) error    { return f.putInt(KeyPageSize, v) }

func (f *Facade) GetFreeListBoundary() (int32, error) { return f.getInt(KeyFreeListBoundary, -1) }
func (f *Facade) SetFreeListBoundary(v int32) error     { return f.putInt(KeyFreeListBoundary, v) }

func (f *Facade) GetMaxKeySize() (int32, error) { return f.getInt(KeyMaxKeySize, -1) }
func (f *Facade) SetMaxKeySize(v int32) error    { return f.putInt(KeyMaxKeySize, v) }

// GetMinimumClusters returns the configured minimum cluster count.
func (f *Facade) GetMinimumClusters() (int32, error) { return f.getInt(KeyMinimumClusters, 0) }

// SetMinimumClusters writes n, or — if n is 0 — auto-sizes to
// min(runtime.NumCPU(), 64) (spec §4.4).
func (f *Facade) SetMinimumClusters(n int32) error {
	if n == 0 {
		n = autoMinimumClusters()
	}
	return f.putInt(KeyMinimumClusters, n)
}

func autoMinimumClusters() int32 {
	n := runtime.NumCPU()
	if n > maxAutoMinimumClusters {
		n = maxAutoMinimumClusters
	}
	if n < 1 {
		n = 1
	}
	return int32(n)
}

// --- Derived behaviors ---

// GetLocaleInstance lazily constructs a Locale from localeLanguage/
// localeCountry; on any read failure it falls back to a host-default
// locale and logs (spec §4.4).
func (f *Facade) GetLocaleInstance() Locale {
	f.cacheMu.Lock()
	defer f.cacheMu.Unlock()
	if f.localeCache != nil {
		return *f.localeCache
	}

	lang, errL := f.GetLocaleLanguage()
	country, errC := f.GetLocaleCountry()
	if errL != nil || errC != nil {
		log.Warn("catalog: failed to read locale fields, falling back to host default")
		loc := hostDefaultLocale()
		f.localeCache = &loc
		return loc
	}
	loc := Locale{Language: lang, Country: country}
	f.localeCache = &loc
	return loc
}

func (f *Facade) invalidateLocaleCache() {
	f.cacheMu.Lock()
	defer f.cacheMu.Unlock()
	f.localeCache = nil
}

func hostDefaultLocale() Locale {
	return Locale{Language: "en", Country: "US"}
}

// GetDateFormatInstance builds a fresh, non-lenient DateFormat for
// getDateFormat() bound to getTimeZone() (spec §4.4).
func (f *Facade) GetDateFormatInstance() (DateFormat, error) {
	pattern, err := f.GetDateFormat()
	if err != nil {
		return DateFormat{}, err
	}
	return f.dateFormatFor(pattern)
}

// GetDateTimeFormatInstance builds a fresh, non-lenient DateFormat for
// getDateTimeFormat() bound to getTimeZone() (spec §4.4).
func (f *Facade) GetDateTimeFormatInstance() (DateFormat, error) {
	pattern, err := f.GetDateTimeFormat()
	if err != nil {
		return DateFormat{}, err
	}
	return f.dateFormatFor(pattern)
}

func (f *Facade) dateFormatFor(pattern string) (DateFormat, error) {
	tz, err := f.GetTimeZone()
	if err != nil {
		return DateFormat{}, err
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Warn("catalog: unknown time zone " + tz + ", falling back to UTC")
		loc = time.UTC
	}
	return NewDateFormat(pattern, loc), nil
}

// --- Configuration blob ---

// GetConfiguration decodes and returns the configuration blob, or an empty
// Configuration if never set.
func (f *Facade) GetConfiguration() (*Configuration, map[string]bool, error) {
	raw, ok, err := f.store.Get(KeyConfiguration)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return NewConfiguration(), nil, nil
	}
	return DecodeConfiguration(raw, f.global)
}

// PutConfiguration encodes and writes cfg as the configuration blob.
func (f *Facade) PutConfiguration(cfg *Configuration) error {
	return f.store.Put(KeyConfiguration, EncodeConfiguration(cfg, f.global))
}

// --- Properties ---

// GetProperty returns the user property value for name, or ok=false if
// unset.
func (f *Facade) GetProperty(name string) (string, bool, error) {
	v, err := f.getString(PropertyKey(name))
	if err != nil {
		return "", false, err
	}
	if v == nil {
		return "", false, nil
	}
	return *v, true, nil
}

// SetProperty writes the user property value for name. Setting
// PropertyValidation also updates the facade's in-memory validation mirror
// (spec §4.4).
func (f *Facade) SetProperty(name, value string) error {
	if err := f.putString(PropertyKey(name), &value); err != nil {
		return err
	}
	if name == PropertyValidation {
		f.cacheMu.Lock()
		f.validation = value == "true"
		f.cacheMu.Unlock()
	}
	return nil
}

// Validation returns the in-memory validation mirror last set via
// SetProperty(PropertyValidation, ...) or read from context during load().
func (f *Facade) Validation() bool {
	f.cacheMu.Lock()
	defer f.cacheMu.Unlock()
	return f.validation
}

func (f *Facade) setValidationFromLoad(v bool) {
	f.cacheMu.Lock()
	f.validation = v
	f.cacheMu.Unlock()
}

// --- Index engines ---

// IndexEngines returns the set of registered index-engine names by scanning
// the engine_ prefix (spec §4.4).
func (f *Facade) IndexEngines() ([]string, error) {
	entries, err := f.store.PrefixScan(prefixEngine)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := EngineNameFromKey(e.Key); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// GetIndexEngine decodes the descriptor for name, or ok=false if unknown.
func (f *Facade) GetIndexEngine(name string) (IndexEngineDescriptor, bool, error) {
	key := EngineKey(name)
	raw, ok, err := f.store.Get(key)
	if err != nil || !ok {
		return IndexEngineDescriptor{}, false, err
	}
	d, err := DecodeIndexEngineDescriptor(key, raw)
	return d, err == nil, err
}

// AddIndexEngine registers d under name. If an engine by that name already
// exists, the call logs a warning and leaves the existing descriptor
// untouched rather than failing (spec §7 AlreadyExists, §8 scenario 5).
func (f *Facade) AddIndexEngine(name string, d IndexEngineDescriptor) error {
	key := EngineKey(name)
	if _, ok, err := f.store.Get(key); err != nil {
		return err
	} else if ok {
		log.Warn("catalog: index engine " + name + " already exists, skipping")
		return nil
	}
	return f.store.Put(key, EncodeIndexEngineDescriptor(d))
}

// RemoveIndexEngine deletes the descriptor for name, if present.
func (f *Facade) RemoveIndexEngine(name string) error {
	return f.store.Drop(EngineKey(name))
}

// --- Clusters ---

// GetClusters returns every registered cluster descriptor keyed by id
// (spec §4.4, §9 "Sparse cluster list"). Gaps in id-space are simply
// absent from the map; no gap-filled slice is built (TextSerializer walks
// the present ids in ascending order).
func (f *Facade) GetClusters() (map[int]ClusterDescriptor, error) {
	entries, err := f.store.PrefixScan(prefixCluster)
	if err != nil {
		return nil, err
	}
	out := make(map[int]ClusterDescriptor, len(entries))
	for _, e := range entries {
		id, ok := ParseClusterKey(e.Key)
		if !ok {
			continue
		}
		d, err := DecodeClusterDescriptor(e.Key, e.Value)
		if err != nil {
			return nil, err
		}
		out[id] = d
	}
	return out, nil
}

// UpdateCluster writes (or overwrites) the descriptor for id.
func (f *Facade) UpdateCluster(id int, d ClusterDescriptor) error {
	d.Variant = "paginated"
	return f.store.Put(ClusterKey(id), EncodeClusterDescriptor(d))
}

// SetClusterStatus updates only the status field of cluster id, preserving
// every other field (spec §8 scenario 4).
func (f *Facade) SetClusterStatus(id int, status string) error {
	key := ClusterKey(id)
	raw, ok, err := f.store.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return NewInvalidArgument("clusterId", key, "no such cluster")
	}
	d, err := DecodeClusterDescriptor(key, raw)
	if err != nil {
		return err
	}
	d.Status = &status
	return f.store.Put(key, EncodeClusterDescriptor(d))
}

// RemoveCluster deletes the descriptor for id, if present.
func (f *Facade) RemoveCluster(id int) error {
	return f.store.Drop(ClusterKey(id))
}

// --- Listener ---

// SetConfigurationUpdateListener installs the single listener invoked after
// every successful put, across all keys (spec §4.4).
func (f *Facade) SetConfigurationUpdateListener(l UpdateListener) {
	f.store.SetUpdateListener(l)
}
