package catalog

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// CurrentVersion is the catalog format version written by create() (spec §8
// scenario 1). load() does not check the stored version against it.
const CurrentVersion int32 = 1

// CurrentBinaryFormatVersion is the on-disk record format version this
// module writes.
const CurrentBinaryFormatVersion int32 = 1

// DefaultCharset is the charset name create() installs when none is given.
const DefaultCharset = "UTF-8"

// DefaultDateFormat and DefaultDateTimeFormat are the classic
// letter-pattern layouts create() installs (spec §8 scenario 1, 2).
const (
	DefaultDateFormat     = "yyyy-MM-dd"
	DefaultDateTimeFormat = "yyyy-MM-dd HH:mm:ss"
)

// Lifecycle drives a Facade through the uninitialized → open → closed →
// deleted state machine described in spec §4.5.
type Lifecycle struct {
	facade *Facade
}

// NewLifecycle wraps facade with create/load/close/delete operations.
func NewLifecycle(facade *Facade) *Lifecycle {
	return &Lifecycle{facade: facade}
}

// Create initializes the backing store and populates every known field
// with its default value (spec §4.5).
func (l *Lifecycle) Create() error {
	if err := l.facade.store.Create(); err != nil {
		return err
	}
	return l.init()
}

// init performs the default-population step of create(): version,
// binary-format-version, default charset, default date/time formats, host
// locale, host time zone, unset page/free-list/max-key-size, auto-sized
// minimum clusters, recordSerializerVersion=0, schema/index-manager record
// ids, and a validation flag read back from context (spec §4.5).
func (l *Lifecycle) init() error {
	f := l.facade

	if err := f.setVersion(CurrentVersion); err != nil {
		return err
	}
	if err := f.setBinaryFormatVersion(CurrentBinaryFormatVersion); err != nil {
		return err
	}
	if err := f.SetCharset(DefaultCharset); err != nil {
		return err
	}
	if err := f.SetDateFormat(DefaultDateFormat); err != nil {
		return err
	}
	if err := f.SetDateTimeFormat(DefaultDateTimeFormat); err != nil {
		return err
	}

	hostLocale := hostDefaultLocale()
	if err := f.SetLocaleLanguage(hostLocale.Language); err != nil {
		return err
	}
	if err := f.SetLocaleCountry(hostLocale.Country); err != nil {
		return err
	}
	if err := f.SetTimeZone(time.Local.String()); err != nil {
		return err
	}

	for _, key := range []string{KeyPageSize, KeyFreeListBoundary, KeyMaxKeySize} {
		if err := f.putInt(key, -1); err != nil {
			return err
		}
	}

	if err := f.SetMinimumClusters(0); err != nil {
		return err
	}
	if err := f.setRecordSerializerVersion(0); err != nil {
		return err
	}
	if err := f.setCreateAtVersion(strconv.Itoa(int(CurrentVersion))); err != nil {
		return err
	}
	if err := f.setSchemaRecordId(uuid.NewString()); err != nil {
		return err
	}
	if err := f.setIndexManagerRecordId(uuid.NewString()); err != nil {
		return err
	}

	cfg, _, err := f.GetConfiguration()
	if err != nil {
		return err
	}
	if v, ok := cfg.Get(PropertyValidation); ok {
		f.setValidationFromLoad(v == "true")
	}
	return nil
}

// Load opens the backing store, then rehydrates the configuration blob and
// minimumClusters into the in-memory view (spec §4.5).
func (l *Lifecycle) Load() error {
	if err := l.facade.store.Load(); err != nil {
		return err
	}

	cfg, _, err := l.facade.GetConfiguration()
	if err != nil {
		return err
	}
	if v, ok := cfg.Get(PropertyValidation); ok {
		l.facade.setValidationFromLoad(v == "true")
	}

	// minimumClusters is itself a plain integer key and is rehydrated
	// simply by being readable through GetMinimumClusters(); no extra
	// materialization step is required beyond opening the store.
	if _, err := l.facade.GetMinimumClusters(); err != nil {
		return err
	}
	return nil
}

// Close persists the configuration blob and minimumClusters, then closes
// the backing store (spec §4.5).
func (l *Lifecycle) Close() error {
	f := l.facade

	cfg, _, err := f.GetConfiguration()
	if err != nil {
		return err
	}
	cfg.Set(PropertyValidation, boolString(f.Validation()))
	if err := f.PutConfiguration(cfg); err != nil {
		return err
	}

	minClusters, err := f.GetMinimumClusters()
	if err != nil {
		return err
	}
	if err := f.putInt(KeyMinimumClusters, minClusters); err != nil {
		return err
	}

	return f.store.Close()
}

// Delete removes the backing store's file entirely.
func (l *Lifecycle) Delete() error {
	return l.facade.store.Delete()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
