package catalog

import (
	"github.com/cuemby/catalogstore/pkg/log"
	"github.com/cuemby/catalogstore/pkg/metrics"
)

// Configuration is the in-memory form of the `configuration` blob: the full
// external key/value context (spec §4.1, §4.4).
type Configuration struct {
	entries map[string]string
	order   []string
}

// NewConfiguration returns an empty Configuration.
func NewConfiguration() *Configuration {
	return &Configuration{entries: make(map[string]string)}
}

// Set records key=value, preserving first-seen insertion order.
func (c *Configuration) Set(key, value string) {
	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = value
}

// Get returns the value for key and whether it was present.
func (c *Configuration) Get(key string) (string, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Keys returns the context keys in insertion order.
func (c *Configuration) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// EncodeConfiguration encodes cfg as the configuration blob (spec §4.1): a
// 4-byte count N followed by N × (string key, string value). A key
// registered in catalog with Hidden=true is written with a null value
// instead of its real one; a key with no GlobalCatalog registration is also
// written with a null value, and a warning is logged through the logging
// collaborator for each such key.
func EncodeConfiguration(cfg *Configuration, catalog GlobalCatalog) []byte {
	keys := cfg.Keys()
	out := EncodeInt(int32(len(keys)))
	for _, k := range keys {
		k := k
		out = append(out, EncodeString(&k)...)

		entry, known := catalog.FindByKey(k)
		switch {
		case known && entry.Hidden:
			metrics.HiddenConfigKeysSkipped.Inc()
			out = append(out, EncodeString(nil)...)
		case !known:
			metrics.UnknownConfigKeysSkipped.Inc()
			log.Warn("catalog: configuration key " + k + " is not registered in the global catalog; writing null")
			out = append(out, EncodeString(nil)...)
		default:
			v, _ := cfg.Get(k)
			out = append(out, EncodeString(&v)...)
		}
	}
	return out
}

// DecodeConfiguration decodes a configuration blob previously produced by
// EncodeConfiguration. A key with no catalog registration at all is logged
// and skipped (spec §4.5's load() behavior); a registered key (hidden or
// not) whose value decoded as null is kept, with its presence recorded in
// nullOrigin, matching spec §8 scenario 3 ("B is present with a
// null-origin value").
func DecodeConfiguration(b []byte, catalog GlobalCatalog) (cfg *Configuration, nullOrigin map[string]bool, err error) {
	cfg = NewConfiguration()
	nullOrigin = make(map[string]bool)
	off := 0

	count, n, err := DecodeInt(KeyConfiguration, b, off)
	if err != nil {
		return nil, nil, err
	}
	off += n
	if count < 0 {
		return nil, nil, NewCorruptValue(KeyConfiguration, off, "negative configuration entry count")
	}

	for i := int32(0); i < count; i++ {
		k, n, err := DecodeString(KeyConfiguration, b, off)
		if err != nil {
			return nil, nil, err
		}
		off += n
		if k == nil {
			return nil, nil, NewCorruptValue(KeyConfiguration, off, "null configuration key")
		}

		v, n, err := DecodeString(KeyConfiguration, b, off)
		if err != nil {
			return nil, nil, err
		}
		off += n

		if _, known := catalog.FindByKey(*k); !known {
			metrics.UnknownConfigKeysSkipped.Inc()
			log.Warn("catalog: configuration key " + *k + " is not registered in the global catalog; skipping on load")
			continue
		}

		if v == nil {
			nullOrigin[*k] = true
			cfg.Set(*k, "")
		} else {
			cfg.Set(*k, *v)
		}
	}
	return cfg, nullOrigin, nil
}
