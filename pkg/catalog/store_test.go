package catalog

import (
	"errors"
	"path/filepath"
	"sort"
	"sync"
	"testing"
)

func newOpenStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "config.db"))
	if err := s.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreGetAbsent(t *testing.T) {
	s := newOpenStore(t)
	_, ok, err := s.Get("nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("expected absent key to report ok=false")
	}
}

func TestStorePutGetDrop(t *testing.T) {
	s := newOpenStore(t)
	if err := s.Put("k1", []byte("v1")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	v, ok, err := s.Get("k1")
	if err != nil || !ok || string(v) != "v1" {
		t.Fatalf("Get() = (%q, %v, %v), want (v1, true, nil)", v, ok, err)
	}

	if err := s.Put("k1", []byte("v2")); err != nil {
		t.Fatalf("Put() overwrite error = %v", err)
	}
	v, ok, err = s.Get("k1")
	if err != nil || !ok || string(v) != "v2" {
		t.Fatalf("Get() after overwrite = (%q, %v, %v), want (v2, true, nil)", v, ok, err)
	}

	if err := s.Drop("k1"); err != nil {
		t.Fatalf("Drop() error = %v", err)
	}
	_, ok, err = s.Get("k1")
	if err != nil || ok {
		t.Fatalf("Get() after drop = (_, %v, %v), want (false, nil)", ok, err)
	}
}

// TestStorePrefixScanConfinement is property P6: prefixScan(p) returns
// exactly the set of keys starting with p.
func TestStorePrefixScanConfinement(t *testing.T) {
	s := newOpenStore(t)
	keys := []string{"cluster_1", "cluster_2", "engine_idx1", "property_validation", "version"}
	for _, k := range keys {
		if err := s.Put(k, []byte(k)); err != nil {
			t.Fatalf("Put(%q) error = %v", k, err)
		}
	}

	entries, err := s.PrefixScan("cluster_")
	if err != nil {
		t.Fatalf("PrefixScan() error = %v", err)
	}
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Key
	}
	sort.Strings(got)
	want := []string{"cluster_1", "cluster_2"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("PrefixScan(cluster_) = %v, want %v", got, want)
	}
}

// TestStorePrefixRecordLink is property P3: every key from prefixScan("")
// resolves to a readable, non-corrupt record.
func TestStorePrefixRecordLink(t *testing.T) {
	s := newOpenStore(t)
	if err := s.Put("a", []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("b", []byte("2")); err != nil {
		t.Fatal(err)
	}
	if err := s.Drop("a"); err != nil {
		t.Fatal(err)
	}

	entries, err := s.PrefixScan("")
	if err != nil {
		t.Fatalf("PrefixScan() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Key != "b" || string(entries[0].Value) != "2" {
		t.Errorf("PrefixScan(\"\") = %+v, want [{b 2}]", entries)
	}
}

func TestStoreClear(t *testing.T) {
	s := newOpenStore(t)
	for _, k := range []string{"property_a", "property_b", "version"} {
		if err := s.Put(k, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Clear("property_"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	entries, err := s.PrefixScan("")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Key != "version" {
		t.Errorf("after Clear(property_), PrefixScan(\"\") = %+v, want [{version x}]", entries)
	}
}

func TestStoreNotOpenBeforeCreate(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "config.db"))
	if _, _, err := s.Get("k"); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Get() before open error = %v, want ErrNotOpen", err)
	}
	if err := s.Put("k", []byte("v")); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Put() before open error = %v, want ErrNotOpen", err)
	}
}

func TestStoreUpdateListenerFiresAfterCommit(t *testing.T) {
	s := newOpenStore(t)
	var gotKey string
	var gotValue []byte
	s.SetUpdateListener(func(key string, value []byte) {
		gotKey, gotValue = key, value
	})
	if err := s.Put("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if gotKey != "k" || string(gotValue) != "v" {
		t.Errorf("listener saw (%q, %q), want (k, v)", gotKey, gotValue)
	}
}

// TestStoreFaultInjectionPutRollsBack is spec §8's first fault-injection
// scenario: killing between cluster.create and the index put leaves neither
// the mapping nor the record on reopen.
func TestStoreFaultInjectionPutRollsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.db")
	s := NewStore(path)
	injected := errors.New("simulated crash")
	s.SetFaultInjector(func(checkpoint string) error {
		if checkpoint == "afterClusterCreate" {
			return injected
		}
		return nil
	})
	if err := s.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err := s.Put("k", []byte("v"))
	if !errors.Is(err, injected) {
		t.Fatalf("Put() error = %v, want wrapped %v", err, injected)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer reopened.Close()
	_, ok, err := reopened.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected rolled-back put to leave no trace on reopen")
	}
}

// TestStoreFaultInjectionDropRollsBack is spec §8's second fault-injection
// scenario: killing between index-remove and cluster-delete inside drop
// leaves both the mapping and the record intact on reopen.
func TestStoreFaultInjectionDropRollsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.db")
	s := NewStore(path)
	if err := s.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Put("k", []byte("v")); err != nil {
		t.Fatal(err)
	}

	injected := errors.New("simulated crash")
	s.SetFaultInjector(func(checkpoint string) error {
		if checkpoint == "afterIndexRemove" {
			return injected
		}
		return nil
	})

	if err := s.Drop("k"); !errors.Is(err, injected) {
		t.Fatalf("Drop() error = %v, want wrapped %v", err, injected)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer reopened.Close()
	v, ok, err := reopened.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || string(v) != "v" {
		t.Errorf("Get() = (%q, %v), want (v, true) after rolled-back drop", v, ok)
	}
}

// TestStoreConcurrentPutsSerialize is property P5: concurrent puts on
// different keys are serialized and all observed by a final prefixScan.
func TestStoreConcurrentPutsSerialize(t *testing.T) {
	s := newOpenStore(t)
	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := PropertyKey(string(rune('a' + i)))
			if err := s.Put(key, []byte{byte(i)}); err != nil {
				t.Errorf("Put() error = %v", err)
			}
		}()
	}
	wg.Wait()

	entries, err := s.PrefixScan(prefixProperty)
	if err != nil {
		t.Fatalf("PrefixScan() error = %v", err)
	}
	if len(entries) != n {
		t.Errorf("PrefixScan() returned %d entries, want %d", len(entries), n)
	}
}
