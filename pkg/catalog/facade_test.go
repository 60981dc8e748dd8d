package catalog

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFacadeSetMinimumClustersExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.db")
	facade, life := newFacade(t, path)
	if err := life.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer life.Close()

	if err := facade.SetMinimumClusters(4); err != nil {
		t.Fatalf("SetMinimumClusters() error = %v", err)
	}
	got, err := facade.GetMinimumClusters()
	if err != nil {
		t.Fatalf("GetMinimumClusters() error = %v", err)
	}
	if got != 4 {
		t.Errorf("GetMinimumClusters() = %d, want 4", got)
	}
}

func TestFacadeSetMinimumClustersZeroAutoSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.db")
	facade, life := newFacade(t, path)
	if err := life.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer life.Close()

	if err := facade.SetMinimumClusters(0); err != nil {
		t.Fatalf("SetMinimumClusters(0) error = %v", err)
	}
	got, err := facade.GetMinimumClusters()
	if err != nil {
		t.Fatalf("GetMinimumClusters() error = %v", err)
	}
	if got < 1 || got > maxAutoMinimumClusters {
		t.Errorf("auto-sized minimumClusters = %d, want in [1, %d]", got, maxAutoMinimumClusters)
	}
}

func TestFacadeLocaleInstanceCachesAndInvalidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.db")
	facade, life := newFacade(t, path)
	if err := life.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer life.Close()

	first := facade.GetLocaleInstance()
	second := facade.GetLocaleInstance()
	if first != second {
		t.Errorf("GetLocaleInstance() not stable across calls: %v != %v", first, second)
	}

	if err := facade.SetLocaleLanguage("fr"); err != nil {
		t.Fatalf("SetLocaleLanguage() error = %v", err)
	}
	if err := facade.SetLocaleCountry("FR"); err != nil {
		t.Fatalf("SetLocaleCountry() error = %v", err)
	}
	third := facade.GetLocaleInstance()
	if third.Language != "fr" || third.Country != "FR" {
		t.Errorf("GetLocaleInstance() after update = %+v, want {fr FR}", third)
	}
}

func TestFacadePropertyValidationMirror(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.db")
	facade, life := newFacade(t, path)
	if err := life.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer life.Close()

	if facade.Validation() {
		t.Error("expected validation to default to false")
	}
	if err := facade.SetProperty(PropertyValidation, "true"); err != nil {
		t.Fatalf("SetProperty() error = %v", err)
	}
	if !facade.Validation() {
		t.Error("expected validation to be true after SetProperty")
	}

	v, ok, err := facade.GetProperty(PropertyValidation)
	if err != nil {
		t.Fatalf("GetProperty() error = %v", err)
	}
	if !ok || v != "true" {
		t.Errorf("GetProperty(validation) = (%q, %v), want (true, true)", v, ok)
	}
}

func TestFacadeIndexEnginesScanning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.db")
	facade, life := newFacade(t, path)
	if err := life.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer life.Close()

	if err := facade.AddIndexEngine("idx1", IndexEngineDescriptor{Version: 1}); err != nil {
		t.Fatal(err)
	}
	if err := facade.AddIndexEngine("idx2", IndexEngineDescriptor{Version: 1}); err != nil {
		t.Fatal(err)
	}

	names, err := facade.IndexEngines()
	if err != nil {
		t.Fatalf("IndexEngines() error = %v", err)
	}
	if len(names) != 2 {
		t.Errorf("IndexEngines() = %v, want 2 entries", names)
	}
}

func TestFacadeSetClusterStatusUnknownCluster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.db")
	facade, life := newFacade(t, path)
	if err := life.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer life.Close()

	var invalidArg *InvalidArgumentError
	err := facade.SetClusterStatus(99, "ONLINE")
	if err == nil {
		t.Fatal("expected error for unknown cluster")
	}
	if !errors.As(err, &invalidArg) {
		t.Errorf("error = %v, want *InvalidArgumentError", err)
	}
}
