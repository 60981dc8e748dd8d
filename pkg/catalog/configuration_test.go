package catalog

import "testing"

// TestConfigurationBlobHiddenKey mirrors spec §8 scenario 3: three context
// keys where B is hidden; after encode/decode, A and C keep their values and
// B is present with a null-origin value.
func TestConfigurationBlobHiddenKey(t *testing.T) {
	gc := NewStaticGlobalCatalog()
	gc.Register("A", "string", false)
	gc.Register("B", "string", true)
	gc.Register("C", "string", false)

	cfg := NewConfiguration()
	cfg.Set("A", "alpha")
	cfg.Set("B", "bravo")
	cfg.Set("C", "charlie")

	enc := EncodeConfiguration(cfg, gc)
	decoded, nullOrigin, err := DecodeConfiguration(enc, gc)
	if err != nil {
		t.Fatalf("DecodeConfiguration() error = %v", err)
	}

	if v, ok := decoded.Get("A"); !ok || v != "alpha" {
		t.Errorf("A = (%q, %v), want (alpha, true)", v, ok)
	}
	if v, ok := decoded.Get("C"); !ok || v != "charlie" {
		t.Errorf("C = (%q, %v), want (charlie, true)", v, ok)
	}
	if _, ok := decoded.Get("B"); !ok {
		t.Error("expected B to be present after load")
	}
	if !nullOrigin["B"] {
		t.Error("expected B to be marked null-origin")
	}
	if nullOrigin["A"] || nullOrigin["C"] {
		t.Error("A and C must not be marked null-origin")
	}
}

func TestConfigurationBlobUnknownKeySkipped(t *testing.T) {
	gc := NewStaticGlobalCatalog()
	gc.Register("known", "string", false)

	cfg := NewConfiguration()
	cfg.Set("known", "value")
	cfg.Set("mystery", "value")

	enc := EncodeConfiguration(cfg, gc)
	decoded, _, err := DecodeConfiguration(enc, gc)
	if err != nil {
		t.Fatalf("DecodeConfiguration() error = %v", err)
	}
	if _, ok := decoded.Get("known"); !ok {
		t.Error("expected known key to survive")
	}
	if _, ok := decoded.Get("mystery"); ok {
		t.Error("expected unregistered key to be skipped on load")
	}
}

func TestConfigurationEmptyRoundTrip(t *testing.T) {
	gc := NewStaticGlobalCatalog()
	cfg := NewConfiguration()
	enc := EncodeConfiguration(cfg, gc)
	decoded, nullOrigin, err := DecodeConfiguration(enc, gc)
	if err != nil {
		t.Fatalf("DecodeConfiguration() error = %v", err)
	}
	if len(decoded.Keys()) != 0 || len(nullOrigin) != 0 {
		t.Errorf("expected empty configuration, got keys=%v nullOrigin=%v", decoded.Keys(), nullOrigin)
	}
}
