package catalog

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestTextSnapshotFieldCount is spec §8 scenario 6: with network version
// 30, toStream produces bytes whose |-split tokens are exactly the ordered
// list from §4.2, with null fields rendered as " ".
func TestTextSnapshotFieldCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.db")
	facade, life := newFacade(t, path)
	if err := life.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer life.Close()

	if err := facade.UpdateCluster(1, ClusterDescriptor{Name: "a", Status: strp("ONLINE")}); err != nil {
		t.Fatal(err)
	}
	if err := facade.SetProperty("env", "prod"); err != nil {
		t.Fatal(err)
	}
	if err := facade.AddIndexEngine("idx1", IndexEngineDescriptor{Version: 1}); err != nil {
		t.Fatal(err)
	}

	out, err := NewTextSerializer(facade).ToStream(30, "UTF-8")
	if err != nil {
		t.Fatalf("ToStream() error = %v", err)
	}

	tokens := strings.Split(out, "|")
	if len(tokens) == 0 {
		t.Fatal("expected at least one token")
	}
	// 12 header fields, 2 phys-segment, 1+5 for cluster 1, 1+2 for the
	// property, 3, 3 context fields (N>24), 1+2 for idx1, 5 trailing.
	if len(tokens) != 37 {
		t.Errorf("token count = %d, want 37: %q", len(tokens), out)
	}
	for i, tok := range tokens {
		if tok == "" && i != 3 && i != len(tokens)-1 {
			// only the reserved empty field between schemaRecordId and
			// indexMgrRecordId (token 3) and the trailer are allowed to be
			// genuinely empty; nulls must render as a single space, never as
			// an empty string.
			t.Errorf("token %d is empty, want a value or a single space for null", i)
		}
	}
	if tokens[0] != "1" {
		t.Errorf("first token (CURRENT_VERSION) = %q, want 1", tokens[0])
	}
	if tokens[len(tokens)-1] != "" {
		t.Errorf("last token = %q, want empty trailer", tokens[len(tokens)-1])
	}
}

func TestTextSnapshotNullFieldsRenderAsSpace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.db")
	facade, life := newFacade(t, path)
	if err := life.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer life.Close()

	out, err := NewTextSerializer(facade).ToStream(30, "UTF-8")
	if err != nil {
		t.Fatalf("ToStream() error = %v", err)
	}
	tokens := strings.Split(out, "|")

	foundSpace := false
	for _, tok := range tokens {
		if tok == " " {
			foundSpace = true
			break
		}
	}
	if !foundSpace {
		t.Error("expected at least one null field rendered as a single space (e.g. unset conflictStrategy)")
	}
}
