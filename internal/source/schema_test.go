package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSchema(t *testing.T) {
	data := []byte(`fields:
  - name: Id
    type: string
  - name: Amount
    type: double
  - name: Name
`)
	schema, err := ParseSchema(data)
	if err != nil {
		t.Fatalf("ParseSchema returned error: %v", err)
	}

	if diff := cmp.Diff([]string{"Id", "Amount", "Name"}, schema.FieldNames()); diff != "" {
		t.Errorf("FieldNames() mismatch (-want +got):\n%s", diff)
	}
	if !schema.HasField("Amount") {
		t.Error("HasField(Amount) = false, want true")
	}
	if schema.HasField("Missing") {
		t.Error("HasField(Missing) = true, want false")
	}
}

func TestParseSchemaEmpty(t *testing.T) {
	if _, err := ParseSchema([]byte("fields: []")); err == nil {
		t.Error("empty schema expected error, got nil")
	}
	if _, err := ParseSchema([]byte("fields: [")); err == nil {
		t.Error("malformed YAML expected error, got nil")
	}
}

func TestLoadSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	content := "fields:\n  - name: Id\n  - name: Name\n"
	if err := os.WriteFile(path, []byte(content), 0o640); err != nil {
		t.Fatalf("write schema file: %v", err)
	}

	schema, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("LoadSchema returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Id", "Name"}, schema.FieldNames()); diff != "" {
		t.Errorf("FieldNames() mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadSchema(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file expected error, got nil")
	}
}
