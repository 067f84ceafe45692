package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/gpart/pkg/gpart"
)

func TestWriteSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema", "gpart.schema.json")

	if err := writeSchema(out, gpart.Schema()); err != nil {
		t.Fatalf("writeSchema failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if decoded["title"] != "GPart Particle Effect" {
		t.Errorf("title = %v", decoded["title"])
	}
	if _, err := os.Stat(out + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}
