package gpart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/iancoleman/orderedmap"
)

// Indent is the per-level indentation of emitted documents.
const Indent = "    "

// ErrUnsupportedVersion is returned when reading a document whose
// metadata.version is not Version.
var ErrUnsupportedVersion = errors.New("unsupported .gpart version")

// Marshal renders doc as indented JSON followed by a newline.
//
// Keys appear in struct declaration order. float32 fields are formatted at
// 32-bit precision, so every value round-trips exactly. Non-finite floats
// cannot be represented and make Marshal fail.
func Marshal(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("failed to encode document: nil document")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document %q: %w", doc.Metadata.Name, err)
	}
	return buf.Bytes(), nil
}

// Unmarshal parses a .gpart document.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse .gpart document: %w", err)
	}
	if doc.Metadata.Version != Version {
		return nil, fmt.Errorf("%w: %q (want %q)", ErrUnsupportedVersion, doc.Metadata.Version, Version)
	}
	return &doc, nil
}

// Load reads and parses a .gpart file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gpart file %s: %w", path, err)
	}
	doc, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Sections returns the top-level keys of a document in the order they appear
// in the file.
func Sections(data []byte) ([]string, error) {
	o := orderedmap.New()
	if err := json.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("failed to read .gpart sections: %w", err)
	}
	return o.Keys(), nil
}
