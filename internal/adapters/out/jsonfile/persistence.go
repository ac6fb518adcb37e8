package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Persistence abstracts reading and writing the state document.
// The file-backed implementation is used in production; tests substitute
// failing implementations to exercise degraded-mode behavior.
type Persistence interface {
	// Load reads the full document. A missing backing file is not an error
	// and yields an empty document.
	Load() (*Document, error)

	// Save writes the full document, replacing whatever was stored before.
	Save(doc *Document) error
}

// FilePersistence stores the document as a single JSON file.
// Saves write to a temporary file in the same directory and rename it over
// the target, so readers never observe a partially written document.
type FilePersistence struct {
	path string
}

// NewFilePersistence creates a file-backed persistence for the given path.
func NewFilePersistence(path string) *FilePersistence {
	return &FilePersistence{path: path}
}

// Load reads and decodes the document from disk.
// Returns an empty document when the file does not exist yet.
func (p *FilePersistence) Load() (*Document, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file %s: %w", p.path, err)
	}

	doc := NewDocument()
	if err = json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode state file %s: %w", p.path, err)
	}

	return doc, nil
}

// Save encodes the document and atomically replaces the state file.
func (p *FilePersistence) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state document: %w", err)
	}

	dir := filepath.Dir(p.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(p.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err = os.Rename(tmp.Name(), p.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace state file %s: %w", p.path, err)
	}

	return nil
}
