// Package highscore persists the best winning score between runs.
//
// The game only needs one integer, but storage is exposed as a small
// key-value capability so the game does not depend on where the value lives.
package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Key is the storage key the highscore is kept under.
const Key = "lifefutures.highscore"

// Store is a key-value store of integers.
// Get reports false when the key has no usable value.
type Store interface {
	Get(key string) (int, bool)
	Set(key string, value int) error
}

// MemoryStore keeps values for the lifetime of the process only.
type MemoryStore struct {
	values map[string]int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// Get returns the value for key
func (m *MemoryStore) Get(key string) (int, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key
func (m *MemoryStore) Set(key string, value int) error {
	m.values[key] = value
	return nil
}

// FileStore keeps values in a YAML document mapping keys to base-10 strings.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path. The file is
// created on the first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (f *FileStore) Path() string {
	return f.path
}

// load reads the document. A missing or malformed file yields an empty map.
func (f *FileStore) load() map[string]string {
	values := make(map[string]string)
	data, err := os.ReadFile(f.path)
	if err != nil {
		return values
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return make(map[string]string)
	}
	return values
}

// Get returns the value for key. Unreadable files and non-integer values read as missing.
func (f *FileStore) Get(key string) (int, bool) {
	raw, ok := f.load()[key]
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Set stores value under key, keeping other keys in the document.
func (f *FileStore) Set(key string, value int) error {
	values := f.load()
	values[key] = strconv.Itoa(value)

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}
