package kv

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store persisted as a single JSON document on disk.
// It is the Go analog of a browser's localStorage: a flat string-to-string
// map that survives process restarts. All operations read or rewrite the
// whole document, which is acceptable for the handful of keys this store
// is meant to hold.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed store at path. The parent directory is
// created if missing; the file itself is created lazily on first Set.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Join(ErrWriteStore, err)
	}
	return &File{path: path}, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (f *File) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return "", err
	}

	val, ok := data[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

// Set stores value under key and rewrites the document.
func (f *File) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}

	data[key] = value
	return f.save(data)
}

// Delete removes the given keys and rewrites the document.
// Missing keys are ignored.
func (f *File) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}

	changed := false
	for _, key := range keys {
		if _, ok := data[key]; ok {
			delete(data, key)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return f.save(data)
}

// load reads the whole document. A missing file yields an empty map.
// A corrupted document is treated as empty rather than fatal: the next
// write replaces it wholesale.
func (f *File) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, errors.Join(ErrReadStore, err)
	}

	data := make(map[string]string)
	if err := json.Unmarshal(raw, &data); err != nil {
		return make(map[string]string), nil
	}
	return data, nil
}

// save writes the document through a temp file and rename so readers never
// observe a partially written store.
func (f *File) save(data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return errors.Join(ErrWriteStore, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".kv-*")
	if err != nil {
		return errors.Join(ErrWriteStore, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Join(ErrWriteStore, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrWriteStore, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrWriteStore, err)
	}
	return nil
}
