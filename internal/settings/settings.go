// Package settings merges computed workspace paths into an external tool's
// settings file (pyrightconfig.json or a YAML settings file). Updates are
// read-modify-write under a file lock so concurrent editor sessions do not
// clobber each other.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// ErrLockTimeout is returned when the settings file lock cannot be acquired.
var ErrLockTimeout = errors.New("timeout acquiring settings file lock")

// Format identifies the settings file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a configuration string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported settings format: %q", s)
	}
}

// Document is a settings file decoded into a generic map. Only the keys a
// mutator touches are interpreted; everything else round-trips untouched.
type Document struct {
	Path   string
	Format Format
	Data   map[string]interface{}
}

// File manages one settings file on disk.
type File struct {
	path        string
	format      Format
	lockTimeout time.Duration
}

// NewFile creates a File for the given path and encoding.
func NewFile(path string, format Format) *File {
	return &File{
		path:        path,
		format:      format,
		lockTimeout: 5 * time.Second,
	}
}

// Load reads the settings file. A missing file yields an empty document so
// the first sync can create it.
func (f *File) Load() (*Document, error) {
	doc := &Document{
		Path:   f.path,
		Format: f.format,
		Data:   make(map[string]interface{}),
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	if len(data) == 0 {
		return doc, nil
	}

	switch f.format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc.Data); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", f.path, err)
		}
	default:
		if err := json.Unmarshal(data, &doc.Data); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", f.path, err)
		}
	}
	if doc.Data == nil {
		doc.Data = make(map[string]interface{})
	}
	return doc, nil
}

// Update loads the document, applies the mutators in order, and writes the
// result back. The whole read-modify-write runs under an exclusive lock on
// the settings file itself; flock creates it when it does not exist yet.
func (f *File) Update(ctx context.Context, mutators ...Mutator) error {
	lock := flock.New(f.path)

	lockCtx, cancel := context.WithTimeout(ctx, f.lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire settings lock: %w", err)
	}
	if !locked {
		return ErrLockTimeout
	}
	defer func() { _ = lock.Unlock() }()

	doc, err := f.Load()
	if err != nil {
		return err
	}

	for _, mutate := range mutators {
		if err := mutate(doc); err != nil {
			return err
		}
	}

	return f.write(doc)
}

// write marshals the document and replaces the settings file atomically via
// a temp file in the same directory.
func (f *File) write(doc *Document) error {
	var data []byte
	var err error
	switch f.format {
	case FormatYAML:
		data, err = yaml.Marshal(doc.Data)
	default:
		data, err = json.MarshalIndent(doc.Data, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp settings file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}
