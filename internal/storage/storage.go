// Package storage persists the inventory document and reads user config.
//
// Load and Save never panic. Failures are logged and also returned so that
// callers who care can tell a fresh start from a degraded one; callers who
// do not can ignore the error, since the snapshot is always usable.
package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/jacksmith/inv/internal/model"
	"go.uber.org/zap"
)

// DefaultDataFile is the inventory file used when none is configured.
const DefaultDataFile = "inventory.json"

// CorruptError indicates the data file exists but is not a valid document.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt inventory file %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// File is the JSON inventory document at a path.
type File struct {
	path string
	log  *zap.Logger
}

// Open returns a File for path. An empty path means DefaultDataFile.
// The file does not need to exist.
func Open(path string, log *zap.Logger) *File {
	if path == "" {
		path = DefaultDataFile
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &File{path: path, log: log}
}

// Init creates an empty inventory document at path.
// Returns error if the file already exists.
func Init(path string, log *zap.Logger) (*File, error) {
	f := Open(path, log)
	if f.Exists() {
		return nil, fmt.Errorf("inventory file %s already exists", f.path)
	}

	if err := f.Save(nil); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the document path.
func (f *File) Path() string {
	return f.path
}

// Exists reports whether the document is present on disk.
func (f *File) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// Load reads the document. The returned snapshot is never nil: a missing
// file (warning) or an unreadable or corrupt one (error) yields an empty
// snapshot together with the cause. Entries that are not non-negative
// integers are dropped with a warning and do not produce an error.
func (f *File) Load() (model.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.log.Warn("data file not found, starting fresh", zap.String("path", f.path))
		} else {
			f.log.Error("failed to read data file, starting fresh", zap.String("path", f.path), zap.Error(err))
		}
		return model.Snapshot{}, fmt.Errorf("failed to read inventory file %s: %w", f.path, err)
	}

	doc, err := model.Decode(data)
	if err != nil {
		f.log.Error("error decoding data file, starting fresh", zap.String("path", f.path), zap.Error(err))
		return model.Snapshot{}, &CorruptError{Path: f.path, Err: err}
	}

	for _, s := range doc.Skipped {
		f.log.Warn("skipping invalid entry",
			zap.String("path", f.path),
			zap.String("item", s.Name),
			zap.String("value", s.Value),
			zap.String("reason", s.Reason),
		)
	}

	if doc.Entries == nil {
		return model.Snapshot{}, nil
	}
	return doc.Entries, nil
}

// Save writes s to the document, replacing its contents.
func (f *File) Save(s model.Snapshot) error {
	if err := model.SaveInventory(f.path, s); err != nil {
		f.log.Error("error saving data", zap.String("path", f.path), zap.Error(err))
		return err
	}
	f.log.Info("inventory saved", zap.String("path", f.path), zap.Int("items", len(s)))
	return nil
}
