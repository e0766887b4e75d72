// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ErrAlreadyClosed is returned when an AtomicFile is committed twice.
var ErrAlreadyClosed = errors.New("atomic file already closed")

// AtomicFile is a temporary file that replaces its target path on Commit.
// Until then the target is untouched; Abort discards the temporary file.
type AtomicFile struct {
	*os.File
	target string
	closed bool
}

// CreateAtomic creates a temporary file next to target.
// The temporary file lives in the same directory so the final rename never
// crosses a filesystem boundary.
func CreateAtomic(target string) (*AtomicFile, error) {
	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	return &AtomicFile{File: tmp, target: target}, nil
}

// Target returns the path the file is committed to.
func (f *AtomicFile) Target() string {
	return f.target
}

// Commit closes the temporary file and renames it onto the target path.
// On failure the temporary file is removed.
func (f *AtomicFile) Commit() error {
	if f.closed {
		return ErrAlreadyClosed
	}
	f.closed = true

	tmpPath := f.Name()
	if err := f.File.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, f.target); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Abort closes and removes the temporary file. It is a no-op after Commit,
// so it is safe to defer right after CreateAtomic.
func (f *AtomicFile) Abort() {
	if f.closed {
		return
	}
	f.closed = true
	_ = f.File.Close()
	_ = os.Remove(f.Name())
}

// EnsureDir creates dir and any missing parents. The returned undo removes
// the directories it created, deepest first, as long as they are empty again;
// call it when the work that needed the directory failed.
func EnsureDir(dir string) (undo func(), err error) {
	var created []string
	for d := filepath.Clean(dir); ; d = filepath.Dir(d) {
		if _, err := os.Stat(d); err == nil {
			break
		}
		created = append(created, d)
		if parent := filepath.Dir(d); parent == d {
			break
		}
	}

	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return func() {}, err
	}
	return func() {
		for _, d := range created {
			_ = os.Remove(d)
		}
	}, nil
}

// SamePath reports whether a and b name the same file: equal once made
// absolute and cleaned, or, when both exist, the same file on disk
// (symlinks and hard links included).
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}

	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "work" -> false (name)
//   - "./md2html.yaml" -> true (relative path)
//   - "/etc/md2html.toml" -> true (absolute)
//   - "C:\config\md2html.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SwapSuffix replaces a trailing oldSuffix with newSuffix.
// Paths without oldSuffix get newSuffix appended.
func SwapSuffix(path, oldSuffix, newSuffix string) string {
	return strings.TrimSuffix(path, oldSuffix) + newSuffix
}
