// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrSourceNotFound = errors.New("source file not found")
	ErrSourceIsDir    = errors.New("source is a directory")
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsRemote returns true for references that never name a local file:
// URLs, protocol-relative URLs and data URIs.
func IsRemote(s string) bool {
	return IsURL(s) ||
		strings.HasPrefix(s, "//") ||
		strings.HasPrefix(s, "data:")
}

// IsStale reports whether dst must be refreshed from src: dst is missing,
// or src was modified strictly after dst. It is a staleness check, not a
// content comparison.
func IsStale(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return false, fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return false, err
	}
	if srcInfo.IsDir() {
		return false, fmt.Errorf("%w: %s", ErrSourceIsDir, src)
	}

	dstInfo, err := os.Stat(dst)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}

	return srcInfo.ModTime().After(dstInfo.ModTime()), nil
}

// CopyIfNewer copies src to dst when dst is stale, creating missing parent
// directories. The copy keeps the source mode and modification time so a
// later run sees an up-to-date destination. Returns true if a copy happened.
func CopyIfNewer(src, dst string) (bool, error) {
	stale, err := IsStale(src, dst)
	if err != nil || !stale {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(dst), DirPermissions); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", dst, err)
	}

	if err := copyFile(src, dst); err != nil {
		return false, err
	}
	return true, nil
}

// copyFile copies content, mode and modification time from src to dst.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) // #nosec G304 -- path comes from the wiki page or options
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) // #nosec G304 -- destination under output root
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("setting mode on %s: %w", dst, err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("setting times on %s: %w", dst, err)
	}
	return nil
}

// WriteFileAtomic writes content to a temporary file in the destination
// directory, then renames it over path. Readers never observe a partially
// written file.
func WriteFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, FilePermissions); err != nil {
		cleanup()
		return fmt.Errorf("setting mode on temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// WriteFileIfChanged writes content to path unless the file already holds
// exactly that content. Parent directories are created as needed.
// Returns true if the file was written.
func WriteFileIfChanged(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path) // #nosec G304 -- path under output root
	if err == nil && string(existing) == string(content) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := WriteFileAtomic(path, content); err != nil {
		return false, err
	}
	return true, nil
}
