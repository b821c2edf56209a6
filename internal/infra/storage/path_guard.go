// Package storage serves user-content images from a directory or bucket.
package storage

import (
	"path/filepath"
	"strings"

	domainerrors "localguide/internal/domain/errors"
)

const parentDir = ".."

// ResolvePath confines a caller-supplied relative path to baseDir.
// It returns the absolute file path and the slash-separated key relative to baseDir.
//
// The literal ".." check runs first and rejects without touching the filesystem.
// The Rel check afterwards catches anything that still escapes once the path is joined and cleaned.
func ResolvePath(baseDir, rawPath string) (absPath, key string, err error) {
	if rawPath == "" || strings.Contains(rawPath, parentDir) || strings.ContainsRune(rawPath, 0) {
		return "", "", domainerrors.ErrInvalidPath
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", "", domainerrors.ErrInvalidPath
	}

	candidate := filepath.Join(base, filepath.FromSlash(rawPath))

	rel, err := filepath.Rel(base, candidate)
	if err != nil || escapesBase(rel) {
		return "", "", domainerrors.ErrInvalidPath
	}

	return candidate, filepath.ToSlash(rel), nil
}

func escapesBase(rel string) bool {
	if rel == "." || rel == "" || filepath.IsAbs(rel) {
		return true
	}

	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if segment == parentDir {
			return true
		}
	}

	return strings.HasPrefix(rel, parentDir)
}
