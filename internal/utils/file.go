package utils

// Copyright (C) 2025 BrainDrive Corp.
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; either version 2
// of the License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnsureDir creates a directory and any missing parents. Creating an
// existing directory is a no-op, so repeated installs of the same
// plugin version are idempotent at the filesystem level.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// FileExists reports whether path exists (file or directory).
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// WriteFile writes data to a file, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CopyFile copies src to dst, creating parent directories as needed.
// When overwrite is set an existing destination file is removed first;
// plain copies over a stale file are not merge-safe otherwise.
func CopyFile(src, dst string, overwrite bool) error {
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}

	if overwrite && FileExists(dst) {
		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("remove existing file: %w", err)
		}
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// SafeReadFile reads a file after validating the path to prevent directory traversal
func SafeReadFile(path string) ([]byte, error) {
	cleanPath := filepath.Clean(path)

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", absPath)
	}

	// #nosec G304 -- path has been validated above
	return os.ReadFile(absPath)
}

// DirNonEmpty reports whether dir exists and contains at least one entry.
func DirNonEmpty(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}
