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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)

	// Idempotent.
	require.NoError(t, EnsureDir(dir))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")

	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))
	assert.True(t, FileExists(dir), "directories count as existing")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "f.txt")
	require.NoError(t, WriteFile(path, []byte("content")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	t.Run("Into Missing Directory", func(t *testing.T) {
		dst := filepath.Join(dir, "sub", "dst.txt")
		require.NoError(t, CopyFile(src, dst, false))

		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
	})

	t.Run("Overwrite Existing", func(t *testing.T) {
		dst := filepath.Join(dir, "dst.txt")
		require.NoError(t, os.WriteFile(dst, []byte("old"), 0644))
		require.NoError(t, CopyFile(src, dst, true))

		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
	})

	t.Run("Missing Source", func(t *testing.T) {
		err := CopyFile(filepath.Join(dir, "absent.txt"), filepath.Join(dir, "out.txt"), false)
		assert.Error(t, err)
	})
}

func TestSafeReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	data, err := SafeReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	_, err = SafeReadFile(dir)
	assert.Error(t, err, "directories are rejected")

	_, err = SafeReadFile(filepath.Join(dir, "absent.json"))
	assert.Error(t, err)
}

func TestDirNonEmpty(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, DirNonEmpty(dir))
	assert.False(t, DirNonEmpty(filepath.Join(dir, "absent")))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0644))
	assert.True(t, DirNonEmpty(dir))
}
