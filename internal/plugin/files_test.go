package plugin

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

func TestShouldCopy(t *testing.T) {
	tests := []struct {
		name    string
		relPath string
		want    bool
	}{
		{"regular source file", "src/index.tsx", true},
		{"bundle", "dist/remoteEntry.js", true},
		{"manifest", "package.json", true},
		{"nested asset", "assets/icons/gear.svg", true},
		{"node_modules root", "node_modules", false},
		{"inside node_modules", "node_modules/react/index.js", false},
		{"lockfile", "package-lock.json", false},
		{"git dir", ".git/config", false},
		{"gitignore", ".gitignore", false},
		{"pycache", "__pycache__/mod.cpython-311.pyc", false},
		{"pyc outside pycache", "scripts/build.pyc", false},
		{"ds_store", "assets/.DS_Store", false},
		{"thumbs", "Thumbs.db", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldCopy(filepath.FromSlash(tt.relPath)))
		})
	}
}

func TestCopyPluginFiles(t *testing.T) {
	manager, _ := newTestManager(t)

	t.Run("Initial Copy", func(t *testing.T) {
		target := t.TempDir()
		copied, err := manager.copyPluginFiles(target, false)
		require.NoError(t, err)
		assert.NotEmpty(t, copied)

		assert.FileExists(t, filepath.Join(target, "package.json"))
		assert.FileExists(t, filepath.Join(target, "dist", "remoteEntry.js"))
		assert.NoDirExists(t, filepath.Join(target, "node_modules"))
		assert.NoDirExists(t, filepath.Join(target, ".git"))
	})

	t.Run("Update Copy Overwrites Stale Files", func(t *testing.T) {
		target := t.TempDir()
		_, err := manager.copyPluginFiles(target, false)
		require.NoError(t, err)

		stale := filepath.Join(target, "package.json")
		require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))

		_, err = manager.copyPluginFiles(target, true)
		require.NoError(t, err)

		data, err := os.ReadFile(stale)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "braindrive-settings", "version": "1.0.3"}`, string(data))
	})

	t.Run("Copied List Is Relative", func(t *testing.T) {
		target := t.TempDir()
		copied, err := manager.copyPluginFiles(target, false)
		require.NoError(t, err)

		assert.Contains(t, copied, filepath.FromSlash("dist/remoteEntry.js"))
		for _, rel := range copied {
			assert.False(t, filepath.IsAbs(rel))
		}
	})
}
