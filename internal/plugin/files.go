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
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/utils"
)

// excludeNames are path components never copied into the shared
// directory: build artifacts, version-control metadata, OS metadata and
// byte-compiled caches.
var excludeNames = map[string]struct{}{
	"node_modules":      {},
	"package-lock.json": {},
	".git":              {},
	".gitignore":        {},
	"__pycache__":       {},
	".DS_Store":         {},
	"Thumbs.db":         {},
}

// excludeSuffixes are file name patterns never copied.
var excludeSuffixes = []string{".pyc"}

// shouldCopy reports whether a path relative to the source root belongs
// in the shared directory.
func shouldCopy(relPath string) bool {
	for _, part := range strings.Split(filepath.ToSlash(relPath), "/") {
		if _, excluded := excludeNames[part]; excluded {
			return false
		}
	}
	for _, suffix := range excludeSuffixes {
		if strings.HasSuffix(filepath.Base(relPath), suffix) {
			return false
		}
	}
	return true
}

// copyPluginFiles copies the plugin source tree into targetDir,
// skipping the exclusion denylist. Individual file failures are logged
// and skipped; the copy reports success if the walk itself completed.
// In update mode pre-existing target files are removed before being
// overwritten.
func (m *Manager) copyPluginFiles(targetDir string, update bool) ([]string, error) {
	var copied []string

	err := filepath.WalkDir(m.sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == m.sourceDir {
			return nil
		}

		relPath, err := filepath.Rel(m.sourceDir, path)
		if err != nil {
			return err
		}

		if !shouldCopy(relPath) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		targetPath := filepath.Join(targetDir, relPath)
		if d.IsDir() {
			if mkErr := utils.EnsureDir(targetPath); mkErr != nil {
				m.log.Warn("failed to create directory", "path", relPath, "error", mkErr)
			}
			return nil
		}

		if cpErr := utils.CopyFile(path, targetPath, update); cpErr != nil {
			m.log.Warn("failed to copy file", "path", relPath, "error", cpErr)
			return nil
		}
		copied = append(copied, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copy plugin files: %w", err)
	}

	m.log.Info("copied plugin files", "count", len(copied), "target", targetDir)
	return copied, nil
}
