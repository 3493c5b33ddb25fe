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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/utils"
	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/pkg/plugin"
)

// requiredFiles must exist in the shared directory for the installation
// to be considered valid.
var requiredFiles = []string{"package.json", "dist/remoteEntry.js"}

// packageManifest is the subset of package.json validation cares about.
type packageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Health inspects the shared plugin directory for one user. Healthy
// means the inspection itself completed; callers must read Details to
// judge whether the installation is functionally correct.
func (m *Manager) Health(userID string) *plugin.HealthReport {
	details := plugin.HealthDetails{}

	bundlePath := filepath.Join(m.shared, filepath.FromSlash(m.desc.BundleLocation))
	if info, err := os.Stat(bundlePath); err == nil {
		details.BundleExists = true
		details.BundleSize = info.Size()
	} else if !os.IsNotExist(err) {
		m.log.Error("health check failed", "user", userID, "error", err)
		return &plugin.HealthReport{Healthy: false, Error: err.Error()}
	}

	manifestPath := filepath.Join(m.shared, "package.json")
	if data, err := os.ReadFile(manifestPath); err == nil {
		details.ManifestValid = json.Valid(data)
	} else if !os.IsNotExist(err) {
		m.log.Error("health check failed", "user", userID, "error", err)
		return &plugin.HealthReport{Healthy: false, Error: err.Error()}
	}

	details.AssetsPresent = utils.DirNonEmpty(filepath.Join(m.shared, "src"))

	m.log.Info("health check completed", "user", userID)
	return &plugin.HealthReport{Healthy: true, Details: details}
}

// Validate checks the shared directory holds a usable installation:
// the required files exist, the manifest parses with its required
// fields, and the bundle is non-empty. The first failing condition is
// returned, naming the offending path.
func (m *Manager) Validate(userID string) error {
	var missing []string
	for _, rel := range requiredFiles {
		if !utils.FileExists(filepath.Join(m.shared, filepath.FromSlash(rel))) {
			missing = append(missing, rel)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required files: %s", strings.Join(missing, ", "))
	}

	data, err := utils.SafeReadFile(filepath.Join(m.shared, "package.json"))
	if err != nil {
		return fmt.Errorf("invalid or missing package.json: %w", err)
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("invalid or missing package.json: %w", err)
	}
	if manifest.Name == "" {
		return fmt.Errorf("package.json missing required field: name")
	}
	if manifest.Version == "" {
		return fmt.Errorf("package.json missing required field: version")
	}

	bundlePath := filepath.Join(m.shared, filepath.FromSlash(m.desc.BundleLocation))
	info, err := os.Stat(bundlePath)
	if err != nil {
		return fmt.Errorf("stat bundle: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("bundle file (%s) is empty", m.desc.BundleLocation)
	}

	m.log.Info("installation validation passed", "user", userID)
	return nil
}
