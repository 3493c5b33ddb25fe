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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/pkg/plugin"
)

// ReleaseManifest is a plugin release description fetched from a
// remote update endpoint. YAML endpoints serve it directly; GitHub
// release endpoints are mapped onto it.
type ReleaseManifest struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	Repository  string `yaml:"repository"`
	BundleURL   string `yaml:"bundle_url"`
}

// githubRelease is the subset of the GitHub latest-release response the
// update check reads.
type githubRelease struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

var updateClient = &http.Client{Timeout: 30 * time.Second}

// CheckForUpdate fetches the descriptor's update-check URL and compares
// the advertised release against the managed version.
func (m *Manager) CheckForUpdate(ctx context.Context) (*plugin.UpdateCheck, error) {
	if m.desc.UpdateCheckURL == "" {
		return nil, fmt.Errorf("plugin has no update check URL")
	}

	manifest, err := fetchReleaseManifest(ctx, m.desc.UpdateCheckURL)
	if err != nil {
		return nil, err
	}

	latest := strings.TrimPrefix(manifest.Version, "v")
	check := &plugin.UpdateCheck{
		CurrentVersion:  m.desc.Version,
		LatestVersion:   latest,
		UpdateAvailable: latest != "" && latest != m.desc.Version,
	}

	m.log.Info("update check completed",
		"current", check.CurrentVersion, "latest", check.LatestVersion,
		"available", check.UpdateAvailable)
	return check, nil
}

// fetchReleaseManifest downloads and parses a release description. URLs
// ending in .yaml/.yml are parsed as release manifests; anything else
// is treated as a GitHub latest-release JSON endpoint.
func fetchReleaseManifest(ctx context.Context, url string) (*ReleaseManifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build update check request: %w", err)
	}

	resp, err := updateClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download release manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download release manifest: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read release manifest: %w", err)
	}

	if strings.HasSuffix(url, ".yaml") || strings.HasSuffix(url, ".yml") {
		var manifest ReleaseManifest
		if err := yaml.Unmarshal(body, &manifest); err != nil {
			return nil, fmt.Errorf("failed to parse release manifest: %w", err)
		}
		if manifest.Version == "" {
			return nil, fmt.Errorf("release manifest has no version")
		}
		return &manifest, nil
	}

	var release githubRelease
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("failed to parse release response: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("release response has no tag name")
	}
	return &ReleaseManifest{
		Name:       release.Name,
		Version:    release.TagName,
		Repository: release.HTMLURL,
	}, nil
}
