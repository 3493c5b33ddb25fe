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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReleaseManifest(t *testing.T) {
	t.Run("GitHub Release JSON", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"tag_name": "v1.2.0", "name": "BrainDriveSettings 1.2.0", "html_url": "https://github.com/DJJones66/BrainDriveSettings/releases/tag/v1.2.0"}`))
		}))
		defer srv.Close()

		manifest, err := fetchReleaseManifest(context.Background(), srv.URL+"/releases/latest")
		require.NoError(t, err)
		assert.Equal(t, "v1.2.0", manifest.Version)
		assert.Equal(t, "BrainDriveSettings 1.2.0", manifest.Name)
		assert.Contains(t, manifest.Repository, "releases/tag/v1.2.0")
	})

	t.Run("YAML Manifest", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("name: BrainDriveSettings\nversion: 1.1.0\nbundle_url: https://example.com/remoteEntry.js\n"))
		}))
		defer srv.Close()

		manifest, err := fetchReleaseManifest(context.Background(), srv.URL+"/release.yaml")
		require.NoError(t, err)
		assert.Equal(t, "1.1.0", manifest.Version)
		assert.Equal(t, "https://example.com/remoteEntry.js", manifest.BundleURL)
	})

	t.Run("HTTP Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := fetchReleaseManifest(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 500")
	})

	t.Run("Release Without Tag", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"name": "draft"}`))
		}))
		defer srv.Close()

		_, err := fetchReleaseManifest(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tag name")
	})

	t.Run("YAML Without Version", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("name: BrainDriveSettings\n"))
		}))
		defer srv.Close()

		_, err := fetchReleaseManifest(context.Background(), srv.URL+"/release.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no version")
	})
}
