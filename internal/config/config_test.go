package config

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

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(
		"db: /tmp/registry.db\nplugins_dir: /tmp/plugins\nsource: /tmp/src\nlog_level: debug\n"), 0644))

	require.NoError(t, Init(file))

	cfg := Load()
	assert.Equal(t, "/tmp/registry.db", cfg.DBPath)
	assert.Equal(t, "/tmp/plugins", cfg.PluginsDir)
	assert.Equal(t, "/tmp/src", cfg.SourceDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestInitDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// Point HOME at an empty directory so no real config file is found.
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, Init(""))

	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".", cfg.SourceDir)
	assert.Contains(t, cfg.DBPath, ".braindrive")
	assert.Contains(t, cfg.PluginsDir, ".braindrive")
}

func TestEnvironmentOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("BRAINDRIVE_LOG_LEVEL", "error")

	require.NoError(t, Init(""))

	assert.Equal(t, "error", Load().LogLevel)
}
