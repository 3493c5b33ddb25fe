// Package config resolves the lifecycle manager's runtime settings
// from flags, environment and the BrainDrive config file.
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

	"github.com/spf13/viper"

	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/utils"
)

// Config holds the resolved runtime settings.
type Config struct {
	// DBPath is the SQLite registry database file.
	DBPath string

	// PluginsDir is the host plugins directory; shared plugin files live
	// under PluginsDir/shared/<slug>/v<version>.
	PluginsDir string

	// SourceDir is the plugin source tree copied on install.
	SourceDir string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Init wires viper to the config file and environment. When configFile
// is empty the default search path $HOME/.braindrive/config.yaml is
// used, creating the directory if needed.
func Init(configFile string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		baseDir := filepath.Join(home, ".braindrive")
		if err := utils.EnsureDir(baseDir); err != nil {
			return err
		}

		viper.AddConfigPath(baseDir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		viper.SetDefault("db", filepath.Join(baseDir, "braindrive.db"))
		viper.SetDefault("plugins_dir", filepath.Join(baseDir, "plugins"))
	}

	viper.SetDefault("source", ".")
	viper.SetDefault("log_level", "info")

	viper.SetEnvPrefix("braindrive")
	viper.AutomaticEnv()

	// Read config if it exists
	_ = viper.ReadInConfig()

	return nil
}

// Load returns the settings resolved by viper.
func Load() *Config {
	return &Config{
		DBPath:     viper.GetString("db"),
		PluginsDir: viper.GetString("plugins_dir"),
		SourceDir:  viper.GetString("source"),
		LogLevel:   viper.GetString("log_level"),
	}
}
