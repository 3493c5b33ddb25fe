package cli

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

	"github.com/spf13/cobra"

	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/config"
	lifecycle "github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/plugin"
	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/store"
	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/utils"
)

// UpdateCmd creates the update command
func UpdateCmd() *cobra.Command {
	var (
		userID       string
		targetSource string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the plugin to a new release for a user",
		Long: `Update exports the user's plugin and module configuration, uninstalls the
current release, installs the release found at --target-source, and
re-applies the exported configuration onto the new rows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			st, err := store.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			utils.RegisterCloser(st)

			log := newLogger(cfg)
			current := lifecycle.New(st, lifecycle.Options{
				PluginsBaseDir: cfg.PluginsDir,
				SourceDir:      cfg.SourceDir,
				Logger:         log,
			})
			target := lifecycle.New(st, lifecycle.Options{
				PluginsBaseDir: cfg.PluginsDir,
				SourceDir:      targetSource,
				Logger:         log,
			})

			result, err := current.Update(cmd.Context(), userID, target)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s updated for user %s\n",
				styled(okStyle, "✓"), result.Name, userID)
			fmt.Printf("  plugin id: %s\n", result.PluginID)
			fmt.Printf("  files:     %d copied to %s\n", len(result.FilesCopied), result.SharedPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User to update the plugin for")
	cmd.Flags().StringVar(&targetSource, "target-source", "", "Source tree of the release to install")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("target-source")

	return cmd
}
