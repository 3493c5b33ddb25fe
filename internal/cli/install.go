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
)

// InstallCmd creates the install command
func InstallCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the plugin for a user",
		Long: `Install copies the plugin bundle into the shared plugins directory and
creates the user's plugin, module and settings rows in one transaction.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}

			result, err := manager.Install(cmd.Context(), userID)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s installed for user %s\n",
				styled(okStyle, "✓"), result.Name, userID)
			fmt.Printf("  plugin id: %s\n", result.PluginID)
			fmt.Printf("  modules:   %d\n", len(result.ModulesCreated))
			fmt.Printf("  settings:  %d\n", len(result.SettingsCreated))
			fmt.Printf("  files:     %d copied to %s\n", len(result.FilesCopied), result.SharedPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User to install the plugin for")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
