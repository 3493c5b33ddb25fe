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

// UninstallCmd creates the uninstall command
func UninstallCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Uninstall the plugin for a user",
		Long: `Uninstall removes the user's module and plugin rows in one transaction.
Shared plugin files and settings rows are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}

			result, err := manager.Uninstall(cmd.Context(), userID)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s removed for user %s (%d modules deleted)\n",
				styled(okStyle, "✓"), result.PluginID, userID, result.DeletedModules)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User to uninstall the plugin for")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
