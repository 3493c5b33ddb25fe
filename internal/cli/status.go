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

// StatusCmd creates the status command
func StatusCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the plugin is installed for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}

			status, err := manager.Status(cmd.Context(), userID)
			if err != nil {
				return err
			}

			if !status.Installed {
				fmt.Printf("%s not installed for user %s\n",
					styled(warnStyle, "•"), userID)
				return nil
			}

			fmt.Println(styled(titleStyle, status.Name))
			fmt.Printf("  installed: %s\n", styled(okStyle, "yes"))
			fmt.Printf("  plugin id: %s\n", status.PluginID)
			fmt.Printf("  version:   %s\n", status.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User to check")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
