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

// CheckUpdateCmd creates the check-update command
func CheckUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-update",
		Short: "Check upstream for a newer plugin release",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}

			check, err := manager.CheckForUpdate(cmd.Context())
			if err != nil {
				return err
			}

			if check.UpdateAvailable {
				fmt.Printf("%s update available: %s -> %s\n",
					styled(warnStyle, "•"), check.CurrentVersion, check.LatestVersion)
			} else {
				fmt.Printf("%s up to date (%s)\n",
					styled(okStyle, "✓"), check.CurrentVersion)
			}
			return nil
		},
	}

	return cmd
}
