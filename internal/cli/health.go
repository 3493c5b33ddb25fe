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

// HealthCmd creates the health command
func HealthCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Inspect the installed plugin files",
		Long: `Health reads the shared plugin directory and reports what it finds:
bundle presence and size, manifest parseability, and assets. It does not
touch the database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}

			report := manager.Health(userID)
			if !report.Healthy {
				fmt.Printf("%s inspection failed: %s\n", styled(errStyle, "✗"), report.Error)
				return nil
			}

			fmt.Println(styled(titleStyle, manager.Descriptor().Name))
			fmt.Printf("  bundle:   %s (%d bytes)\n", checkMark(report.Details.BundleExists), report.Details.BundleSize)
			fmt.Printf("  manifest: %s\n", checkMark(report.Details.ManifestValid))
			fmt.Printf("  assets:   %s\n", checkMark(report.Details.AssetsPresent))
			fmt.Println(styled(dimStyle, "  path: "+manager.SharedPath()))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User whose installation to inspect")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func checkMark(ok bool) string {
	if ok {
		return styled(okStyle, "ok")
	}
	return styled(errStyle, "missing")
}
