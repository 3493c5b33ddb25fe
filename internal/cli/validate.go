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

// ValidateCmd creates the validate command
func ValidateCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the installed plugin files",
		Long: `Validate checks that the required files exist, the manifest parses with
its required fields, and the bundle is non-empty. The first failing
condition is reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}

			if err := manager.Validate(userID); err != nil {
				fmt.Printf("%s %v\n", styled(errStyle, "✗"), err)
				return err
			}

			fmt.Printf("%s installation is valid\n", styled(okStyle, "✓"))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User whose installation to validate")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
