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
	"gopkg.in/yaml.v3"
)

// DefinitionsCmd creates the definitions command
func DefinitionsCmd() *cobra.Command {
	var showModules bool

	cmd := &cobra.Command{
		Use:   "definitions",
		Short: "Print the plugin's static metadata",
		Long: `Definitions prints the descriptors the host registry consumes: the
plugin metadata, its modules and the settings definitions it requires.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}

			desc := manager.Descriptor()
			fmt.Println(styled(titleStyle, fmt.Sprintf("%s v%s", desc.Name, desc.Version)))
			fmt.Println(styled(dimStyle, desc.Description))
			fmt.Println()

			out := map[string]any{
				"plugin":               desc,
				"settings_definitions": manager.SettingsDefinitions(),
			}
			if showModules {
				out["modules"] = manager.Modules()
			}

			data, err := yaml.Marshal(out)
			if err != nil {
				return fmt.Errorf("failed to marshal definitions: %w", err)
			}
			fmt.Print(string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showModules, "modules", false, "Include module descriptors")

	return cmd
}
