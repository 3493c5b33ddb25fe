// Package cli implements the braindrive-plugin command line surface:
// one subcommand per lifecycle verb.
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
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/config"
	lifecycle "github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/plugin"
	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/store"
	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// RootCmd returns the root command
func RootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "braindrive-plugin",
		Short: "Lifecycle manager for the BrainDrive Settings plugin",
		Long: `braindrive-plugin installs, updates and removes the BrainDrive Settings
plugin for individual users: it copies the plugin bundle into the shared
plugins directory and maintains the plugin, module and settings rows in
the BrainDrive registry database.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(configFile); err != nil {
				return err
			}
			return bindOverrides(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.braindrive/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "registry database file")
	rootCmd.PersistentFlags().String("plugins-dir", "", "host plugins directory")
	rootCmd.PersistentFlags().String("source", "", "plugin source tree to install from")

	rootCmd.AddCommand(
		InstallCmd(),
		UninstallCmd(),
		StatusCmd(),
		UpdateCmd(),
		HealthCmd(),
		ValidateCmd(),
		CheckUpdateCmd(),
		DefinitionsCmd(),
	)

	return rootCmd
}

// bindOverrides lets the persistent flags override config file values.
func bindOverrides(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	if err := viper.BindPFlag("db", flags.Lookup("db")); err != nil {
		return err
	}
	if err := viper.BindPFlag("plugins_dir", flags.Lookup("plugins-dir")); err != nil {
		return err
	}
	return viper.BindPFlag("source", flags.Lookup("source"))
}

// newLogger builds the structured logger every command reports through.
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openManager opens the registry database and builds the lifecycle
// manager for the configured source tree. The store is registered for
// shutdown cleanup.
func openManager() (*lifecycle.Manager, error) {
	cfg := config.Load()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	utils.RegisterCloser(st)

	return lifecycle.New(st, lifecycle.Options{
		PluginsBaseDir: cfg.PluginsDir,
		SourceDir:      cfg.SourceDir,
		Logger:         newLogger(cfg),
	}), nil
}

// styled applies a lipgloss style only when stdout is a terminal.
func styled(style lipgloss.Style, s string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return s
	}
	return style.Render(s)
}
