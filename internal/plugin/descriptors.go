package plugin

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
	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/pkg/plugin"
)

// releaseDate is the publication date of this plugin version, recorded
// on the plugin row as last_updated.
const releaseDate = "2025-03-06"

var settingsServiceMethods = []string{
	"getSetting", "setSetting", "registerSettingDefinition",
	"getSettingDefinitions", "subscribe", "subscribeToCategory",
}

// settingsDescriptor is the static metadata for the BrainDriveSettings
// plugin release this manager handles.
var settingsDescriptor = plugin.Descriptor{
	Name:             "BrainDrive Settings",
	Description:      "Basic BrainDrive Settings Plugin",
	Version:          "1.0.3",
	Type:             "frontend",
	Icon:             "Dashboard",
	Category:         "Utilities",
	Official:         true,
	Author:           "BrainDrive Team",
	Compatibility:    "1.0.0",
	Scope:            "BrainDriveSettings",
	BundleMethod:     "webpack",
	BundleLocation:   "dist/remoteEntry.js",
	IsLocal:          false,
	LongDescription:  "Comprehensive settings management for BrainDrive including theme settings, general configuration, and Ollama server management.",
	Slug:             "BrainDriveSettings",
	SourceType:       "remote",
	SourceURL:        "https://github.com/DJJones66/BrainDriveSettings",
	UpdateCheckURL:   "https://api.github.com/repos/DJJones66/BrainDriveSettings/releases/latest",
	InstallationType: "remote",
	Permissions:      []string{"storage.read", "storage.write", "api.access", "settings.manage"},
}

// settingsModules are the three UI components this plugin ships.
var settingsModules = []plugin.ModuleDescriptor{
	{
		Name:         "ComponentTheme",
		DisplayName:  "Theme Settings",
		Description:  "Change application theme",
		Icon:         "DarkMode",
		Category:     "Settings",
		Priority:     1,
		Props:        map[string]any{},
		ConfigFields: map[string]any{},
		Messages:     plugin.Messages{Sends: []string{}, Receives: []string{}},
		RequiredServices: map[string]plugin.ServiceRequirement{
			"theme": {
				Methods: []string{"getCurrentTheme", "setTheme", "toggleTheme", "addThemeChangeListener", "removeThemeChangeListener"},
				Version: "1.0.0",
			},
			"settings": {
				Methods: settingsServiceMethods,
				Version: "1.0.0",
			},
		},
		Dependencies: []string{},
		Layout:       plugin.Layout{MinWidth: 6, MinHeight: 1, DefaultWidth: 12, DefaultHeight: 1},
		Tags:         []string{"Settings", "Theme Settings"},
	},
	{
		Name:         "ComponentGeneralSettings",
		DisplayName:  "General Settings",
		Description:  "Manage general application settings",
		Icon:         "Settings",
		Category:     "Settings",
		Priority:     1,
		Props:        map[string]any{},
		ConfigFields: map[string]any{},
		Messages:     plugin.Messages{Sends: []string{}, Receives: []string{}},
		RequiredServices: map[string]plugin.ServiceRequirement{
			"api": {
				Methods: []string{"get", "post"},
				Version: "1.0.0",
			},
			"theme": {
				Methods: []string{"getCurrentTheme", "addThemeChangeListener", "removeThemeChangeListener"},
				Version: "1.0.0",
			},
			"settings": {
				Methods: settingsServiceMethods,
				Version: "1.0.0",
			},
		},
		Dependencies: []string{},
		Layout:       plugin.Layout{MinWidth: 6, MinHeight: 1, DefaultWidth: 12, DefaultHeight: 1},
		Tags:         []string{"Settings", "General Settings"},
	},
	{
		Name:         "ComponentOllamaServer",
		DisplayName:  "Ollama Servers",
		Description:  "Manage multiple Ollama server connections",
		Icon:         "Storage",
		Category:     "LLM Servers",
		Priority:     1,
		Props:        map[string]any{},
		ConfigFields: map[string]any{},
		Messages:     plugin.Messages{Sends: []string{}, Receives: []string{}},
		RequiredServices: map[string]plugin.ServiceRequirement{
			"api": {
				Methods: []string{"get", "post", "delete"},
				Version: "1.0.0",
			},
			"theme": {
				Methods: []string{"getCurrentTheme", "addThemeChangeListener", "removeThemeChangeListener"},
				Version: "1.0.0",
			},
			"settings": {
				Methods: settingsServiceMethods,
				Version: "1.0.0",
			},
		},
		Dependencies: []string{},
		Layout:       plugin.Layout{MinWidth: 6, MinHeight: 4, DefaultWidth: 8, DefaultHeight: 5},
		Tags:         []string{"Settings", "Ollama Server Settings", "Multiple Servers"},
	},
}

// settingsDefinitions are the global settings schemas this plugin
// requires. The default values must match the host database exactly.
var settingsDefinitions = []plugin.SettingsDefinition{
	{
		ID:            "theme_settings",
		Name:          "Theme Settings",
		Description:   "Auto-generated definition for Theme Settings",
		Category:      "auto_generated",
		Type:          "object",
		DefaultValue:  `{"theme": "light", "useSystemTheme": false}`,
		AllowedScopes: `["system", "user", "page", "user_page"]`,
		IsMultiple:    false,
		Tags:          `["auto_generated"]`,
	},
	{
		ID:            "ollama_servers_settings",
		Name:          "Ollama Servers Settings",
		Description:   "Auto-generated definition for Ollama Servers Settings",
		Category:      "auto_generated",
		Type:          "object",
		DefaultValue:  `{"servers": [{"id": "server_1742054635336_5puc3mrll", "serverName": "New Server", "serverAddress": "http://localhost:11434", "apiKey": "", "connectionStatus": "idle"}]}`,
		AllowedScopes: `["system", "user", "page", "user_page"]`,
		IsMultiple:    false,
		Tags:          `["auto_generated"]`,
	},
	{
		ID:            "general_settings",
		Name:          "General Settings",
		Description:   "Auto-generated definition for General Settings",
		Category:      "auto_generated",
		Type:          "object",
		DefaultValue:  `{"settings":[{"Setting_Name":"default_page","Setting_Data":"Dashboard","Setting_Help":"This is the first page to be displayed after logging in to BrainDrive"}]}`,
		AllowedScopes: `["system", "user", "page", "user_page"]`,
		IsMultiple:    false,
		Tags:          `["auto_generated"]`,
	},
}
