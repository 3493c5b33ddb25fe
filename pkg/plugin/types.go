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
	"errors"
)

// Descriptor holds the static, versioned metadata for one plugin release.
// It is exposed verbatim to the host registry so it can render and wire
// the plugin at runtime.
type Descriptor struct {
	Name             string   `json:"name" yaml:"name"`
	Description      string   `json:"description" yaml:"description"`
	Version          string   `json:"version" yaml:"version"`
	Type             string   `json:"type" yaml:"type"`
	Icon             string   `json:"icon" yaml:"icon"`
	Category         string   `json:"category" yaml:"category"`
	Official         bool     `json:"official" yaml:"official"`
	Author           string   `json:"author" yaml:"author"`
	Compatibility    string   `json:"compatibility" yaml:"compatibility"`
	Scope            string   `json:"scope" yaml:"scope"`
	BundleMethod     string   `json:"bundle_method" yaml:"bundle_method"`
	BundleLocation   string   `json:"bundle_location" yaml:"bundle_location"`
	IsLocal          bool     `json:"is_local" yaml:"is_local"`
	LongDescription  string   `json:"long_description" yaml:"long_description"`
	Slug             string   `json:"plugin_slug" yaml:"plugin_slug"`
	SourceType       string   `json:"source_type" yaml:"source_type"`
	SourceURL        string   `json:"source_url" yaml:"source_url"`
	UpdateCheckURL   string   `json:"update_check_url" yaml:"update_check_url"`
	InstallationType string   `json:"installation_type" yaml:"installation_type"`
	Permissions      []string `json:"permissions" yaml:"permissions"`
}

// ServiceRequirement declares the methods a module needs from a named
// host service, and the minimum service version.
type ServiceRequirement struct {
	Methods []string `json:"methods" yaml:"methods"`
	Version string   `json:"version" yaml:"version"`
}

// Layout holds the grid constraints for a module on the host dashboard.
type Layout struct {
	MinWidth      int `json:"minWidth" yaml:"min_width"`
	MinHeight     int `json:"minHeight" yaml:"min_height"`
	DefaultWidth  int `json:"defaultWidth" yaml:"default_width"`
	DefaultHeight int `json:"defaultHeight" yaml:"default_height"`
}

// Messages lists the message topics a module sends and receives.
type Messages struct {
	Sends    []string `json:"sends" yaml:"sends"`
	Receives []string `json:"receives" yaml:"receives"`
}

// ModuleDescriptor describes one UI component within a plugin.
type ModuleDescriptor struct {
	Name             string                        `json:"name" yaml:"name"`
	DisplayName      string                        `json:"display_name" yaml:"display_name"`
	Description      string                        `json:"description" yaml:"description"`
	Icon             string                        `json:"icon" yaml:"icon"`
	Category         string                        `json:"category" yaml:"category"`
	Priority         int                           `json:"priority" yaml:"priority"`
	Props            map[string]any                `json:"props" yaml:"props"`
	ConfigFields     map[string]any                `json:"config_fields" yaml:"config_fields"`
	Messages         Messages                      `json:"messages" yaml:"messages"`
	RequiredServices map[string]ServiceRequirement `json:"required_services" yaml:"required_services"`
	Dependencies     []string                      `json:"dependencies" yaml:"dependencies"`
	Layout           Layout                        `json:"layout" yaml:"layout"`
	Tags             []string                      `json:"tags" yaml:"tags"`
}

// Scope identifies the level a settings value applies at.
type Scope string

const (
	ScopeSystem   Scope = "system"
	ScopeUser     Scope = "user"
	ScopePage     Scope = "page"
	ScopeUserPage Scope = "user_page"
)

// SettingsDefinition is the shared schema for one named configuration
// value. Definitions are global: created once on the first install of
// any user and never deleted by the lifecycle manager.
type SettingsDefinition struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Description   string `json:"description" yaml:"description"`
	Category      string `json:"category" yaml:"category"`
	Type          string `json:"type" yaml:"type"`
	DefaultValue  string `json:"default_value" yaml:"default_value"`   // JSON-encoded
	AllowedScopes string `json:"allowed_scopes" yaml:"allowed_scopes"` // JSON-encoded array of Scope
	Validation    string `json:"validation,omitempty" yaml:"validation,omitempty"`
	IsMultiple    bool   `json:"is_multiple" yaml:"is_multiple"`
	Tags          string `json:"tags" yaml:"tags"` // JSON-encoded array
}

// InstallResult reports what a successful install created.
type InstallResult struct {
	PluginID        string   `json:"plugin_id"`
	Slug            string   `json:"plugin_slug"`
	Name            string   `json:"plugin_name"`
	ModulesCreated  []string `json:"modules_created"`
	SettingsCreated []string `json:"settings_created"`
	SharedPath      string   `json:"shared_path"`
	FilesCopied     []string `json:"files_copied"`
}

// UninstallResult reports what a successful uninstall removed.
type UninstallResult struct {
	PluginID       string `json:"plugin_id"`
	DeletedModules int64  `json:"deleted_modules"`
}

// Status is the result of a read-only installation check.
type Status struct {
	Installed bool   `json:"installed"`
	PluginID  string `json:"plugin_id,omitempty"`
	Slug      string `json:"plugin_slug,omitempty"`
	Name      string `json:"plugin_name,omitempty"`
	Version   string `json:"version,omitempty"`
}

// HealthDetails carries the individual file-level observations of a
// health check. Callers must inspect these to assess functional
// correctness; Healthy only means the inspection itself completed.
type HealthDetails struct {
	BundleExists  bool  `json:"bundle_exists"`
	BundleSize    int64 `json:"bundle_size"`
	ManifestValid bool  `json:"package_json_valid"`
	AssetsPresent bool  `json:"assets_present"`
}

// HealthReport is the result of a read-only filesystem inspection of
// the shared plugin directory.
type HealthReport struct {
	Healthy bool          `json:"healthy"`
	Details HealthDetails `json:"details"`
	Error   string        `json:"error,omitempty"`
}

// UpdateCheck reports whether a newer release is available upstream.
type UpdateCheck struct {
	CurrentVersion  string `json:"current_version"`
	LatestVersion   string `json:"latest_version"`
	UpdateAvailable bool   `json:"update_available"`
}

// Precondition violations are reported as sentinel errors so callers
// can distinguish them from I/O and database failures.
var (
	ErrAlreadyInstalled = errors.New("plugin already installed for user")
	ErrNotInstalled     = errors.New("plugin not installed for user")
)
