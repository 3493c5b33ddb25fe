package store

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
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Queries holds the parameterized statements for the registry tables.
// It runs against either the database or an open transaction.
type Queries struct {
	db DBTX
}

// PluginRow is the per-user materialized copy of a plugin descriptor.
type PluginRow struct {
	ID              string
	Name            string
	Description     string
	Version         string
	Type            string
	Enabled         bool
	Icon            string
	Category        string
	Status          string
	Official        bool
	Author          string
	LastUpdated     string
	Compatibility   string
	Downloads       int64
	Scope           string
	BundleMethod    string
	BundleLocation  string
	IsLocal         bool
	LongDescription string
	ConfigFields    sql.NullString
	Messages        sql.NullString
	Dependencies    sql.NullString
	CreatedAt       string
	UpdatedAt       string
	UserID          string
	Slug            string
	SourceType      string
	SourceURL       string
	UpdateCheckURL  string
	LastUpdateCheck sql.NullString
	UpdateAvailable bool
	LatestVersion   sql.NullString
	InstallType     string
	Permissions     string
}

// ModuleRow is the per-user materialized copy of a module descriptor.
// The JSON columns hold serialized maps and lists.
type ModuleRow struct {
	ID               string
	PluginID         string
	Name             string
	DisplayName      string
	Description      string
	Icon             string
	Category         string
	Enabled          bool
	Priority         int
	Props            string
	ConfigFields     string
	Messages         string
	RequiredServices string
	Dependencies     string
	Layout           string
	Tags             string
	CreatedAt        string
	UpdatedAt        string
	UserID           string
}

// SettingsDefinitionRow is the global schema row for one settings value.
type SettingsDefinitionRow struct {
	ID            string
	Name          string
	Description   string
	Category      string
	Type          string
	DefaultValue  string
	AllowedScopes string
	Validation    sql.NullString
	IsMultiple    bool
	Tags          string
	CreatedAt     string
	UpdatedAt     string
}

// SettingsInstanceRow is one user's concrete value for a definition.
type SettingsInstanceRow struct {
	ID           string
	DefinitionID string
	Name         string
	Value        string
	Scope        string
	UserID       string
	PageID       sql.NullString
	CreatedAt    string
	UpdatedAt    string
}

// PluginConfig holds the user-mutable JSON columns of a plugin row.
type PluginConfig struct {
	ConfigFields sql.NullString
	Messages     sql.NullString
	Dependencies sql.NullString
}

// ModuleConfig holds the user-mutable JSON columns of a module row.
type ModuleConfig struct {
	Name         string
	Props        sql.NullString
	ConfigFields sql.NullString
	Messages     sql.NullString
	Layout       sql.NullString
}

// GetPluginID returns the plugin row id for (user, slug), or "" with
// found=false when the plugin is not installed for that user.
func (q *Queries) GetPluginID(ctx context.Context, userID, slug string) (string, bool, error) {
	var id string
	err := q.db.QueryRowContext(ctx,
		`SELECT id FROM plugin WHERE user_id = ? AND plugin_slug = ?`,
		userID, slug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("check existing plugin: %w", err)
	}
	return id, true, nil
}

// GetPluginVersion returns the installed version for (user, slug).
func (q *Queries) GetPluginVersion(ctx context.Context, userID, slug string) (string, error) {
	var version string
	err := q.db.QueryRowContext(ctx,
		`SELECT version FROM plugin WHERE user_id = ? AND plugin_slug = ?`,
		userID, slug).Scan(&version)
	if err != nil {
		return "", fmt.Errorf("read plugin version: %w", err)
	}
	return version, nil
}

// InsertPlugin inserts one per-user plugin row.
func (q *Queries) InsertPlugin(ctx context.Context, row PluginRow) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO plugin
		(id, name, description, version, type, enabled, icon, category, status,
		 official, author, last_updated, compatibility, downloads, scope,
		 bundle_method, bundle_location, is_local, long_description,
		 config_fields, messages, dependencies, created_at, updated_at, user_id, plugin_slug,
		 source_type, source_url, update_check_url, last_update_check, update_available,
		 latest_version, installation_type, permissions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.Name, row.Description, row.Version, row.Type, row.Enabled,
		row.Icon, row.Category, row.Status, row.Official, row.Author,
		row.LastUpdated, row.Compatibility, row.Downloads, row.Scope,
		row.BundleMethod, row.BundleLocation, row.IsLocal, row.LongDescription,
		row.ConfigFields, row.Messages, row.Dependencies,
		row.CreatedAt, row.UpdatedAt, row.UserID, row.Slug,
		row.SourceType, row.SourceURL, row.UpdateCheckURL, row.LastUpdateCheck,
		row.UpdateAvailable, row.LatestVersion, row.InstallType, row.Permissions)
	if err != nil {
		return fmt.Errorf("insert plugin row: %w", err)
	}
	return nil
}

// InsertModule inserts one per-user module row.
func (q *Queries) InsertModule(ctx context.Context, row ModuleRow) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO module
		(id, plugin_id, name, display_name, description, icon, category,
		 enabled, priority, props, config_fields, messages, required_services,
		 dependencies, layout, tags, created_at, updated_at, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.PluginID, row.Name, row.DisplayName, row.Description,
		row.Icon, row.Category, row.Enabled, row.Priority, row.Props,
		row.ConfigFields, row.Messages, row.RequiredServices, row.Dependencies,
		row.Layout, row.Tags, row.CreatedAt, row.UpdatedAt, row.UserID)
	if err != nil {
		return fmt.Errorf("insert module row: %w", err)
	}
	return nil
}

// DeleteModules removes all module rows for (user, plugin) and reports
// how many were deleted. Modules are deleted before the plugin row;
// no cascade is assumed at the schema level.
func (q *Queries) DeleteModules(ctx context.Context, userID, pluginID string) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`DELETE FROM module WHERE user_id = ? AND plugin_id = ?`,
		userID, pluginID)
	if err != nil {
		return 0, fmt.Errorf("delete module rows: %w", err)
	}
	return res.RowsAffected()
}

// DeletePlugin removes the plugin row for (user, id).
func (q *Queries) DeletePlugin(ctx context.Context, userID, pluginID string) error {
	if _, err := q.db.ExecContext(ctx,
		`DELETE FROM plugin WHERE user_id = ? AND id = ?`,
		userID, pluginID); err != nil {
		return fmt.Errorf("delete plugin row: %w", err)
	}
	return nil
}

// SettingsDefinitionExists reports whether a definition row exists.
func (q *Queries) SettingsDefinitionExists(ctx context.Context, id string) (bool, error) {
	var found string
	err := q.db.QueryRowContext(ctx,
		`SELECT id FROM settings_definitions WHERE id = ?`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check settings definition: %w", err)
	}
	return true, nil
}

// InsertSettingsDefinition inserts one global settings definition row.
func (q *Queries) InsertSettingsDefinition(ctx context.Context, row SettingsDefinitionRow) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO settings_definitions
		(id, name, description, category, type, default_value, allowed_scopes,
		 validation, is_multiple, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.Name, row.Description, row.Category, row.Type,
		row.DefaultValue, row.AllowedScopes, row.Validation, row.IsMultiple,
		row.Tags, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert settings definition: %w", err)
	}
	return nil
}

// SettingsInstanceExists reports whether the user already has an
// instance for (definition, scope).
func (q *Queries) SettingsInstanceExists(ctx context.Context, definitionID, userID, scope string) (bool, error) {
	var found string
	err := q.db.QueryRowContext(ctx,
		`SELECT id FROM settings_instances WHERE definition_id = ? AND user_id = ? AND scope = ?`,
		definitionID, userID, scope).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check settings instance: %w", err)
	}
	return true, nil
}

// InsertSettingsInstance inserts one per-user settings instance row.
func (q *Queries) InsertSettingsInstance(ctx context.Context, row SettingsInstanceRow) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO settings_instances
		(id, definition_id, name, value, scope, user_id, page_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.DefinitionID, row.Name, row.Value, row.Scope,
		row.UserID, row.PageID, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert settings instance: %w", err)
	}
	return nil
}

// GetPluginConfig reads the user-mutable JSON columns of a plugin row.
func (q *Queries) GetPluginConfig(ctx context.Context, userID, slug string) (*PluginConfig, error) {
	var cfg PluginConfig
	err := q.db.QueryRowContext(ctx,
		`SELECT config_fields, messages, dependencies FROM plugin
		 WHERE user_id = ? AND plugin_slug = ?`,
		userID, slug).Scan(&cfg.ConfigFields, &cfg.Messages, &cfg.Dependencies)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read plugin config: %w", err)
	}
	return &cfg, nil
}

// ListModuleConfigs reads the user-mutable JSON columns of all module
// rows belonging to (user, plugin).
func (q *Queries) ListModuleConfigs(ctx context.Context, userID, pluginID string) ([]ModuleConfig, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT name, props, config_fields, messages, layout FROM module
		 WHERE user_id = ? AND plugin_id = ?`,
		userID, pluginID)
	if err != nil {
		return nil, fmt.Errorf("read module configs: %w", err)
	}
	defer rows.Close()

	var configs []ModuleConfig
	for rows.Next() {
		var cfg ModuleConfig
		if err := rows.Scan(&cfg.Name, &cfg.Props, &cfg.ConfigFields, &cfg.Messages, &cfg.Layout); err != nil {
			return nil, fmt.Errorf("scan module config: %w", err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate module configs: %w", err)
	}
	return configs, nil
}

// UpdatePluginConfig writes the user-mutable JSON columns back onto a
// plugin row, keyed by the composite id.
func (q *Queries) UpdatePluginConfig(ctx context.Context, userID, pluginID, configFields, messages, dependencies string) error {
	if _, err := q.db.ExecContext(ctx,
		`UPDATE plugin SET config_fields = ?, messages = ?, dependencies = ?
		 WHERE user_id = ? AND id = ?`,
		configFields, messages, dependencies, userID, pluginID); err != nil {
		return fmt.Errorf("update plugin config: %w", err)
	}
	return nil
}

// UpdateModuleConfig writes the user-mutable JSON columns back onto a
// module row, keyed by the composite id.
func (q *Queries) UpdateModuleConfig(ctx context.Context, userID, moduleID, props, configFields, messages, layout string) error {
	if _, err := q.db.ExecContext(ctx,
		`UPDATE module SET props = ?, config_fields = ?, messages = ?, layout = ?
		 WHERE user_id = ? AND id = ?`,
		props, configFields, messages, layout, userID, moduleID); err != nil {
		return fmt.Errorf("update module config: %w", err)
	}
	return nil
}

// CountPlugins returns the number of plugin rows for (user, slug).
func (q *Queries) CountPlugins(ctx context.Context, userID, slug string) (int, error) {
	return q.count(ctx,
		`SELECT COUNT(*) FROM plugin WHERE user_id = ? AND plugin_slug = ?`,
		userID, slug)
}

// CountModules returns the number of module rows for (user, plugin).
func (q *Queries) CountModules(ctx context.Context, userID, pluginID string) (int, error) {
	return q.count(ctx,
		`SELECT COUNT(*) FROM module WHERE user_id = ? AND plugin_id = ?`,
		userID, pluginID)
}

// CountSettingsDefinitions returns the number of global definition rows.
func (q *Queries) CountSettingsDefinitions(ctx context.Context) (int, error) {
	return q.count(ctx, `SELECT COUNT(*) FROM settings_definitions`)
}

// CountSettingsInstances returns the number of instance rows for a user.
func (q *Queries) CountSettingsInstances(ctx context.Context, userID string) (int, error) {
	return q.count(ctx,
		`SELECT COUNT(*) FROM settings_instances WHERE user_id = ?`, userID)
}

func (q *Queries) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := q.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return n, nil
}
