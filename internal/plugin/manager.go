// Package plugin implements the lifecycle manager for the
// BrainDriveSettings plugin: per-user install, uninstall, status,
// update, health check and validation against the shared file store
// and the host registry database.
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
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/store"
	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/internal/utils"
	"github.com/BrainDriveAI/BrainDrive-Settings-Plugin/pkg/plugin"
)

// timeLayout is the timestamp format the host registry stores.
const timeLayout = "2006-01-02 15:04:05"

// Options configures a Manager.
type Options struct {
	// PluginsBaseDir is the host plugins directory. Shared plugin files
	// live under PluginsBaseDir/shared/<slug>/v<version>.
	PluginsBaseDir string

	// SourceDir is the plugin source tree copied on install.
	SourceDir string

	Logger *slog.Logger
}

// Manager is the lifecycle manager for one release of the
// BrainDriveSettings plugin. The database transaction boundary is the
// only concurrency control: callers are expected to serialize lifecycle
// calls for the same (plugin, user) pair.
type Manager struct {
	desc    plugin.Descriptor
	modules []plugin.ModuleDescriptor
	defs    []plugin.SettingsDefinition

	store     *store.Store
	log       *slog.Logger
	sourceDir string
	shared    string

	mu          sync.Mutex
	activeUsers map[string]struct{}
	instanceID  string
	createdAt   time.Time
	lastUsed    time.Time
}

// New creates a lifecycle manager bound to the given registry store.
func New(st *store.Store, opts Options) *Manager {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	desc := settingsDescriptor
	shared := filepath.Join(opts.PluginsBaseDir, "shared", desc.Slug, "v"+desc.Version)
	now := time.Now()

	return &Manager{
		desc:        desc,
		modules:     settingsModules,
		defs:        settingsDefinitions,
		store:       st,
		log:         log.With("plugin", desc.Slug, "version", desc.Version),
		sourceDir:   opts.SourceDir,
		shared:      shared,
		activeUsers: make(map[string]struct{}),
		instanceID:  desc.Slug + "_" + desc.Version,
		createdAt:   now,
		lastUsed:    now,
	}
}

// Descriptor returns the static plugin metadata.
func (m *Manager) Descriptor() plugin.Descriptor { return m.desc }

// Modules returns the static module metadata.
func (m *Manager) Modules() []plugin.ModuleDescriptor { return m.modules }

// SettingsDefinitions returns the settings schemas this plugin requires.
func (m *Manager) SettingsDefinitions() []plugin.SettingsDefinition { return m.defs }

// SharedPath returns the on-disk directory holding this plugin
// version's files, shared by all users of the version.
func (m *Manager) SharedPath() string { return m.shared }

// InstanceID returns the identity of this manager instance.
func (m *Manager) InstanceID() string { return m.instanceID }

// Install installs the plugin for one user: shared files first, then
// all database rows inside a single transaction. File copies are not
// rolled back if the transaction fails; a retried install overwrites
// them since files are addressed by version directory.
func (m *Manager) Install(ctx context.Context, userID string) (*plugin.InstallResult, error) {
	m.log.Info("starting installation", "user", userID)

	if _, exists, err := m.store.GetPluginID(ctx, userID, m.desc.Slug); err != nil {
		return nil, err
	} else if exists {
		return nil, plugin.ErrAlreadyInstalled
	}

	if err := utils.EnsureDir(m.shared); err != nil {
		return nil, fmt.Errorf("create shared directory: %w", err)
	}

	copied, err := m.copyPluginFiles(m.shared, false)
	if err != nil {
		m.log.Error("file copy failed", "user", userID, "error", err)
		return nil, err
	}

	result, err := m.installForUser(ctx, userID)
	if err != nil {
		m.log.Error("user installation failed", "user", userID, "error", err)
		return nil, err
	}

	// Verify the committed rows are actually readable before reporting
	// success to the host installer.
	if _, exists, err := m.store.GetPluginID(ctx, userID, m.desc.Slug); err != nil || !exists {
		return nil, fmt.Errorf("installation verification failed")
	}

	result.SharedPath = m.shared
	result.FilesCopied = copied
	m.log.Info("installation completed", "user", userID, "modules", len(result.ModulesCreated))
	return result, nil
}

// installForUser guards the row creation with the in-memory active-user
// set and runs it inside one transaction.
func (m *Manager) installForUser(ctx context.Context, userID string) (*plugin.InstallResult, error) {
	m.mu.Lock()
	if _, active := m.activeUsers[userID]; active {
		m.mu.Unlock()
		return nil, plugin.ErrAlreadyInstalled
	}
	m.mu.Unlock()

	var result *plugin.InstallResult
	err := m.store.WithTx(ctx, func(q *store.Queries) error {
		var err error
		result, err = m.createRecords(ctx, q, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.activeUsers[userID] = struct{}{}
	m.lastUsed = time.Now()
	m.mu.Unlock()
	return result, nil
}

// createRecords creates the settings definitions, settings instances,
// plugin row and module rows for one user. Runs inside a transaction.
func (m *Manager) createRecords(ctx context.Context, q *store.Queries, userID string) (*plugin.InstallResult, error) {
	// Re-check inside the transaction; the UNIQUE constraint is the
	// final arbiter for concurrent installers.
	if _, exists, err := q.GetPluginID(ctx, userID, m.desc.Slug); err != nil {
		return nil, err
	} else if exists {
		return nil, plugin.ErrAlreadyInstalled
	}

	if err := m.ensureSettingsDefinitions(ctx, q); err != nil {
		return nil, err
	}

	settingsCreated, err := m.createSettingsInstances(ctx, q, userID)
	if err != nil {
		return nil, err
	}

	pluginID := userID + "_" + m.desc.Slug
	now := time.Now().Format(timeLayout)

	if err := q.InsertPlugin(ctx, store.PluginRow{
		ID:              pluginID,
		Name:            m.desc.Name,
		Description:     m.desc.Description,
		Version:         m.desc.Version,
		Type:            m.desc.Type,
		Enabled:         true,
		Icon:            m.desc.Icon,
		Category:        m.desc.Category,
		Status:          "activated",
		Official:        m.desc.Official,
		Author:          m.desc.Author,
		LastUpdated:     releaseDate,
		Compatibility:   m.desc.Compatibility,
		Downloads:       0,
		Scope:           m.desc.Scope,
		BundleMethod:    m.desc.BundleMethod,
		BundleLocation:  m.desc.BundleLocation,
		IsLocal:         m.desc.IsLocal,
		LongDescription: m.desc.LongDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
		UserID:          userID,
		Slug:            m.desc.Slug,
		SourceType:      m.desc.SourceType,
		SourceURL:       m.desc.SourceURL,
		UpdateCheckURL:  m.desc.UpdateCheckURL,
		UpdateAvailable: false,
		InstallType:     m.desc.InstallationType,
		Permissions:     jsonString(m.desc.Permissions),
	}); err != nil {
		return nil, err
	}

	var modulesCreated []string
	for _, mod := range m.modules {
		if err := q.InsertModule(ctx, store.ModuleRow{
			ID:               userID + "_" + mod.Name,
			PluginID:         pluginID,
			Name:             mod.Name,
			DisplayName:      mod.DisplayName,
			Description:      mod.Description,
			Icon:             mod.Icon,
			Category:         mod.Category,
			Enabled:          true,
			Priority:         mod.Priority,
			Props:            jsonString(mod.Props),
			ConfigFields:     jsonString(mod.ConfigFields),
			Messages:         jsonString(mod.Messages),
			RequiredServices: jsonString(mod.RequiredServices),
			Dependencies:     jsonString(mod.Dependencies),
			Layout:           jsonString(mod.Layout),
			Tags:             jsonString(mod.Tags),
			CreatedAt:        now,
			UpdatedAt:        now,
			UserID:           userID,
		}); err != nil {
			return nil, err
		}
		modulesCreated = append(modulesCreated, mod.Name)
	}

	m.log.Info("created database records", "user", userID,
		"modules", len(modulesCreated), "settings", len(settingsCreated))

	return &plugin.InstallResult{
		PluginID:        pluginID,
		Slug:            m.desc.Slug,
		Name:            m.desc.Name,
		ModulesCreated:  modulesCreated,
		SettingsCreated: settingsCreated,
	}, nil
}

// ensureSettingsDefinitions creates any missing global settings
// definition rows. Definitions are shared across users: created on the
// first install of any user and never deleted by this manager.
func (m *Manager) ensureSettingsDefinitions(ctx context.Context, q *store.Queries) error {
	now := time.Now().Format(timeLayout)
	for _, def := range m.defs {
		exists, err := q.SettingsDefinitionExists(ctx, def.ID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		if err := q.InsertSettingsDefinition(ctx, store.SettingsDefinitionRow{
			ID:            def.ID,
			Name:          def.Name,
			Description:   def.Description,
			Category:      def.Category,
			Type:          def.Type,
			DefaultValue:  def.DefaultValue,
			AllowedScopes: def.AllowedScopes,
			Validation:    nullString(def.Validation),
			IsMultiple:    def.IsMultiple,
			Tags:          def.Tags,
			CreatedAt:     now,
			UpdatedAt:     now,
		}); err != nil {
			return err
		}
		m.log.Info("created settings definition", "definition", def.ID)
	}
	return nil
}

// createSettingsInstances creates one user-scoped instance per
// definition, skipping instances the user already has.
func (m *Manager) createSettingsInstances(ctx context.Context, q *store.Queries, userID string) ([]string, error) {
	now := time.Now().Format(timeLayout)
	var created []string

	for _, def := range m.defs {
		exists, err := q.SettingsInstanceExists(ctx, def.ID, userID, string(plugin.ScopeUser))
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		if err := q.InsertSettingsInstance(ctx, store.SettingsInstanceRow{
			ID:           newInstanceID(),
			DefinitionID: def.ID,
			Name:         def.Name,
			Value:        def.DefaultValue,
			Scope:        string(plugin.ScopeUser),
			UserID:       userID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return nil, err
		}
		created = append(created, def.Name)
		m.log.Info("created settings instance", "definition", def.ID, "user", userID)
	}
	return created, nil
}

// Uninstall removes the user's module and plugin rows inside one
// transaction. Shared files stay on disk (other users of the version
// need them) and settings rows are never deleted.
func (m *Manager) Uninstall(ctx context.Context, userID string) (*plugin.UninstallResult, error) {
	m.log.Info("starting uninstallation", "user", userID)

	pluginID, exists, err := m.store.GetPluginID(ctx, userID, m.desc.Slug)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, plugin.ErrNotInstalled
	}

	var deleted int64
	err = m.store.WithTx(ctx, func(q *store.Queries) error {
		// Modules first; the schema has no cascade.
		deleted, err = q.DeleteModules(ctx, userID, pluginID)
		if err != nil {
			return err
		}
		return q.DeletePlugin(ctx, userID, pluginID)
	})
	if err != nil {
		m.log.Error("uninstallation failed", "user", userID, "error", err)
		return nil, err
	}

	m.mu.Lock()
	delete(m.activeUsers, userID)
	m.lastUsed = time.Now()
	m.mu.Unlock()

	m.log.Info("uninstallation completed", "user", userID, "deleted_modules", deleted)
	return &plugin.UninstallResult{PluginID: pluginID, DeletedModules: deleted}, nil
}

// Status reports whether the plugin is installed for a user. Pure read,
// no side effects.
func (m *Manager) Status(ctx context.Context, userID string) (*plugin.Status, error) {
	pluginID, exists, err := m.store.GetPluginID(ctx, userID, m.desc.Slug)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &plugin.Status{Installed: false}, nil
	}
	return &plugin.Status{
		Installed: true,
		PluginID:  pluginID,
		Slug:      m.desc.Slug,
		Name:      m.desc.Name,
		Version:   m.desc.Version,
	}, nil
}

// Update migrates a user to the release managed by target: export the
// user's JSON configuration, uninstall this version, install the
// target, then re-apply the exported configuration. The import phase is
// best-effort: a failed import is logged and the update still reports
// success if the install succeeded.
func (m *Manager) Update(ctx context.Context, userID string, target *Manager) (*plugin.InstallResult, error) {
	m.log.Info("starting update", "user", userID, "target_version", target.desc.Version)

	data, err := m.exportUserData(ctx, userID)
	if err != nil {
		// Proceed as a first install when nothing could be exported.
		m.log.Warn("user data export failed, continuing with empty configuration",
			"user", userID, "error", err)
		data = nil
	}

	if _, err := m.Uninstall(ctx, userID); err != nil {
		return nil, err
	}

	result, err := target.Install(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data != nil {
		if err := target.importUserData(ctx, userID, data); err != nil {
			m.log.Error("user data import failed", "user", userID, "error", err)
		}
	}

	m.log.Info("update completed", "user", userID)
	return result, nil
}

// newInstanceID generates a settings instance id: a UUID with the
// dashes stripped, matching the host id convention.
func newInstanceID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// jsonString serializes static descriptor data. Descriptor values are
// plain maps and slices, so a marshal failure here is a programming
// error and collapses to an empty JSON object.
func jsonString(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
