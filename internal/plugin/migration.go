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
	"time"
)

// userData is the user-mutable configuration exported before an update
// and re-applied afterwards.
type userData struct {
	PluginConfig  pluginConfigData            `json:"plugin_config"`
	ModulesConfig map[string]moduleConfigData `json:"modules_config"`
	ExportedAt    string                      `json:"export_timestamp"`
}

type pluginConfigData struct {
	ConfigFields map[string]any `json:"config_fields"`
	Messages     map[string]any `json:"messages"`
	Dependencies []any          `json:"dependencies"`
}

type moduleConfigData struct {
	Props        map[string]any `json:"props"`
	ConfigFields map[string]any `json:"config_fields"`
	Messages     map[string]any `json:"messages"`
	Layout       map[string]any `json:"layout"`
}

// exportUserData reads the user's JSON-valued configuration columns.
// Rows whose JSON fails to decode are logged and dropped rather than
// aborting the whole export.
func (m *Manager) exportUserData(ctx context.Context, userID string) (*userData, error) {
	data := &userData{
		ModulesConfig: make(map[string]moduleConfigData),
		ExportedAt:    time.Now().Format(time.RFC3339),
	}

	cfg, err := m.store.GetPluginConfig(ctx, userID, m.desc.Slug)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		pc := pluginConfigData{
			ConfigFields: map[string]any{},
			Messages:     map[string]any{},
			Dependencies: []any{},
		}
		ok := decodeNullJSON(cfg.ConfigFields, &pc.ConfigFields) &&
			decodeNullJSON(cfg.Messages, &pc.Messages) &&
			decodeNullJSON(cfg.Dependencies, &pc.Dependencies)
		if ok {
			data.PluginConfig = pc
		} else {
			m.log.Warn("failed to parse plugin config, dropping it", "user", userID)
			data.PluginConfig = pluginConfigData{
				ConfigFields: map[string]any{},
				Messages:     map[string]any{},
				Dependencies: []any{},
			}
		}
	}

	pluginID := userID + "_" + m.desc.Slug
	moduleConfigs, err := m.store.ListModuleConfigs(ctx, userID, pluginID)
	if err != nil {
		return nil, err
	}
	for _, mc := range moduleConfigs {
		entry := moduleConfigData{
			Props:        map[string]any{},
			ConfigFields: map[string]any{},
			Messages:     map[string]any{},
			Layout:       map[string]any{},
		}
		ok := decodeNullJSON(mc.Props, &entry.Props) &&
			decodeNullJSON(mc.ConfigFields, &entry.ConfigFields) &&
			decodeNullJSON(mc.Messages, &entry.Messages) &&
			decodeNullJSON(mc.Layout, &entry.Layout)
		if !ok {
			m.log.Warn("failed to parse module config, dropping it", "module", mc.Name)
			continue
		}
		data.ModulesConfig[mc.Name] = entry
	}

	m.log.Info("exported user data", "user", userID, "modules", len(data.ModulesConfig))
	return data, nil
}

// importUserData re-applies exported configuration onto the freshly
// installed rows, keyed by the same composite ids.
func (m *Manager) importUserData(ctx context.Context, userID string, data *userData) error {
	pluginID := userID + "_" + m.desc.Slug
	if err := m.store.UpdatePluginConfig(ctx, userID, pluginID,
		jsonString(data.PluginConfig.ConfigFields),
		jsonString(data.PluginConfig.Messages),
		jsonString(data.PluginConfig.Dependencies)); err != nil {
		return err
	}

	for name, cfg := range data.ModulesConfig {
		moduleID := userID + "_" + name
		if err := m.store.UpdateModuleConfig(ctx, userID, moduleID,
			jsonString(cfg.Props),
			jsonString(cfg.ConfigFields),
			jsonString(cfg.Messages),
			jsonString(cfg.Layout)); err != nil {
			return err
		}
	}

	m.log.Info("imported user data", "user", userID, "modules", len(data.ModulesConfig))
	return nil
}

// decodeNullJSON decodes a nullable JSON column into out. NULL and
// empty values decode successfully to out's zero contents.
func decodeNullJSON(col sql.NullString, out any) bool {
	if !col.Valid || col.String == "" {
		return true
	}
	return json.Unmarshal([]byte(col.String), out) == nil
}
