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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func testPluginRow(userID string) PluginRow {
	return PluginRow{
		ID:        userID + "_BrainDriveSettings",
		Name:      "BrainDrive Settings",
		Version:   "1.0.3",
		Type:      "frontend",
		Enabled:   true,
		Status:    "activated",
		CreatedAt: "2025-03-06 12:00:00",
		UpdatedAt: "2025-03-06 12:00:00",
		UserID:    userID,
		Slug:      "BrainDriveSettings",
	}
}

func TestPluginRows(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	t.Run("Missing Plugin", func(t *testing.T) {
		id, found, err := st.GetPluginID(ctx, "u1", "BrainDriveSettings")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, id)
	})

	t.Run("Insert And Find", func(t *testing.T) {
		require.NoError(t, st.InsertPlugin(ctx, testPluginRow("u1")))

		id, found, err := st.GetPluginID(ctx, "u1", "BrainDriveSettings")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "u1_BrainDriveSettings", id)

		version, err := st.GetPluginVersion(ctx, "u1", "BrainDriveSettings")
		require.NoError(t, err)
		assert.Equal(t, "1.0.3", version)
	})

	t.Run("Duplicate Insert Violates Uniqueness", func(t *testing.T) {
		row := testPluginRow("u1")
		row.ID = "u1_BrainDriveSettings_copy"
		assert.Error(t, st.InsertPlugin(ctx, row))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, st.DeletePlugin(ctx, "u1", "u1_BrainDriveSettings"))

		_, found, err := st.GetPluginID(ctx, "u1", "BrainDriveSettings")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestModuleRows(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, st.InsertModule(ctx, ModuleRow{
			ID:        fmt.Sprintf("u1_Component%d", i),
			PluginID:  "u1_BrainDriveSettings",
			Name:      fmt.Sprintf("Component%d", i),
			Enabled:   true,
			Priority:  1,
			CreatedAt: "2025-03-06 12:00:00",
			UpdatedAt: "2025-03-06 12:00:00",
			UserID:    "u1",
		}))
	}

	count, err := st.CountModules(ctx, "u1", "u1_BrainDriveSettings")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	deleted, err := st.DeleteModules(ctx, "u1", "u1_BrainDriveSettings")
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)

	count, err = st.CountModules(ctx, "u1", "u1_BrainDriveSettings")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSettingsRows(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	def := SettingsDefinitionRow{
		ID:            "theme_settings",
		Name:          "Theme Settings",
		Type:          "object",
		DefaultValue:  `{"theme": "light"}`,
		AllowedScopes: `["system", "user"]`,
		CreatedAt:     "2025-03-06 12:00:00",
		UpdatedAt:     "2025-03-06 12:00:00",
	}

	t.Run("Definition Create If Absent", func(t *testing.T) {
		exists, err := st.SettingsDefinitionExists(ctx, def.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, st.InsertSettingsDefinition(ctx, def))

		exists, err = st.SettingsDefinitionExists(ctx, def.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Instance Uniqueness Per User And Scope", func(t *testing.T) {
		inst := SettingsInstanceRow{
			ID:           "abc123",
			DefinitionID: def.ID,
			Name:         def.Name,
			Value:        def.DefaultValue,
			Scope:        "user",
			UserID:       "u1",
			CreatedAt:    "2025-03-06 12:00:00",
			UpdatedAt:    "2025-03-06 12:00:00",
		}
		require.NoError(t, st.InsertSettingsInstance(ctx, inst))

		inst.ID = "def456"
		assert.Error(t, st.InsertSettingsInstance(ctx, inst), "same (definition, user, scope) must be rejected")

		exists, err := st.SettingsInstanceExists(ctx, def.ID, "u1", "user")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = st.SettingsInstanceExists(ctx, def.ID, "u2", "user")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.WithTx(ctx, func(q *Queries) error {
		if err := q.InsertPlugin(ctx, testPluginRow("u1")); err != nil {
			return err
		}
		return fmt.Errorf("forced failure")
	})
	require.Error(t, err)

	_, found, err := st.GetPluginID(ctx, "u1", "BrainDriveSettings")
	require.NoError(t, err)
	assert.False(t, found, "rolled back insert must not be visible")
}

func TestConfigRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.InsertPlugin(ctx, testPluginRow("u1")))
	require.NoError(t, st.InsertModule(ctx, ModuleRow{
		ID:        "u1_ComponentTheme",
		PluginID:  "u1_BrainDriveSettings",
		Name:      "ComponentTheme",
		Enabled:   true,
		Priority:  1,
		Props:     `{}`,
		CreatedAt: "2025-03-06 12:00:00",
		UpdatedAt: "2025-03-06 12:00:00",
		UserID:    "u1",
	}))

	require.NoError(t, st.UpdatePluginConfig(ctx, "u1", "u1_BrainDriveSettings",
		`{"a":1}`, `{"sends":[]}`, `[]`))
	require.NoError(t, st.UpdateModuleConfig(ctx, "u1", "u1_ComponentTheme",
		`{"color":"blue"}`, `{}`, `{}`, `{"minWidth":6}`))

	cfg, err := st.GetPluginConfig(ctx, "u1", "BrainDriveSettings")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, `{"a":1}`, cfg.ConfigFields.String)

	modules, err := st.ListModuleConfigs(ctx, "u1", "u1_BrainDriveSettings")
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "ComponentTheme", modules[0].Name)
	assert.Equal(t, `{"color":"blue"}`, modules[0].Props.String)

	cfg, err = st.GetPluginConfig(ctx, "u2", "BrainDriveSettings")
	require.NoError(t, err)
	assert.Nil(t, cfg, "missing plugin row yields no config")
}
