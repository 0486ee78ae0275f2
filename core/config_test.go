/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/named-data/YaCSim/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[core]
log_level = "DEBUG"

[tables.cs]
capacity = 20
ttl = 4294967296

[tables.popularity]
alpha = 0.5

[sim]
active_probability = 1
policies = ["LRU", "FIFO"]
`

func TestConfigDefaultsBeforeLoading(t *testing.T) {
	core.ResetConfig()
	assert.Equal(t, 15, core.GetConfigIntDefault("tables.cs.capacity", 15))
	assert.Equal(t, int64(7), core.GetConfigInt64Default("sim.seed", 7))
	assert.Equal(t, 0.9, core.GetConfigFloatDefault("tables.popularity.alpha", 0.9))
	assert.Equal(t, "INFO", core.GetConfigStringDefault("core.log_level", "INFO"))
	assert.Nil(t, core.GetConfigArrayString("sim.policies"))
}

func TestLoadConfigString(t *testing.T) {
	require.NoError(t, core.LoadConfigString(testConfig))
	defer core.ResetConfig()

	assert.Equal(t, 20, core.GetConfigIntDefault("tables.cs.capacity", 15))
	assert.Equal(t, 5, core.GetConfigIntDefault("tables.cs.top_n_popular", 5))
	// Out of int32 range
	assert.Equal(t, 300000, core.GetConfigIntDefault("tables.cs.ttl", 300000))
	assert.Equal(t, int64(4294967296), core.GetConfigInt64Default("tables.cs.ttl", 0))
	assert.Equal(t, 0.5, core.GetConfigFloatDefault("tables.popularity.alpha", 0.9))
	assert.Equal(t, 1.0, core.GetConfigFloatDefault("sim.active_probability", 0.9))
	assert.Equal(t, "DEBUG", core.GetConfigStringDefault("core.log_level", "INFO"))
	// Wrong type
	assert.Equal(t, "x", core.GetConfigStringDefault("tables.cs.capacity", "x"))
	assert.Equal(t, []string{"LRU", "FIFO"}, core.GetConfigArrayString("sim.policies"))
	assert.Nil(t, core.GetConfigArrayString("sim.routers"))
}

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "yacsim.toml")
	require.NoError(t, os.WriteFile(file, []byte(testConfig), 0o644))
	require.NoError(t, core.LoadConfig(file))
	defer core.ResetConfig()
	assert.Equal(t, 20, core.GetConfigIntDefault("tables.cs.capacity", 15))

	assert.Error(t, core.LoadConfig(filepath.Join(t.TempDir(), "missing.toml")))
	assert.Error(t, core.LoadConfigString("[sim"))
	// A failed load keeps the previous configuration
	assert.Equal(t, 20, core.GetConfigIntDefault("tables.cs.capacity", 15))
}
