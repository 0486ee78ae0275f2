/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/executor"
	"github.com/named-data/YaCSim/selection"
	"github.com/named-data/YaCSim/sim"
	"github.com/named-data/YaCSim/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[core]
log_level = "WARN"

[tables.cs]
capacity = 10

[sim]
iterations = 20
seed = 3
routers = 4
subscribers = 2
policies = ["LRU", "FACR"]
`

const testTopology = `
routers: [Edge, Core]
publishers:
  - name: Cats
    prefix: cat
    count: 5
subscribers:
  - name: Alice
    router: Edge
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	file := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func resetConfig() {
	core.ResetConfig()
	table.Configure()
}

func TestYaCSimRunPolicies(t *testing.T) {
	defer resetConfig()
	dir := t.TempDir()
	config := &executor.YaCSimConfig{
		ConfigFile:  writeFile(t, dir, "yacsim.toml", testConfig),
		LogFile:     filepath.Join(dir, "yacsim.log"),
		MetricsFile: filepath.Join(dir, "yacsim.prom"),
	}

	yacsim, err := executor.NewYaCSim(config)
	require.NoError(t, err)
	require.NoError(t, yacsim.Start())

	network := yacsim.Simulation().Network()
	assert.Len(t, network.Routers, 4)
	assert.Len(t, network.Subscribers, 2)

	results, err := yacsim.RunPolicies()
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, table.CsPolicyLRU, results[0].Policy)
	assert.Equal(t, table.CsPolicyFACR, results[1].Policy)
	assert.Len(t, results[1].Iterations, 20)
	for _, router := range network.Routers {
		assert.Equal(t, 10, router.ContentStore().Capacity())
	}

	require.NoError(t, yacsim.Stop())
	content, err := os.ReadFile(config.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `yacsim_requests_total{policy="FACR",router="Router1"}`)
	assert.FileExists(t, config.LogFile)
}

func TestYaCSimOverrides(t *testing.T) {
	defer resetConfig()
	dir := t.TempDir()
	config := &executor.YaCSimConfig{
		ConfigFile:   writeFile(t, dir, "yacsim.toml", testConfig),
		TopologyFile: writeFile(t, dir, "network.yml", testTopology),
		LogFile:      filepath.Join(dir, "yacsim.log"),
		Iterations:   5,
		Policies:     []string{"mru"},
	}

	yacsim, err := executor.NewYaCSim(config)
	require.NoError(t, err)
	network := yacsim.Simulation().Network()
	assert.Len(t, network.Routers, 2)
	assert.Equal(t, []string{"cat_image1.jpg", "cat_image2.jpg", "cat_image3.jpg", "cat_image4.jpg", "cat_image5.jpg"},
		network.Contents())

	results, err := yacsim.RunPolicies()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, table.CsPolicyMRU, results[0].Policy)
	assert.Len(t, results[0].Iterations, 5)

	rows := yacsim.RunSelection()
	assert.LessOrEqual(t, len(rows), 5)
	require.NoError(t, yacsim.Stop())
}

func TestYaCSimInvalidConfig(t *testing.T) {
	defer resetConfig()
	dir := t.TempDir()

	_, err := executor.NewYaCSim(&executor.YaCSimConfig{ConfigFile: filepath.Join(dir, "missing.toml")})
	assert.Error(t, err)

	_, err = executor.NewYaCSim(&executor.YaCSimConfig{
		ConfigFile: writeFile(t, dir, "yacsim.toml", testConfig),
		LogFile:    filepath.Join(dir, "yacsim.log"),
		Policies:   []string{"ARC"},
	})
	var configErr *core.ConfigurationError
	assert.ErrorAs(t, err, &configErr)
	core.ShutdownLogger()
}

func TestWriteReports(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, executor.WritePolicyReport(&buf, []*sim.PolicyStats{{
		Policy:        table.CsPolicyLFU,
		TotalRequests: 8,
		CacheHits:     2,
		PublisherHits: 6,
		CacheHitRatio: 25,

		EvictedEntries: 3,
	}}))
	assert.Contains(t, buf.String(), "Policy")
	assert.Contains(t, buf.String(), "Evicted")
	assert.Contains(t, buf.String(), "25.00")
	assert.Contains(t, buf.String(), "LFU")

	buf.Reset()
	require.NoError(t, executor.WriteGlobalPopularity(&buf, []table.GlobalPopularityRecord{
		{Content: "a", Popularity: 2.5, Rank: 1},
		{Content: "b", Popularity: 1, Rank: 2},
	}, 1))
	assert.Contains(t, buf.String(), "2.5000")
	assert.NotContains(t, buf.String(), "1.0000")

	buf.Reset()
	require.NoError(t, executor.WriteComparison(&buf, []selection.ComparisonRow{
		{Content: "a", Manual: "R1", Recommended: "R1", Match: selection.Match},
		{Content: "b", Manual: "R1", Recommended: "R2", Match: selection.NoMatch},
	}))
	assert.Contains(t, buf.String(), "Agreement: 1/2 (50.0%)")
}
