/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package cmd_test

import (
	"testing"

	"github.com/named-data/YaCSim/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdTreeExecute(t *testing.T) {
	var got []string
	record := func(args []string) { got = args }
	tree := cmd.CmdTree{
		Name: "yacsim",
		Sub: []*cmd.CmdTree{{
			Name: "sim",
			Sub: []*cmd.CmdTree{{
				Name: "run",
				Fun:  record,
			}},
		}, {
			// separator
		}, {
			Name: "version",
			Fun:  record,
		}},
	}

	tree.Execute([]string{"yacsim", "sim", "run", "-iterations", "5", "yacsim.toml"})
	assert.Equal(t, []string{"yacsim sim run", "-iterations", "5", "yacsim.toml"}, got)

	tree.Execute([]string{"yacsim", "version"})
	assert.Equal(t, []string{"yacsim version"}, got)
}

func TestCmdTreeFind(t *testing.T) {
	tree := cmd.CmdTree{
		Name: "yacsim",
		Sub:  []*cmd.CmdTree{{Name: "run", Fun: func([]string) {}}, {}},
	}

	fun, _ := tree.Find([]string{"yacsim"})
	assert.Nil(t, fun)
	fun, _ = tree.Find([]string{"yacsim", "select"})
	assert.Nil(t, fun)
	fun, _ = tree.Find([]string{"yacsim", ""})
	assert.Nil(t, fun)
	fun, args := tree.Find([]string{"yacsim", "run", "a"})
	require.NotNil(t, fun)
	assert.Equal(t, []string{"yacsim run", "a"}, args)
}
