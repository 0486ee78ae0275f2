/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/dispatch"
	"github.com/named-data/YaCSim/fw"
	"github.com/named-data/YaCSim/mgmt"
	"github.com/named-data/YaCSim/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, name string, d *dispatch.Dispatch) *fw.Router {
	r, err := fw.NewRouter(name, d, fw.RouterConfig{
		Policy: table.CsPolicyFIFO,
		Cs:     table.CsConfig{Capacity: 3, TopNPopular: 1, TTL: time.Minute},
		Alpha:  0.9,
		Rand:   rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	return r
}

func TestStatus(t *testing.T) {
	d := dispatch.NewDispatch()
	d.AddProducer(fw.NewPublisher("Publisher1", map[string][]byte{"cat_1.jpg": []byte("meow")}))
	r1 := newRouter(t, "R1", d)
	r2 := newRouter(t, "R2", d)
	r1.Fib().Insert("cat_1.jpg", table.RouterHop("R2"))
	r2.Fib().Insert("cat_1.jpg", table.PublisherHop("Publisher1"))
	s1 := fw.NewSubscriber("S1", rand.New(rand.NewSource(2)))
	s1.Connect(r1)
	require.NoError(t, s1.Request("cat_1.jpg"))

	core.Version = "test"
	general := mgmt.General([]*fw.Router{r1, r2})
	assert.Equal(t, "test", general.Version)
	assert.False(t, general.CurrentTimestamp.IsZero())
	assert.Equal(t, 2, general.NRouters)
	assert.Equal(t, 1, general.NCsEntries)
	assert.Equal(t, 2, general.NPitEntries)
	assert.Equal(t, 2, general.NFibEntries)
	assert.Equal(t, 2, general.NPopularEntries)
	assert.Equal(t, 0, general.NCacheHits)
	assert.Equal(t, 2, general.NPublisherHits)
	assert.Equal(t, 0, general.NEvictions)
	assert.Equal(t, 2, general.NTotalRequests)

	status := mgmt.Router(r2)
	assert.Equal(t, "R2", status.Name)
	assert.Equal(t, table.CsPolicyFIFO, status.Policy)
	assert.Equal(t, 3, status.Capacity)
	assert.Equal(t, []string{"cat_1.jpg"}, status.Cs)
	assert.Equal(t, []table.PitEntry{{Name: "cat_1.jpg", Requester: "S1"}}, status.Pit)
	assert.Equal(t, []table.FibEntry{{Name: "cat_1.jpg", NextHop: table.PublisherHop("Publisher1")}}, status.Fib)
	require.Len(t, status.Popularity, 1)
	assert.Equal(t, 1, status.Popularity[0].Rank)
	assert.Equal(t, 1, status.Counters.NPublisherHits)
}
