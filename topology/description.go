/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package topology

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/fw"
	"github.com/named-data/YaCSim/table"
)

// Description is a network described in a YAML file.
type Description struct {
	Routers     []string                `yaml:"routers"`
	Publishers  []PublisherDescription  `yaml:"publishers"`
	Subscribers []SubscriberDescription `yaml:"subscribers"`

	// Fib lists explicit FIB entries. When empty, routers are laid out as a line in the order listed.
	Fib []FibDescription `yaml:"fib"`

	// BaseDir is the directory relative folders are resolved against.
	BaseDir string `yaml:"-"`
}

// PublisherDescription describes a publisher serving either the files of a folder or a synthetic catalogue.
type PublisherDescription struct {
	Name   string `yaml:"name"`
	Folder string `yaml:"folder,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
	Count  int    `yaml:"count,omitempty"`
}

// SubscriberDescription describes a subscriber and the router it is attached to.
type SubscriberDescription struct {
	Name   string `yaml:"name"`
	Router string `yaml:"router"`
}

// FibDescription routes every content matching a glob pattern at a router to a router or publisher.
type FibDescription struct {
	Router  string `yaml:"router"`
	Names   string `yaml:"names"`
	NextHop string `yaml:"nexthop"`
}

// LoadDescription reads a YAML network description. Unknown fields are rejected.
func LoadDescription(file string) (*Description, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	description := new(Description)
	dec := yaml.NewDecoder(f, yaml.Strict())
	if err = dec.Decode(description); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", file, err)
	}
	description.BaseDir = filepath.Dir(file)
	return description, nil
}

func (d *Description) buildPublishers() ([]*fw.Publisher, error) {
	publishers := make([]*fw.Publisher, 0, len(d.Publishers))
	for _, pd := range d.Publishers {
		if pd.Name == "" {
			return nil, &core.ConfigurationError{Key: "publishers.name", Value: pd.Name}
		}
		if pd.Folder == "" {
			publishers = append(publishers, fw.NewPublisher(pd.Name, SyntheticCatalogue(pd.Prefix, pd.Count)))
			continue
		}

		folder := pd.Folder
		if !filepath.IsAbs(folder) {
			folder = filepath.Join(d.BaseDir, folder)
		}
		publisher, err := fw.LoadPublisher(pd.Name, folder)
		if err != nil {
			return nil, err
		}
		publishers = append(publishers, publisher)
	}
	return publishers, nil
}

// Build creates the described network.
func (d *Description) Build(config BuildConfig) (*Network, error) {
	if len(d.Routers) == 0 {
		return nil, &core.ConfigurationError{Key: "routers", Value: "[]"}
	}
	publishers, err := d.buildPublishers()
	if err != nil {
		return nil, err
	}

	n := newNetwork(publishers)
	for _, name := range d.Routers {
		if n.Router(name) != nil {
			return nil, &core.ConfigurationError{Key: "routers", Value: name}
		}
		if _, err := n.addRouter(name, config); err != nil {
			return nil, err
		}
	}
	for _, sd := range d.Subscribers {
		router := n.Router(sd.Router)
		if router == nil {
			return nil, &core.ConfigurationError{Key: "subscribers.router", Value: sd.Router}
		}
		n.addSubscriber(sd.Name, router, config)
	}

	if len(d.Fib) == 0 {
		SetupLineFib(n.Routers, publishers)
		return n, nil
	}
	for _, fd := range d.Fib {
		if err := n.applyFibDescription(fd); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (n *Network) applyFibDescription(fd FibDescription) error {
	router := n.Router(fd.Router)
	if router == nil {
		return &core.ConfigurationError{Key: "fib.router", Value: fd.Router}
	}
	var nexthop table.NextHop
	switch {
	case n.Dispatch.GetForwarder(fd.NextHop) != nil:
		nexthop = table.RouterHop(fd.NextHop)
	case n.Dispatch.GetProducer(fd.NextHop) != nil:
		nexthop = table.PublisherHop(fd.NextHop)
	default:
		return &core.ConfigurationError{Key: "fib.nexthop", Value: fd.NextHop}
	}
	if _, err := path.Match(fd.Names, ""); err != nil {
		return &core.ConfigurationError{Key: "fib.names", Value: fd.Names}
	}

	for _, name := range n.Directory.Names() {
		if matched, _ := path.Match(fd.Names, name); matched {
			router.Fib().Insert(name, nexthop)
		}
	}
	return nil
}
