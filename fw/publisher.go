/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/ndn"
)

// Publisher is the origin of a catalogue of named content.
type Publisher struct {
	name    string
	content map[string][]byte
	files   map[string]string
}

// NewPublisher creates a publisher serving the specified in-memory catalogue.
func NewPublisher(name string, catalogue map[string][]byte) *Publisher {
	p := new(Publisher)
	p.name = name
	p.content = make(map[string][]byte, len(catalogue))
	for contentName, content := range catalogue {
		p.content[contentName] = content
	}
	p.files = make(map[string]string)
	return p
}

// LoadPublisher creates a publisher serving every regular file of the specified folder, creating the folder if missing.
// Files are read when served.
func LoadPublisher(name string, folder string) (*Publisher, error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, err
	}
	dirEntries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}

	p := NewPublisher(name, nil)
	for _, dirEntry := range dirEntries {
		if !dirEntry.Type().IsRegular() {
			continue
		}
		p.files[dirEntry.Name()] = filepath.Join(folder, dirEntry.Name())
	}
	core.LogInfo(p, "Loaded ", len(p.files), " content objects from ", folder)
	return p, nil
}

func (p *Publisher) String() string {
	return "Publisher-" + p.name
}

// Name returns the name of the publisher.
func (p *Publisher) Name() string {
	return p.name
}

// ServeContent returns the Data for the specified name, or nil if the name is not in the catalogue.
func (p *Publisher) ServeContent(name string) *ndn.Data {
	if content, ok := p.content[name]; ok {
		return ndn.NewData(name, content)
	}
	if path, ok := p.files[name]; ok {
		content, err := os.ReadFile(path)
		if err != nil {
			core.LogWarn(p, "Unable to read ", path, ": ", err)
			return nil
		}
		return ndn.NewData(name, content)
	}
	return nil
}

// Catalogue returns the names served by the publisher, sorted.
func (p *Publisher) Catalogue() []string {
	names := make([]string, 0, len(p.content)+len(p.files))
	for name := range p.content {
		names = append(names, name)
	}
	for name := range p.files {
		if _, ok := p.content[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
