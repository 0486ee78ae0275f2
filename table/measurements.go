/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"strings"

	"github.com/cornelk/hashmap"
)

// Measurements is a lock-free table of per-router measurements, such as access time averages.
// The zero value is ready to use.
type Measurements struct {
	values hashmap.HashMap
}

// NewMeasurements creates an empty measurements table.
func NewMeasurements() *Measurements {
	return new(Measurements)
}

// Get returns the measurement table value at the specified key or nil if it does not exist.
func (m *Measurements) Get(key string) interface{} {
	value, isOk := m.values.GetStringKey(key)
	if !isOk {
		return nil
	}
	return value
}

// GetFloat returns the floating point measurement at the specified key, or 0 if it does not exist.
func (m *Measurements) GetFloat(key string) float64 {
	if value, ok := m.Get(key).(float64); ok {
		return value
	}
	return 0
}

// GetInt returns the integer measurement at the specified key, or 0 if it does not exist.
func (m *Measurements) GetInt(key string) int {
	if value, ok := m.Get(key).(int); ok {
		return value
	}
	return 0
}

// Set atomically sets the value of the specified key only if it is equal to the expected value, returning whether the operation was successful.
func (m *Measurements) Set(key string, expected interface{}, value interface{}) bool {
	return m.values.Cas(key, expected, value)
}

// AddToMeasurementInt adds the specified value to the given measurement key, setting as value if unitialized.
func (m *Measurements) AddToMeasurementInt(key string, value int) {
	wasSet := false
	for !wasSet {
		expected := m.Get(key)
		if expected != nil {
			wasSet = m.Set(key, expected, expected.(int)+value)
		} else {
			_, loaded := m.values.GetOrInsert(key, value)
			wasSet = !loaded
		}
	}
}

// AddSampleToEWMA folds a sample into an exponentially weighted moving average: alpha*sample + (1-alpha)*average.
// The first sample initializes the average.
func (m *Measurements) AddSampleToEWMA(key string, sample float64, alpha float64) {
	wasSet := false
	for !wasSet {
		expected := m.Get(key)
		if expected != nil {
			wasSet = m.Set(key, expected, alpha*sample+(1-alpha)*expected.(float64))
		} else {
			_, loaded := m.values.GetOrInsert(key, sample)
			wasSet = !loaded
		}
	}
}

// Delete removes the specified key.
func (m *Measurements) Delete(key string) {
	m.values.Del(key)
}

// Keys returns every key in the table, in no particular order.
func (m *Measurements) Keys() []string {
	keys := make([]string, 0, m.values.Len())
	for kv := range m.values.Iter() {
		keys = append(keys, kv.Key.(string))
	}
	return keys
}

// DeletePrefix removes every key starting with the specified prefix.
func (m *Measurements) DeletePrefix(prefix string) {
	for _, key := range m.Keys() {
		if strings.HasPrefix(key, prefix) {
			m.values.Del(key)
		}
	}
}
