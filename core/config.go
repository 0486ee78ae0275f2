/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"math"

	"github.com/pelletier/go-toml"
)

var config *toml.Tree

// LoadConfig loads the simulator configuration from the specified configuration file.
func LoadConfig(file string) error {
	tree, err := toml.LoadFile(file)
	if err != nil {
		return err
	}
	config = tree
	return nil
}

// LoadConfigString loads the simulator configuration from a TOML document.
func LoadConfigString(document string) error {
	tree, err := toml.Load(document)
	if err != nil {
		return err
	}
	config = tree
	return nil
}

// ResetConfig discards any loaded configuration, so that every getter returns its default.
func ResetConfig() {
	config = nil
}

func getConfigRaw(key string) interface{} {
	if config == nil {
		return nil
	}
	return config.Get(key)
}

// GetConfigIntDefault returns the integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigIntDefault(key string, def int) int {
	valRaw := getConfigRaw(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(int64)
	if ok && val >= math.MinInt32 && val <= math.MaxInt32 {
		return int(val)
	}
	return def
}

// GetConfigInt64Default returns the 64-bit integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigInt64Default(key string, def int64) int64 {
	valRaw := getConfigRaw(key)
	if valRaw == nil {
		return def
	}
	if val, ok := valRaw.(int64); ok {
		return val
	}
	return def
}

// GetConfigFloatDefault returns the floating point configuration value at the specified key or the specified default value if it does not exist.
// Integer values are accepted and converted.
func GetConfigFloatDefault(key string, def float64) float64 {
	switch val := getConfigRaw(key).(type) {
	case float64:
		return val
	case int64:
		return float64(val)
	}
	return def
}

// GetConfigStringDefault returns the string configuration value at the specified key or the specified default value if it does not exist.
func GetConfigStringDefault(key string, def string) string {
	valRaw := getConfigRaw(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(string)
	if ok {
		return val
	}
	return def
}

// GetConfigArrayString returns the configuration array value at the specified key or nil if it does not exist.
func GetConfigArrayString(key string) []string {
	if config == nil {
		return nil
	}
	array := config.GetArray(key)
	if array == nil {
		return nil
	}
	if val, ok := array.([]string); ok {
		return val
	}
	return nil
}
