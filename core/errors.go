/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"errors"
	"fmt"
)

// Error definitions
var (
	ErrLoopDetected   = errors.New("interest already visited this router")
	ErrEmptySelection = errors.New("no router left to select")
)

// RoutingFailure is returned when a router has no FIB entry (or an unresolvable one) for a requested name.
type RoutingFailure struct {
	Router string
	Name   string
}

func (e *RoutingFailure) Error() string {
	return fmt.Sprintf("no route for %s at %s", e.Name, e.Router)
}

// ConfigurationError is returned when a configuration value cannot be used, such as an unknown caching policy.
type ConfigurationError struct {
	Key   string
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Key)
}
