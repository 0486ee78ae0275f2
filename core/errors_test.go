/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/named-data/YaCSim/core"
	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	wrapped := fmt.Errorf("request failed: %w", &core.RoutingFailure{Router: "R2", Name: "cat_image1.jpg"})
	var routingFailure *core.RoutingFailure
	assert.True(t, errors.As(wrapped, &routingFailure))
	assert.Equal(t, "R2", routingFailure.Router)
	assert.Equal(t, "request failed: no route for cat_image1.jpg at R2", wrapped.Error())

	configErr := &core.ConfigurationError{Key: "tables.cs.policy", Value: "ARC"}
	assert.Equal(t, `invalid value "ARC" for tables.cs.policy`, configErr.Error())

	assert.ErrorIs(t, fmt.Errorf("drop: %w", core.ErrLoopDetected), core.ErrLoopDetected)
	assert.NotErrorIs(t, core.ErrEmptySelection, core.ErrLoopDetected)
}
