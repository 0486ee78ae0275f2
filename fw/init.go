/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

import "github.com/named-data/YaCSim/core"

// accessTimeAlpha is the weight of the newest sample in a router's access time average.
var accessTimeAlpha = 0.125

// Configure configures the forwarding system.
func Configure() {
	accessTimeAlpha = core.GetConfigFloatDefault("fw.access_time_alpha", 0.125)
}
