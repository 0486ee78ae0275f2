/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package selection

import "github.com/named-data/YaCSim/table"

// TracePath follows the FIB entries for the specified name from the first router, through router next hops only.
// The path holds at most len(routers) routers.
func TracePath(routers []Router, name string) []string {
	path := make([]string, 0, len(routers))
	if len(routers) == 0 {
		return path
	}

	current := routers[0]
	for current != nil && len(path) < len(routers) {
		path = append(path, current.Name())
		nexthop, ok := current.Fib().Lookup(name)
		if !ok || nexthop.Kind != table.NextHopRouter {
			break
		}
		current = findRouter(routers, nexthop.Name)
	}
	return path
}

func findRouter(routers []Router, name string) Router {
	for _, router := range routers {
		if router.Name() == name {
			return router
		}
	}
	return nil
}
