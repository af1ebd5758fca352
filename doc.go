// Package shortway plans shortest routes across scenes of 2D waypoints.
//
// Waypoints that sit close enough on both axes are linked, and the route is
// the cheapest chain of links from the start waypoint to the end waypoint.
//
// Under the hood, everything is organized in small packages:
//
//	core/       — generic Graph and Node with weighted undirected edges
//	waypoint/   — Point, ID and Role plus orb-backed geometry helpers
//	searchlist/ — ordered linked list with in-place repositioning
//	builder/    — BuildGraph: proximity graph from points via an R-tree
//	dijkstra/   — FindShortestPath over any core.Graph
//	bfs/        — hop-order traversal, used for reachability reports
//	scene/      — YAML scene files and a hot-reload watcher
//	events/     — PathFound and TraversalComplete listeners
//	traveler/   — walks a planned route one arrival at a time
//	route/      — Planner: scene to graph to Route
//	transport/websocket/ — streams events to connected clients
//	cmd/shortway/        — the command line: route, watch, serve, fmt
//
// Quick start:
//
//	s, _ := scene.Load("level.yaml")
//	p, _ := route.NewPlanner(s)
//	r, _ := p.Plan(ctx)
//	fmt.Println(r.Path, r.Distance)
package shortway
