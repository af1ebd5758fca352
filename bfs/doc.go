// Package bfs walks a core.Graph outward from one node, one link at a time.
//
// The planner uses it to explain a route: how many links the shortest chain
// needs, which waypoints the start can reach at all when there is no route,
// and the fewest-link chain to any of them.
//
// A walk never sums weights. Weights only feed the Passable test, so a walk
// and a shortest-path search given the same link limit agree on which nodes
// are connected.
//
// Nodes are discovered in graph link order, so two walks over the same graph
// always produce the same Order and the same chains.
package bfs
