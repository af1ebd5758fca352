// Package route ties the pieces together for one scene: it builds the
// proximity graph once, answers Plan calls with the shortest route from the
// scene's start to its end, and announces each found route on an events.Bus.
//
// Threshold precedence is explicit option, then the scene file, then the
// builder defaults.
//
// A missing route is a normal outcome (Route.Found == false). The planner
// then counts how many waypoints the start can reach at all and returns the
// fewest-link chain toward the reachable waypoint nearest the end, which
// usually explains the gap better than the bare negative. WithMaxLink applies
// one link limit to both the search and that reachability walk.
package route
