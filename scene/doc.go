// Package scene reads and writes the YAML files that describe a level: its
// waypoints, which one is the start and which the end, and optionally the
// proximity thresholds used to link them.
//
//	name: level-1
//	thresholds: {x: 3.0, y: 3.5}
//	waypoints:
//	  - {id: 0, x: 0, y: 0, role: start}
//	  - {id: 1, x: 1, y: 0}
//	  - {id: 9, x: 3, y: 0, role: end}
//
// Role is one of start, end or waypoint (the default). Unknown keys are
// rejected so that typos do not silently fall back to defaults.
//
// Watcher re-reads a scene file whenever it changes on disk.
package scene
