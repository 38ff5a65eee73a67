// Package gridnav provides pathfinding and replanning for an agent moving on
// a weighted 2-D grid with dynamic obstacles.
//
// It exposes two main entry points:
//
//   - New: construct one of the five planners (bfs, ucs, astar,
//     temporal_astar, hill_climbing) and run FindPath to completion.
//   - Agent: execute a committed path one tick at a time, replanning
//     through the same planner whenever the next waypoint becomes blocked.
//
// The package owns no grid storage and performs no I/O; it consumes an
// Environment supplied by the caller (see the grid subpackage for the
// standard implementation).
package gridnav
