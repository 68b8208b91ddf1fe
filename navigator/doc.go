// Package navigator binds a grid extent and a water mask into the query
// surface used by simulation agents.
//
// A Navigator answers, for one world:
//
//   - Project / CellFor: where a geographic point falls on the grid;
//   - Trace / OnWater: whether a straight segment between grid coordinates
//     stays on water, and which cells it crosses;
//   - TraceGeo: the same for two geographic points;
//   - DistanceKm: the flat-Earth distance between two geographic points.
//
// Out-of-bounds points and blocked segments are ordinary outcomes reported
// as errors wrapping geodesy.ErrOutOfBounds and linetrace.ErrNoPath.
//
// A Navigator is read-only after New and safe for concurrent use. Query
// outcomes are counted on a Prometheus registerer (see WithRegisterer).
package navigator
