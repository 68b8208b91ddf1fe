// Package watermask classifies grid cells as water or land.
//
// What:
//
//   - Mask wraps a rectangular [][]int grid with a tunable LandThreshold;
//     cells with value ≥ LandThreshold are land, everything else is water.
//   - Row 0 is the southern edge of the world, matching the grid coordinates
//     produced by package geodesy. ParseRows accepts maps written top row
//     first and flips them.
//   - IsWater has the linetrace.WaterFunc signature, so a mask can be handed
//     straight to the tracer. Cells outside the grid are land.
//   - WaterBodies finds connected regions of water; SameBody answers whether
//     two cells share one, under eight-way connectivity.
//
// Why:
//
//   - Straight-line navigation only ever moves between 8-adjacent water
//     cells, so two cells in different bodies can never be joined by a water
//     path. SameBody lets callers reject such queries before tracing.
//
// Complexity:
//
//   - NewMask:     O(W×H) time and memory (deep copy plus body labelling).
//   - WaterBodies: O(W×H×d), d = 4 or 8.
//   - IsWater, SameBody: O(1).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered land.
//   - GridOptions.Conn: Conn4 or Conn8 for WaterBodies.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadSymbol: an ASCII map contains an unknown character.
package watermask
