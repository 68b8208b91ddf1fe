// Package linetrace decides whether a straight segment on the simulation
// grid stays on water, and lists the cells it crosses.
//
// What:
//
//   - Trace enumerates, in travel order, every grid cell whose area the
//     segment between two real-valued grid coordinates passes through.
//   - OnWater reports the same verdict without keeping the path.
//   - Land is supplied by the caller as a WaterFunc over integer cells;
//     the package never stores or mutates classification data.
//
// Conventions:
//
//   - Integer coordinates are cell centres. Cell k covers [k-0.5, k+0.5);
//     a point on a boundary belongs to the cell above or to the right.
//   - The first path cell is the rounded first endpoint, the last path cell
//     the rounded second endpoint. Consecutive cells are 8-adjacent.
//   - A segment meeting a row boundary exactly where it leaves a column is a
//     corner crossing: it moves diagonally, skipping the two cells that only
//     touch it at the corner. One of those two may be land; both may not.
//
// Symmetry:
//
//	Endpoints are reordered so the walk always runs towards +x, and the path
//	is reversed once at the end if they were swapped. Trace(a, b) therefore
//	succeeds exactly when Trace(b, a) does, and the paths mirror each other.
//
// Errors:
//
//   - ErrNoPath: the segment touches land. The concrete error is a
//     *BlockedError naming the cell and the reason.
//   - ErrNilWaterFunc: no classification was supplied.
//
// Complexity: O(Chebyshev length) time; O(path length) memory for Trace and
// O(1) for OnWater.
package linetrace
