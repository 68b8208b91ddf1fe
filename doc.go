// Package seaway maps geographic positions onto a rectangular grid of water
// and land cells and decides whether a straight segment between two grid
// locations stays on water.
//
// It is the movement substrate of an agent-based whale simulation: agents
// live in longitude/latitude, the world is a discretized map, and a move is
// only legal when every cell the straight line touches is water.
//
// Packages:
//
//	geodesy/   — degree spans to km, GridExtent, Project / CellFor / Unproject
//	linetrace/ — Trace and OnWater: exact cell walk of a segment, water only
//	watermask/ — land/water mask from integer values or ASCII rows, water bodies
//	navigator/ — one extent + one mask behind a single query surface, with metrics
//	config/    — viper-backed world and logging configuration
//	logging/   — slog setup
//	cmd/seaway — command-line queries against a configured world
//
// Quick ASCII example (north up, '#' is land):
//
//	. . # .
//	. . # .
//	A . . B
//
// A→B runs along the bottom row and is on water; the segment from the
// top-left cell to B crosses the wall and is not.
//
//	go get github.com/orcasim/seaway
package seaway
