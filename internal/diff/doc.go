// Package diff models a line-level comparison between two texts and groups
// it into context-windowed hunks for display.
//
// A comparison is an ordered sequence of LineOp values (removed, added,
// unchanged) in document order. ExtractHunks keeps up to a configurable
// number of unchanged lines around every change and drops unchanged
// stretches that are farther away, producing the familiar hunked view of
// a unified diff.
package diff
