// Package geom provides the small set of 2D geometric primitives used by
// quad detection: points, infinite lines through segment endpoints, line-line
// intersection, Euclidean distance, and angle normalization.
//
// # Coordinate System
//
// Coordinates follow the standard image convention: origin at the top-left,
// X increases rightward, Y increases downward. All values are sub-pixel
// float64 coordinates.
//
// # Degenerate Intersections
//
// Intersect reports failure explicitly through its second return value rather
// than through a sentinel coordinate, so callers can distinguish "lines are
// parallel" from a legitimate intersection near any particular coordinate.
package geom
