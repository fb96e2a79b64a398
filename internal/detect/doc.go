// Package detect implements the quad-detection and decoding core of a visual
// fiducial-tag detector.
//
// The package consumes a forest of line segments produced by an upstream
// extractor (with parent/child ordering and handedness already resolved) and
// a grayscale image, and produces candidate tag boundaries ("quads") with
// sub-pixel corners plus the codeword decoded from each quad's interior bit
// grid.
//
// # Pipeline
//
//  1. Search: a depth-bounded backtracking search over the segment forest
//     enumerates closed 4-cycles, computes sub-pixel corners from line
//     intersections, and rejects loops that are wound wrong, self-intersect,
//     are too small, or are too skewed.
//  2. Gray model: brightness samples from the two border rings around the
//     code region are fitted to two planar illumination models, giving a
//     per-location black/white decision threshold that adapts to lighting
//     gradients across the tag face.
//  3. Decode: payload cells are sampled through a bilinear tag-to-image
//     mapping and thresholded into a codeword, most-significant bit first.
//
// Mapping a codeword to a tag identity (tag-family lookup, error correction)
// and pose estimation are out of scope; callers consume the raw codeword.
//
// # Failure Model
//
// Nothing in this package panics on malformed geometry. Degenerate corner
// intersections, invalid loops, and out-of-bounds samples reject the affected
// candidate and the search or decode moves on.
package detect
