// Package imaging provides the raster support for quad detection and
// decoding: a float-valued grayscale image type, conversion from standard Go
// images, file loading, and rendering of detection overlays.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Brightness Representation
//
// FloatImage stores one float64 brightness value per pixel, normalized to
// [0, 1] when built through FromImage. Decoding compares these values against
// an adaptive threshold fitted from the same image, so any consistent scale
// works as long as model fitting and payload sampling read the same raster.
//
// # Thread Safety
//
// A FloatImage is safe for concurrent reads once populated. The detection
// pipeline never mutates an image after conversion; writers must not race
// with readers.
package imaging
