package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

// FloatImage is a 2D raster of float64 brightness values.
//
// It is the working representation for gray-model fitting and payload
// decoding: detection only ever asks "is (x, y) in bounds" and "what is the
// brightness at (x, y)". Values produced by FromImage are luminance in [0, 1].
type FloatImage struct {
	width  int
	height int
	pix    []float64
}

// NewFloatImage allocates a zero-filled image of the given dimensions.
func NewFloatImage(width, height int) *FloatImage {
	return &FloatImage{
		width:  width,
		height: height,
		pix:    make([]float64, width*height),
	}
}

// Width returns the image width in pixels.
func (f *FloatImage) Width() int { return f.width }

// Height returns the image height in pixels.
func (f *FloatImage) Height() int { return f.height }

// InBounds reports whether (x, y) addresses a pixel inside the image.
func (f *FloatImage) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// At returns the brightness at (x, y). The coordinate must be in bounds.
func (f *FloatImage) At(x, y int) float64 {
	return f.pix[y*f.width+x]
}

// Set stores the brightness v at (x, y). The coordinate must be in bounds.
func (f *FloatImage) Set(x, y int, v float64) {
	f.pix[y*f.width+x] = v
}

// FromImage converts a decoded image to a normalized grayscale FloatImage.
//
// Parameters:
//   - img: Source image (color or grayscale).
//   - blurSigma: Standard deviation of an optional Gaussian pre-blur applied
//     before conversion. Zero or negative disables blurring. A small blur
//     (0.8-1.0) suppresses sensor noise that would otherwise land next to
//     the decision threshold of marginal payload cells.
//
// The conversion uses luminance-weighted grayscale, so colored tag
// backgrounds threshold the same way a grayscale capture would.
func FromImage(img image.Image, blurSigma float64) *FloatImage {
	if blurSigma > 0 {
		img = blur.Gaussian(img, blurSigma)
	}
	gray := effect.Grayscale(img)

	bounds := gray.Bounds()
	out := NewFloatImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			c := gray.RGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			out.Set(x, y, float64(c.R)/255.0)
		}
	}
	return out
}
