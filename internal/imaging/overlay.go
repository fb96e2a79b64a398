package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/sachaMorin/apriltag/internal/geom"
)

// DrawDetections renders quad outlines over a copy of src and returns the
// annotated image. Each outline gets its own hue so overlapping or adjacent
// detections stay distinguishable; corners are marked with small crosses.
func DrawDetections(src image.Image, outlines [][4]geom.Point) *image.NRGBA {
	out := imaging.Clone(src)

	for i, quad := range outlines {
		// Golden-angle hue stepping keeps consecutive outlines far
		// apart on the color wheel.
		hue := math.Mod(float64(i)*137.5, 360)
		r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
		c := color.NRGBA{R: r, G: g, B: b, A: 255}

		for j := 0; j < 4; j++ {
			drawLine(out, quad[j], quad[(j+1)%4], c)
		}
		for _, p := range quad {
			drawCross(out, p, c)
		}
	}
	return out
}

// drawLine draws a 1px line between two sub-pixel points using Bresenham's
// algorithm on the rounded endpoints.
func drawLine(img *image.NRGBA, from, to geom.Point, c color.NRGBA) {
	x0 := int(math.Round(from.X))
	y0 := int(math.Round(from.Y))
	x1 := int(math.Round(to.X))
	y1 := int(math.Round(to.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		setIfInside(img, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawCross marks a corner with a 5px cross.
func drawCross(img *image.NRGBA, p geom.Point, c color.NRGBA) {
	x := int(math.Round(p.X))
	y := int(math.Round(p.Y))
	for d := -2; d <= 2; d++ {
		setIfInside(img, x+d, y, c)
		setIfInside(img, x, y+d, c)
	}
}

func setIfInside(img *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
