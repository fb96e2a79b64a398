package detect

import (
	"github.com/sachaMorin/apriltag/internal/geom"
	"github.com/sachaMorin/apriltag/internal/imaging"
)

// Code is a decoded tag codeword of width dimensionBits². Code 0 together
// with a false ok result signals a failed decode; a true ok result with
// code 0 is a legitimately all-zero payload.
type Code uint64

// Quad is a validated closed loop of four segments: a candidate tag boundary
// with sub-pixel corners. Corner insertion order defines the quad's winding;
// a Quad is immutable once built.
type Quad struct {
	// Corners are the four sub-pixel corner points in winding order.
	Corners [4]geom.Point

	// Segments are the four contributing segments, shared read-only with
	// the upstream graph.
	Segments [4]*Segment

	// ObsPerimeter is the summed length of the contributing segments.
	// It measures detection support, not the polygon's geometric
	// perimeter.
	ObsPerimeter float64

	// Precomputed interpolation basis: first and fourth corner plus the
	// two edge vectors spanning the quad.
	p0, p3, p01, p32 geom.Point
}

// NewQuad builds a quad from four corner points.
func NewQuad(corners [4]geom.Point) *Quad {
	return &Quad{
		Corners: corners,
		p0:      corners[0],
		p3:      corners[3],
		p01:     corners[1].Sub(corners[0]),
		p32:     corners[2].Sub(corners[3]),
	}
}

// Interpolate maps normalized tag-local coordinates u, v in [-1, 1] to image
// space by bilinear blending of the quad's corners. This is a first-order
// approximation of the true perspective mapping; sample points are dense
// relative to local curvature, so the error stays below a cell.
func (q *Quad) Interpolate(u, v float64) geom.Point {
	kx := (u + 1) / 2
	ky := (v + 1) / 2
	r1 := q.p0.Add(q.p01.Scale(kx))
	r2 := q.p3.Add(q.p32.Scale(kx))
	return r1.Add(r2.Sub(r1).Scale(ky))
}

// Interpolate01 is Interpolate rescaled to u, v in [0, 1].
func (q *Quad) Interpolate01(u, v float64) geom.Point {
	return q.Interpolate(2*u-1, 2*v-1)
}

// Border-cell predicates over the virtual (lb+2) x (lb+2) grid indexed
// -1..lb. The outer ring lies just outside the tag, the inner ring is the
// outermost black ring of the tag itself.

func insideInnerBorder(xb, yb, lb int) bool {
	return xb >= 1 && yb >= 1 && xb < lb-1 && yb < lb-1
}

func onOuterBorder(xb, yb, lb int) bool {
	return xb == -1 || yb == -1 || xb == lb || yb == lb
}

func onInnerBorder(xb, yb, lb int) bool {
	return xb == 0 || yb == 0 || xb == lb-1 || yb == lb-1
}

// MakeGrayModel samples the two border rings of the tag and fits the
// illumination model. lb is the full tag side length in cells, including the
// black border. Samples that land outside the image are skipped; the fit
// degrades gracefully with fewer samples.
func (q *Quad) MakeGrayModel(im *imaging.FloatImage, lb int) *GrayModel {
	model := &GrayModel{}

	for yb := -1; yb <= lb; yb++ {
		yn := (float64(yb) + 0.5) / float64(lb)
		for xb := -1; xb <= lb; xb++ {
			// Payload cells are decoded, not sampled here.
			if insideInnerBorder(xb, yb, lb) {
				continue
			}

			xn := (float64(xb) + 0.5) / float64(lb)
			p := q.Interpolate01(xn, yn)
			xi := int(p.X + 0.5)
			yi := int(p.Y + 0.5)
			if !im.InBounds(xi, yi) {
				continue
			}

			v := im.At(xi, yi)
			if onOuterBorder(xb, yb, lb) {
				model.AddWhiteObs(xn, yn, v)
			} else if onInnerBorder(xb, yb, lb) {
				model.AddBlackObs(xn, yn, v)
			}
		}
	}

	model.Fit()
	return model
}

// DecodePayload samples the dimensionBits x dimensionBits payload grid and
// assembles the codeword, top payload row first, left to right, first bit in
// the most significant position. Any sample outside the image aborts the
// decode: the result is (0, false), never a partial codeword.
func (q *Quad) DecodePayload(im *imaging.FloatImage, model *GrayModel, dimensionBits, blackBorder int) (Code, bool) {
	lb := 2*blackBorder + dimensionBits

	var code Code
	for yb := dimensionBits - 1; yb >= 0; yb-- {
		yn := (float64(blackBorder+yb) + 0.5) / float64(lb)
		for xb := 0; xb < dimensionBits; xb++ {
			xn := (float64(blackBorder+xb) + 0.5) / float64(lb)

			p := q.Interpolate01(xn, yn)
			xi := int(p.X + 0.5)
			yi := int(p.Y + 0.5)
			if !im.InBounds(xi, yi) {
				return 0, false
			}

			threshold := model.CalcThreshold(xn, yn)
			code <<= 1
			if im.At(xi, yi) > threshold {
				code |= 1
			}
		}
	}
	return code, true
}

// ToTagCode decodes the quad's interior bit grid from the image: it fits the
// gray model from the border rings and thresholds the payload cells. This is
// the single public decode entry point.
func (q *Quad) ToTagCode(im *imaging.FloatImage, dimensionBits, blackBorder int) (Code, bool) {
	lb := 2*blackBorder + dimensionBits
	model := q.MakeGrayModel(im, lb)
	return q.DecodePayload(im, model, dimensionBits, blackBorder)
}
