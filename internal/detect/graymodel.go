package detect

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// observation is one brightness sample in normalized tag coordinates.
type observation struct {
	x, y, v float64
}

// plane is a planar brightness function v = a*x + b*y + c over normalized
// tag coordinates.
type plane struct {
	a, b, c float64
}

func (p plane) eval(x, y float64) float64 {
	return p.a*x + p.b*y + p.c
}

// GrayModel models the illumination across a tag face. Brightness samples
// from the white (outer) and black (inner) border rings are fitted to two
// independent planes; the midpoint of the two planes at a query point is the
// local black/white decision threshold.
//
// Fit must be called once after all observations are added and before any
// CalcThreshold query.
type GrayModel struct {
	white []observation
	black []observation

	whitePlane plane
	blackPlane plane
}

// AddWhiteObs records a brightness sample from the outer (white) border ring.
func (m *GrayModel) AddWhiteObs(x, y, v float64) {
	m.white = append(m.white, observation{x, y, v})
}

// AddBlackObs records a brightness sample from the inner (black) border ring.
func (m *GrayModel) AddBlackObs(x, y, v float64) {
	m.black = append(m.black, observation{x, y, v})
}

// Fit least-squares fits both planes. Degenerate sample sets (too few
// samples, or a geometry the solver rejects) fall back to a constant plane
// at the mean observed brightness, or zero with no samples at all.
func (m *GrayModel) Fit() {
	m.whitePlane = fitPlane(m.white)
	m.blackPlane = fitPlane(m.black)
}

// CalcThreshold returns the black/white decision boundary at the normalized
// coordinate (x, y).
func (m *GrayModel) CalcThreshold(x, y float64) float64 {
	return (m.whitePlane.eval(x, y) + m.blackPlane.eval(x, y)) / 2
}

// fitPlane solves the least-squares system [x y 1] * [a b c]^T = v by QR
// factorization.
func fitPlane(obs []observation) plane {
	if len(obs) < 3 {
		return plane{c: meanBrightness(obs)}
	}

	a := mat.NewDense(len(obs), 3, nil)
	b := mat.NewVecDense(len(obs), nil)
	for i, o := range obs {
		a.Set(i, 0, o.x)
		a.Set(i, 1, o.y)
		a.Set(i, 2, 1)
		b.SetVec(i, o.v)
	}

	var qr mat.QR
	qr.Factorize(a)

	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, b); err != nil {
		// Rank-deficient sample geometry (e.g. collinear samples).
		return plane{c: meanBrightness(obs)}
	}
	return plane{a: coef.AtVec(0), b: coef.AtVec(1), c: coef.AtVec(2)}
}

func meanBrightness(obs []observation) float64 {
	if len(obs) == 0 {
		return 0
	}
	vs := make([]float64, len(obs))
	for i, o := range obs {
		vs[i] = o.v
	}
	return stat.Mean(vs, nil)
}
