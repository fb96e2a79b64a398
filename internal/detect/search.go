package detect

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sachaMorin/apriltag/internal/geom"
)

// Default geometric validation thresholds.
const (
	defaultMinEdgeLength  = 6.0
	defaultMaxAspectRatio = 32.0
)

// Options control geometric validation of candidate quads. The zero value
// selects the defaults.
type Options struct {
	// MinEdgeLength rejects quads with any edge or diagonal shorter than
	// this many pixels.
	MinEdgeLength float64

	// MaxAspectRatio rejects quads whose longest edge exceeds the
	// shortest edge by more than this factor.
	MaxAspectRatio float64
}

func (o Options) withDefaults() Options {
	if o.MinEdgeLength <= 0 {
		o.MinEdgeLength = defaultMinEdgeLength
	}
	if o.MaxAspectRatio <= 0 {
		o.MaxAspectRatio = defaultMaxAspectRatio
	}
	return o
}

// Search enumerates all valid closed 4-cycles reachable from root and
// returns them as quads. The enumeration visits every child path; it is not
// a first-match search. Each physical quad could be discovered from four
// different starting corners, so the search only follows children whose
// orientation angle does not exceed the root's: of the four rotations of a
// cycle, exactly the one starting at the maximal-theta segment survives.
func Search(root *Segment, opts Options) []*Quad {
	opts = opts.withDefaults()

	path := make([]*Segment, 1, 5)
	path[0] = root

	var quads []*Quad
	searchStep(path, root, &quads, opts)
	return quads
}

// searchStep recurses with an appended-to path slice; the path's length
// tracks the search depth, and each call only ever reads its own prefix.
func searchStep(path []*Segment, parent *Segment, quads *[]*Quad, opts Options) {
	if len(path) == 5 {
		// The loop closes only on the identical segment instance.
		if path[4] != path[0] {
			return
		}
		if q, ok := buildQuad(path, opts); ok {
			*quads = append(*quads, q)
		}
		return
	}

	for _, child := range parent.Children {
		if child.Theta > path[0].Theta {
			continue
		}
		searchStep(append(path, child), child, quads, opts)
	}
}

// buildQuad runs the validation pipeline on a closed path: sub-pixel corner
// intersections, winding, size, and aspect ratio. Each stage short-circuits
// on failure.
func buildQuad(path []*Segment, opts Options) (*Quad, bool) {
	var corners [4]geom.Point
	perimeter := 0.0
	bad := false
	for i := 0; i < 4; i++ {
		p, ok := geom.Intersect(path[i].Line(), path[i+1].Line())
		if !ok {
			// Nearly parallel consecutive segments.
			bad = true
		}
		corners[i] = p
		perimeter += path[i].Length
	}
	if bad {
		return nil, false
	}

	// A simple, correctly wound quadrilateral turns through exactly -2*pi.
	// The wide band tolerates interpolation and intersection noise while
	// still excluding hourglass loops and opposite winding.
	var t [4]float64
	for i := range t {
		d := corners[(i+1)%4].Sub(corners[i])
		t[i] = math.Atan2(d.Y, d.X)
	}
	ttheta := geom.Mod2Pi(t[1]-t[0]) + geom.Mod2Pi(t[2]-t[1]) +
		geom.Mod2Pi(t[3]-t[2]) + geom.Mod2Pi(t[0]-t[3])
	if ttheta < -7 || ttheta > -5 {
		return nil, false
	}

	d := [6]float64{
		geom.Distance(corners[0], corners[1]),
		geom.Distance(corners[1], corners[2]),
		geom.Distance(corners[2], corners[3]),
		geom.Distance(corners[3], corners[0]),
		geom.Distance(corners[0], corners[2]),
		geom.Distance(corners[1], corners[3]),
	}
	for _, dist := range d {
		if dist < opts.MinEdgeLength {
			return nil, false
		}
	}

	dmax := math.Max(math.Max(d[0], d[1]), math.Max(d[2], d[3]))
	dmin := math.Min(math.Min(d[0], d[1]), math.Min(d[2], d[3]))
	if dmax > dmin*opts.MaxAspectRatio {
		return nil, false
	}

	q := NewQuad(corners)
	copy(q.Segments[:], path[:4])
	q.ObsPerimeter = perimeter
	return q, true
}

// SearchAll runs the quad search from every segment in the graph, sharding
// starting segments across workers. Segments and the graph are read-only
// during the search; each shard collects into a local slice and the results
// are merged once the group completes. Cancelling ctx stops the search early
// with ctx's error.
func SearchAll(ctx context.Context, segments []*Segment, workers int, opts Options) ([]*Quad, error) {
	opts = opts.withDefaults()
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(segments) && len(segments) > 0 {
		workers = len(segments)
	}

	results := make([][]*Quad, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			var local []*Quad
			for i := w; i < len(segments); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				local = append(local, Search(segments[i], opts)...)
			}
			results[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*Quad
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
