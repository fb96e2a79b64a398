package detect

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sachaMorin/apriltag/internal/geom"
)

// Segment is a straight edge detected by the upstream segment extractor.
//
// Children lists the plausible next edges in a fixed-handedness traversal,
// ordered by the extractor. The segment graph owns all segments; detection
// holds non-owning references, so the graph must outlive any Quad derived
// from it.
type Segment struct {
	X0, Y0 float64 // first endpoint
	X1, Y1 float64 // second endpoint
	Theta  float64 // orientation angle in radians
	Length float64 // extractor-observed length in pixels

	Children []*Segment
}

// Line returns the infinite line through the segment's endpoints.
func (s *Segment) Line() geom.Line {
	return geom.LineThrough(geom.Point{X: s.X0, Y: s.Y0}, geom.Point{X: s.X1, Y: s.Y1})
}

// SegmentRecord is the wire form of one segment in a graph file. Children
// reference other records by id.
type SegmentRecord struct {
	ID       int     `json:"id"`
	X0       float64 `json:"x0"`
	Y0       float64 `json:"y0"`
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	Theta    float64 `json:"theta"`
	Length   float64 `json:"length,omitempty"`
	Children []int   `json:"children,omitempty"`
}

// LoadSegments decodes a JSON segment-graph array and resolves child
// references into segment pointers. A record with no length gets the
// Euclidean distance between its endpoints.
func LoadSegments(r io.Reader) ([]*Segment, error) {
	var records []SegmentRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse segment graph: %w", err)
	}

	byID := make(map[int]*Segment, len(records))
	segments := make([]*Segment, len(records))
	for i, rec := range records {
		if _, dup := byID[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate segment id %d", rec.ID)
		}
		s := &Segment{
			X0:     rec.X0,
			Y0:     rec.Y0,
			X1:     rec.X1,
			Y1:     rec.Y1,
			Theta:  rec.Theta,
			Length: rec.Length,
		}
		if s.Length == 0 {
			s.Length = geom.Distance(geom.Point{X: s.X0, Y: s.Y0}, geom.Point{X: s.X1, Y: s.Y1})
		}
		byID[rec.ID] = s
		segments[i] = s
	}

	for i, rec := range records {
		for _, childID := range rec.Children {
			child, ok := byID[childID]
			if !ok {
				return nil, fmt.Errorf("segment %d references unknown child %d", rec.ID, childID)
			}
			segments[i].Children = append(segments[i].Children, child)
		}
	}
	return segments, nil
}
