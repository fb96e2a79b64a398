package detect

import (
	"math"
	"strings"
	"testing"
)

const graphJSON = `[
  {"id": 1, "x0": 0, "y0": 100, "x1": 100, "y1": 100, "theta": 0, "children": [2]},
  {"id": 2, "x0": 100, "y0": 100, "x1": 100, "y1": 0, "theta": -1.5707963, "length": 100, "children": [3]},
  {"id": 3, "x0": 100, "y0": 0, "x1": 0, "y1": 0, "theta": 3.1415926, "children": [4]},
  {"id": 4, "x0": 0, "y0": 0, "x1": 0, "y1": 100, "theta": 1.5707963, "children": [1]}
]`

func TestLoadSegments(t *testing.T) {
	segs, err := LoadSegments(strings.NewReader(graphJSON))
	if err != nil {
		t.Fatalf("LoadSegments failed: %v", err)
	}
	if len(segs) != 4 {
		t.Fatalf("segments: got %d, want 4", len(segs))
	}

	// Children resolve to the actual segment instances.
	for i, s := range segs {
		if len(s.Children) != 1 {
			t.Fatalf("segment %d children: got %d, want 1", i, len(s.Children))
		}
		if s.Children[0] != segs[(i+1)%4] {
			t.Errorf("segment %d child not resolved to segment %d", i, (i+1)%4)
		}
	}

	// Omitted length is derived from the endpoints.
	if math.Abs(segs[0].Length-100) > 1e-9 {
		t.Errorf("derived length: got %v, want 100", segs[0].Length)
	}
	if math.Abs(segs[1].Length-100) > 1e-9 {
		t.Errorf("explicit length: got %v, want 100", segs[1].Length)
	}
}

func TestLoadSegments_FeedsSearch(t *testing.T) {
	segs, err := LoadSegments(strings.NewReader(graphJSON))
	if err != nil {
		t.Fatalf("LoadSegments failed: %v", err)
	}

	quads := searchEveryRoot(segs, Options{})
	if len(quads) != 1 {
		t.Errorf("quads from loaded graph: got %d, want 1", len(quads))
	}
}

func TestLoadSegments_UnknownChild(t *testing.T) {
	in := `[{"id": 1, "x0": 0, "y0": 0, "x1": 1, "y1": 0, "theta": 0, "children": [99]}]`
	if _, err := LoadSegments(strings.NewReader(in)); err == nil {
		t.Error("expected error for unknown child id")
	}
}

func TestLoadSegments_DuplicateID(t *testing.T) {
	in := `[
	  {"id": 1, "x0": 0, "y0": 0, "x1": 1, "y1": 0, "theta": 0},
	  {"id": 1, "x0": 0, "y0": 1, "x1": 1, "y1": 1, "theta": 0}
	]`
	if _, err := LoadSegments(strings.NewReader(in)); err == nil {
		t.Error("expected error for duplicate segment id")
	}
}

func TestLoadSegments_BadJSON(t *testing.T) {
	if _, err := LoadSegments(strings.NewReader("{not json")); err == nil {
		t.Error("expected error for malformed input")
	}
}
