package imaging

import (
	"image/color"
	"testing"

	"github.com/sachaMorin/apriltag/internal/geom"
)

func TestDrawDetections(t *testing.T) {
	src := createUniformImage(100, 100, color.White)
	outlines := [][4]geom.Point{
		{{X: 10, Y: 90}, {X: 90, Y: 90}, {X: 90, Y: 10}, {X: 10, Y: 10}},
	}

	out := DrawDetections(src, outlines)
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: got %v, want %v", out.Bounds(), src.Bounds())
	}

	// The top edge of the outline runs along y=10.
	marked := false
	for x := 10; x <= 90; x++ {
		c := out.NRGBAAt(x, 10)
		if c.R != 255 || c.G != 255 || c.B != 255 {
			marked = true
			break
		}
	}
	if !marked {
		t.Error("no outline pixels drawn along the quad's top edge")
	}

	// Pixels well inside the quad stay untouched.
	if c := out.NRGBAAt(50, 50); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("interior pixel modified: got %v", c)
	}
}

func TestDrawDetections_OutlineOutsideImage(t *testing.T) {
	src := createUniformImage(20, 20, color.White)
	outlines := [][4]geom.Point{
		{{X: -10, Y: 30}, {X: 30, Y: 30}, {X: 30, Y: -10}, {X: -10, Y: -10}},
	}

	// Must clip, not panic.
	out := DrawDetections(src, outlines)
	if out == nil {
		t.Fatal("DrawDetections returned nil")
	}
}
