package export

import (
	"strings"
	"testing"
)

func TestHeatmapSVG(t *testing.T) {
	rows := [][]float64{
		{0, 0, 1.0},
		{1, 0, 2.0},
		{0, 1, 3.0},
		{1, 1, 4.0},
	}

	svg := HeatmapSVG(rows, 2, 2, 2, 10)
	if svg == "" {
		t.Fatal("expected non-empty SVG")
	}
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if strings.Count(svg, "<rect") != 5 { // 4 cells + background
		t.Errorf("expected 5 rects, got %d", strings.Count(svg, "<rect"))
	}
}

func TestHeatmapSVGRejectsBadShape(t *testing.T) {
	if HeatmapSVG([][]float64{{0, 0, 1}}, 2, 2, 2, 10) != "" {
		t.Error("expected empty output for row/grid mismatch")
	}
}

func TestCurveSVG(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 0, -1}

	svg := CurveSVG(xs, ys, 200, 100, "#00ff00")
	if !strings.Contains(svg, "<path") {
		t.Error("expected a path element")
	}

	if CurveSVG(xs[:1], ys[:1], 200, 100, "#00ff00") != "" {
		t.Error("expected empty output for a single point")
	}
}
