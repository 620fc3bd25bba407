package export

import (
	"strings"
	"testing"

	"github.com/san-kum/chargebox/internal/particle"
)

func TestTrajectoryToSVG(t *testing.T) {
	points := []particle.Vec2{
		{X: 0.01, Y: 0.02},
		{X: 0.05, Y: 0.04},
		{X: 0.09, Y: 0.07},
	}

	svg := TrajectoryToSVG(points, 0.1, 0.08, 800, 640, "#00ff00")

	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "<path") {
		t.Error("expected svg with a path element")
	}
	if !strings.Contains(svg, "#00ff00") {
		t.Error("stroke color not applied")
	}
}

func TestTrajectoryToSVG_TooFewPoints(t *testing.T) {
	if svg := TrajectoryToSVG([]particle.Vec2{{X: 1, Y: 1}}, 0.1, 0.08, 800, 640, "#fff"); svg != "" {
		t.Error("expected empty output for a single point")
	}
}

func TestFrameToSVG(t *testing.T) {
	frame := []particle.Vec2{
		{X: 0.05, Y: 0.04},
		{X: 0.02, Y: 0.01},
	}

	svg := FrameToSVG(frame, 0.1, 0.08, 800, 640, "#ffff00")

	if strings.Count(svg, "<circle") != 2 {
		t.Errorf("expected 2 circles, got %d", strings.Count(svg, "<circle"))
	}
}

func TestFrameToSVG_Empty(t *testing.T) {
	if svg := FrameToSVG(nil, 0.1, 0.08, 800, 640, "#fff"); svg != "" {
		t.Error("expected empty output for empty frame")
	}
}
