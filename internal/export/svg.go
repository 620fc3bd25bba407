package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/chargebox/internal/particle"
)

// TrajectoryToSVG draws one particle's path through the arena. Physical
// coordinates map linearly onto the image, y flipped so up is up.
func TrajectoryToSVG(points []particle.Vec2, arenaW, arenaH float64, width, height int, strokeColor string) string {
	if len(points) < 2 || arenaW <= 0 || arenaH <= 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := p.X / arenaW * float64(width)
		y := float64(height) - p.Y/arenaH*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// FrameToSVG draws one snapshot of the whole population as filled circles,
// matching what an on-screen renderer would show.
func FrameToSVG(frame []particle.Vec2, arenaW, arenaH float64, width, height int, fillColor string) string {
	if len(frame) == 0 || arenaW <= 0 || arenaH <= 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s">
`, width, height, width, height, fillColor))

	for _, p := range frame {
		cx := p.X / arenaW * float64(width)
		cy := float64(height) - p.Y/arenaH*float64(height)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4"/>
`, cx, cy))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
