package export

import (
	"fmt"
	"strings"
)

// HeatmapSVG renders one column of a sampled nx-by-ny grid as an SVG
// heatmap. Rows holds x, y, then data columns; col indexes into the
// full row (so the first data column is 2).
func HeatmapSVG(rows [][]float64, nx, ny, col, cellSize int) string {
	if len(rows) != nx*ny || nx == 0 || ny == 0 {
		return ""
	}

	// Find value bounds
	minV, maxV := rows[0][col], rows[0][col]
	for _, row := range rows {
		if row[col] < minV {
			minV = row[col]
		}
		if row[col] > maxV {
			maxV = row[col]
		}
	}
	rangeV := maxV - minV
	if rangeV == 0 {
		rangeV = 1
	}

	width := nx * cellSize
	height := ny * cellSize

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v := rows[j*nx+i][col]
			t := (v - minV) / rangeV

			// cold-to-hot ramp: blue through dark to orange
			r := int(255 * t)
			b := int(255 * (1 - t))
			g := int(80 * t)

			// SVG y grows downward; sample rows grow with y
			py := (ny - 1 - j) * cellSize
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="rgb(%d,%d,%d)"/>
`, i*cellSize, py, cellSize, cellSize, r, g, b))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CurveSVG renders a single sampled curve as an SVG polyline, used
// for exporting 1-D slices.
func CurveSVG(xs, ys []float64, width, height int, strokeColor string) string {
	if len(xs) < 2 || len(xs) != len(ys) {
		return ""
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := range xs {
		px := (xs[i] - minX) / rangeX * float64(width)
		py := float64(height) - (ys[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
