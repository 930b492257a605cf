package main

import (
	"fmt"
	"math"
	"strings"
)

// ──────────────────────────── Projection ────────────────────────────

// Camera for the orthographic sphere view, in radians. Matches the
// default 3-D view of the reference plots (azimuth -60°, elevation 30°).
var (
	viewAzimuth   = -60 * math.Pi / 180
	viewElevation = 30 * math.Pi / 180
)

// projectView maps a Bloch vector to screen-plane coordinates, both in
// [-1, 1] for unit vectors. +sy is up, +sx is right.
func projectView(v BlochVector) (sx, sy float64) {
	sinAz, cosAz := math.Sincos(viewAzimuth)
	sinEl, cosEl := math.Sincos(viewElevation)
	sx = -sinAz*v.X + cosAz*v.Y
	sy = -cosAz*sinEl*v.X - sinAz*sinEl*v.Y + cosEl*v.Z
	return sx, sy
}

// toCell converts screen-plane coordinates to canvas cell indices. The
// vertical radius is smaller than the horizontal one to offset the 1:2
// aspect of terminal cells.
func toCell(sx, sy float64) (col, row int) {
	col = sphereCX + int(math.Round(sx*plotRadiusX))
	row = sphereCY - int(math.Round(sy*plotRadiusY))
	return col, row
}

// ──────────────────────────── Canvas ────────────────────────────

// Color codes for canvas cells. Non-negative codes index the step palette.
const (
	colorNone = -1
	colorDim  = -2
	colorAxis = -3
)

// canvas is a rune grid with a parallel per-cell color code grid.
type canvas struct {
	runes  [][]rune
	colors [][]int
	w, h   int
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h}
	c.runes = make([][]rune, h)
	c.colors = make([][]int, h)
	for row := 0; row < h; row++ {
		c.runes[row] = make([]rune, w)
		c.colors[row] = make([]int, w)
		for col := 0; col < w; col++ {
			c.runes[row][col] = ' '
			c.colors[row][col] = colorNone
		}
	}
	return c
}

// set places a rune, silently dropping out-of-bounds cells.
func (c *canvas) set(col, row int, r rune, color int) {
	if col < 0 || col >= c.w || row < 0 || row >= c.h {
		return
	}
	c.runes[row][col] = r
	c.colors[row][col] = color
}

// setString places a string horizontally starting at (col, row).
func (c *canvas) setString(col, row int, s string, color int) {
	for i, r := range []rune(s) {
		c.set(col+i, row, r, color)
	}
}

// render flattens the canvas to text. With styled set, runs of equally
// colored cells are wrapped in their lipgloss style; otherwise the output
// is plain text with no escape sequences.
func (c *canvas) render(styled bool) string {
	var sb strings.Builder
	for row := 0; row < c.h; row++ {
		line := strings.TrimRight(string(c.runes[row]), " ")
		if !styled {
			sb.WriteString(line)
		} else {
			runes := []rune(line)
			for col := 0; col < len(runes); {
				color := c.colors[row][col]
				start := col
				for col < len(runes) && c.colors[row][col] == color {
					col++
				}
				chunk := string(runes[start:col])
				switch {
				case color >= 0:
					sb.WriteString(stepPalette[color%len(stepPalette)].Render(chunk))
				case color == colorDim:
					sb.WriteString(dimStyle.Render(chunk))
				case color == colorAxis:
					sb.WriteString(axisStyle.Render(chunk))
				default:
					sb.WriteString(chunk)
				}
			}
		}
		if row < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ──────────────────────────── Sphere rendering ────────────────────────────

// RenderSphere draws the vectors on an orthographic Bloch sphere grid.
// Markers are colored by step; the highlight index additionally gets a ray
// from the origin and a filled marker. highlight < 0 selects the last
// vector. With styled unset the output carries no ANSI escapes.
func RenderSphere(vectors []BlochVector, highlight int, styled bool) string {
	c := newCanvas(sphereW, sphereH)

	drawSilhouette(c)
	drawEquator(c)
	drawAxisLabels(c)

	if highlight < 0 || highlight >= len(vectors) {
		highlight = len(vectors) - 1
	}

	for i, v := range vectors {
		if i == highlight {
			continue
		}
		col, row := toCell(projectView(v))
		c.set(col, row, '○', i)
	}

	if len(vectors) > 0 {
		v := vectors[highlight]
		drawRay(c, v, highlight)
		col, row := toCell(projectView(v))
		c.set(col, row, '●', highlight)
	}

	return c.render(styled)
}

// drawSilhouette draws the unit-circle outline of the sphere.
func drawSilhouette(c *canvas) {
	for t := 0.0; t < 2*math.Pi; t += 0.01 {
		col, row := toCell(math.Cos(t), math.Sin(t))
		c.set(col, row, '·', colorDim)
	}
}

// drawEquator draws the projected z=0 great circle, dashed.
func drawEquator(c *canvas) {
	for u := 0.0; u < 2*math.Pi; u += 0.02 {
		// Dash pattern: drop every other arc segment.
		if int(u/0.25)%2 == 1 {
			continue
		}
		col, row := toCell(projectView(BlochVector{X: math.Cos(u), Y: math.Sin(u)}))
		c.set(col, row, '·', colorAxis)
	}
}

// drawAxisLabels places the six axis labels just outside the sphere.
func drawAxisLabels(c *canvas) {
	axes := []struct {
		label string
		v     BlochVector
	}{
		{"+x", BlochVector{X: 1}},
		{"-x", BlochVector{X: -1}},
		{"+y", BlochVector{Y: 1}},
		{"-y", BlochVector{Y: -1}},
		{"+z", BlochVector{Z: 1}},
		{"-z", BlochVector{Z: -1}},
	}
	for _, axis := range axes {
		sx, sy := projectView(axis.v)
		col, row := toCell(sx*axisLabelScale, sy*axisLabelScale)
		c.setString(col-1, row, axis.label, colorAxis)
	}
}

// drawRay draws a dotted ray from the origin to the vector's cell.
func drawRay(c *canvas, v BlochVector, color int) {
	tipCol, tipRow := toCell(projectView(v))
	dc := tipCol - sphereCX
	dr := tipRow - sphereCY
	steps := max(abs(dc), abs(dr))
	for k := 1; k < steps; k++ {
		col := sphereCX + int(math.Round(float64(dc)*float64(k)/float64(steps)))
		row := sphereCY + int(math.Round(float64(dr)*float64(k)/float64(steps)))
		c.set(col, row, '∙', color)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ──────────────────────────── Numeric readout ────────────────────────────

// formatAmplitude renders a complex amplitude as "+0.7071+0.0000i".
func formatAmplitude(c complex128) string {
	return fmt.Sprintf("%+.4f%+.4fi", real(c), imag(c))
}

// RenderStates renders a per-step numeric readout: one line per history
// entry with the gate that produced it, the amplitudes and the Bloch
// triple. Entry 0 is the initial |0⟩ state.
func RenderStates(gates []Gate, history []*StateVector) (string, error) {
	var sb strings.Builder
	for i, state := range history {
		v, err := state.Bloch()
		if err != nil {
			return "", err
		}
		label := "|0⟩"
		if i > 0 && i-1 < len(gates) {
			label = FormatSequence(gates[i-1 : i])
		}
		fmt.Fprintf(&sb, "%3d  %-10s  α=%s  β=%s  (x,y,z)=(%+.4f, %+.4f, %+.4f)\n",
			i, label,
			formatAmplitude(state.Amplitudes[0]),
			formatAmplitude(state.Amplitudes[1]),
			v.X, v.Y, v.Z)
	}
	return sb.String(), nil
}

// ──────────────────────────── Text helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// ──────────────────────────── Overlay helpers ────────────────────────────

// overlayAt composites the overlay string on top of the background at
// position (x, y). ANSI escape sequences in the background are preserved
// by tracking visible column positions.
func overlayAt(bg, overlay string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	ovLines := strings.Split(overlay, "\n")

	for i, ovLine := range ovLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}
		bgLines[bgIdx] = spliceLineAt(bgLines[bgIdx], ovLine, x)
	}
	return strings.Join(bgLines, "\n")
}

// spliceLineAt replaces visible columns starting at position x in bgLine
// with the overlay content, walking over ANSI escape sequences.
func spliceLineAt(bgLine, overlay string, x int) string {
	runes := []rune(bgLine)
	ovWidth := visibleLen(overlay)

	var prefix strings.Builder
	var suffix strings.Builder

	col := 0
	i := 0
	inEsc := false

	// Collect prefix: everything up to visible column x
	for i < len(runes) && col < x {
		if runes[i] == '\x1b' {
			inEsc = true
			for i < len(runes) {
				prefix.WriteRune(runes[i])
				if inEsc && runes[i] != '\x1b' && runes[i] != '[' && ((runes[i] >= 'A' && runes[i] <= 'Z') || (runes[i] >= 'a' && runes[i] <= 'z')) {
					inEsc = false
					i++
					break
				}
				i++
			}
		} else {
			prefix.WriteRune(runes[i])
			col++
			i++
		}
	}

	// Pad prefix if bg line is shorter than x
	for col < x {
		prefix.WriteRune(' ')
		col++
	}

	// Skip over ovWidth visible columns in the background
	skipped := 0
	for i < len(runes) && skipped < ovWidth {
		if runes[i] == '\x1b' {
			for i < len(runes) {
				i++
				if i > 0 && runes[i-1] != '\x1b' && runes[i-1] != '[' && ((runes[i-1] >= 'A' && runes[i-1] <= 'Z') || (runes[i-1] >= 'a' && runes[i-1] <= 'z')) {
					break
				}
			}
		} else {
			skipped++
			i++
		}
	}

	// Collect suffix: rest of the background line
	for i < len(runes) {
		suffix.WriteRune(runes[i])
		i++
	}

	return prefix.String() + overlay + suffix.String()
}

// visibleLen returns the number of visible (non-ANSI-escape) characters.
func visibleLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
			continue
		}
		if inEsc {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEsc = false
			}
			continue
		}
		n++
	}
	return n
}
