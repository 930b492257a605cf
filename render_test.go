package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSpherePlainHasNoANSI(t *testing.T) {
	out := RenderSphere([]BlochVector{{Z: 1}, {X: 1}}, -1, false)
	assert.NotContains(t, out, "\x1b")
}

func TestRenderSphereDeterministic(t *testing.T) {
	vectors := []BlochVector{{Z: 1}, {X: 1}, {Y: 1}}
	assert.Equal(t,
		RenderSphere(vectors, -1, false),
		RenderSphere(vectors, -1, false))
}

func TestRenderSphereAxesAndMarkers(t *testing.T) {
	out := RenderSphere([]BlochVector{{Z: 1}, {X: 1}}, -1, false)

	for _, label := range []string{"+x", "-x", "+y", "-y", "+z", "-z"} {
		assert.Contains(t, out, label)
	}

	// Trail marker for step 0, filled marker for the highlighted step.
	assert.Contains(t, out, "○")
	assert.Contains(t, out, "●")

	// Grid shape holds.
	lines := strings.Split(out, "\n")
	require.Len(t, lines, sphereH)
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), sphereW)
	}
}

func TestRenderSphereEmpty(t *testing.T) {
	out := RenderSphere(nil, -1, false)
	assert.NotContains(t, out, "●")
	assert.Contains(t, out, "+z")
}

func TestRenderStates(t *testing.T) {
	gates := mustParse(t, "H,X")
	history, err := EvolveSteps(gates)
	require.NoError(t, err)

	out, err := RenderStates(gates, history)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "|0⟩")
	assert.Contains(t, lines[1], "H")
	assert.Contains(t, lines[2], "X")
	assert.Contains(t, lines[2], "(x,y,z)=")
}

func TestPadCenter(t *testing.T) {
	assert.Equal(t, " ab  ", padCenter("ab", 5))
	assert.Equal(t, "abc", padCenter("abc", 3))
	assert.Equal(t, "abc", padCenter("abcd", 3))
	assert.Equal(t, "   ", padCenter("", 3))
}

func TestVisibleLen(t *testing.T) {
	assert.Equal(t, 5, visibleLen("hello"))
	assert.Equal(t, 5, visibleLen("\x1b[31mhello\x1b[0m"))
	assert.Equal(t, 0, visibleLen(""))
}

func TestOverlayAt(t *testing.T) {
	bg := "aaaaaa\nbbbbbb\ncccccc"
	out := overlayAt(bg, "XX", 2, 1)
	assert.Equal(t, "aaaaaa\nbbXXbb\ncccccc", out)
}
