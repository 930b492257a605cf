package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBlochNear(t *testing.T, want BlochVector, state *StateVector) {
	t.Helper()
	v, err := state.Bloch()
	require.NoError(t, err)
	assert.InDelta(t, want.X, v.X, 1e-9)
	assert.InDelta(t, want.Y, v.Y, 1e-9)
	assert.InDelta(t, want.Z, v.Z, 1e-9)
}

func mustParse(t *testing.T, text string) []Gate {
	t.Helper()
	gates, err := ParseSequence(text)
	require.NoError(t, err)
	require.NoError(t, ValidateGates(gates))
	return gates
}

func TestEvolveEmptySequence(t *testing.T) {
	state, err := Evolve(nil)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, 0}, state.Amplitudes)
	assertBlochNear(t, BlochVector{Z: 1}, state)
}

func TestEvolveDoubleHadamardIsIdentity(t *testing.T) {
	state, err := Evolve(mustParse(t, "H,H"))
	require.NoError(t, err)
	assertBlochNear(t, BlochVector{Z: 1}, state)
}

func TestEvolveXFlips(t *testing.T) {
	state, err := Evolve(mustParse(t, "X"))
	require.NoError(t, err)
	assertBlochNear(t, BlochVector{Z: -1}, state)
}

func TestRZLeavesInitialStateFixed(t *testing.T) {
	// |0⟩ lies on the z axis; rotating about z moves nothing.
	for _, theta := range []float64{0.1, 1.0, math.Pi, -2.5, 100} {
		state, err := Evolve([]Gate{{Type: "RZ", Params: []float64{theta}}})
		require.NoError(t, err)
		assertBlochNear(t, BlochVector{Z: 1}, state)
	}
}

func TestRYPiFlips(t *testing.T) {
	state, err := Evolve([]Gate{{Type: "RY", Params: []float64{math.Pi}}})
	require.NoError(t, err)
	assertBlochNear(t, BlochVector{Z: -1}, state)
}

func TestKnownBlochPoints(t *testing.T) {
	tests := []struct {
		sequence string
		want     BlochVector
	}{
		{"H", BlochVector{X: 1}},
		{"H,S", BlochVector{Y: 1}},
		{"H,Z", BlochVector{X: -1}},
		{"H,S,S,S", BlochVector{Y: -1}},
		{"RX:pi/2", BlochVector{Y: -1}},
	}
	for _, tt := range tests {
		state, err := Evolve(mustParse(t, tt.sequence))
		require.NoError(t, err, tt.sequence)
		assertBlochNear(t, tt.want, state)
	}
}

func TestEvolveStepsHistoryShape(t *testing.T) {
	gates := mustParse(t, "H,RY:1.5708,RZ:0.5,X")
	history, err := EvolveSteps(gates)
	require.NoError(t, err)
	require.Len(t, history, len(gates)+1)

	// Entry 0 is the untouched initial state.
	assert.Equal(t, []complex128{1, 0}, history[0].Amplitudes)

	// Entries are clones: mutating one leaves the others alone.
	history[1].Amplitudes[0] = 42
	assert.Equal(t, complex128(1), history[0].Amplitudes[0])
}

func TestEvolveStepsEmpty(t *testing.T) {
	history, err := EvolveSteps(nil)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, []complex128{1, 0}, history[0].Amplitudes)
}

func TestEvolveAbortsOnBadGate(t *testing.T) {
	gates := []Gate{{Type: "H"}, {Type: "NOPE"}, {Type: "X"}}

	state, err := Evolve(gates)
	require.ErrorIs(t, err, ErrUnsupportedGate)
	assert.Nil(t, state)

	history, err := EvolveSteps(gates)
	require.ErrorIs(t, err, ErrUnsupportedGate)
	assert.Nil(t, history)

	// Missing angle aborts the same way.
	_, err = Evolve([]Gate{{Type: "H"}, {Type: "RX"}})
	require.ErrorIs(t, err, ErrMissingAngle)
}

func TestUnitarityOverLongChain(t *testing.T) {
	cycle := mustParse(t, "H,RX:0.3,T,RY:1.1,S,RZ:-0.7,X")
	var gates []Gate
	for len(gates) < 300 {
		gates = append(gates, cycle...)
	}

	history, err := EvolveSteps(gates)
	require.NoError(t, err)

	for i, state := range history {
		assert.InDelta(t, 1.0, state.Norm(), 1e-9, "step %d", i)
		v, err := state.Bloch()
		require.NoError(t, err)
		assert.LessOrEqual(t, v.Norm(), 1+1e-9, "step %d", i)
		assert.InDelta(t, 1.0, v.Norm(), 1e-9, "step %d", i)
	}
}

func TestApplyMatrixProduct(t *testing.T) {
	// U·v with an asymmetric matrix to pin row/column order.
	s := &StateVector{Amplitudes: []complex128{2, 3}}
	s.ApplyMatrix(Matrix2{{1, 2}, {3, 4}})
	assert.Equal(t, []complex128{8, 18}, s.Amplitudes)
}
