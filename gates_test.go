package main

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMatrixNear(t *testing.T, want, got Matrix2) {
	t.Helper()
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if cmplx.Abs(want[r][c]-got[r][c]) > 1e-12 {
				t.Fatalf("entry (%d,%d): got %v, want %v", r, c, got[r][c], want[r][c])
			}
		}
	}
}

func TestGateMatrixEntries(t *testing.T) {
	h := complex(1/math.Sqrt2, 0)
	cq := complex(math.Cos(math.Pi/4), 0)  // cos(θ/2) for θ=pi/2
	sq := math.Sin(math.Pi / 4)            // sin(θ/2) for θ=pi/2
	phase := cmplx.Exp(complex(0, math.Pi/2)) // e^{iθ/2} for θ=pi

	tests := []struct {
		name   string
		params []float64
		want   Matrix2
	}{
		{"H", nil, Matrix2{{h, h}, {h, -h}}},
		{"X", nil, Matrix2{{0, 1}, {1, 0}}},
		{"Y", nil, Matrix2{{0, -1i}, {1i, 0}}},
		{"Z", nil, Matrix2{{1, 0}, {0, -1}}},
		{"S", nil, Matrix2{{1, 0}, {0, 1i}}},
		{"T", nil, Matrix2{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}},
		{"RX", []float64{math.Pi / 2}, Matrix2{{cq, complex(0, -sq)}, {complex(0, -sq), cq}}},
		{"RY", []float64{math.Pi / 2}, Matrix2{{cq, complex(-math.Sin(math.Pi/4), 0)}, {complex(sq, 0), cq}}},
		{"RZ", []float64{math.Pi}, Matrix2{{cmplx.Conj(phase), 0}, {0, phase}}},
	}

	for _, tt := range tests {
		got, err := GateMatrix(tt.name, tt.params)
		require.NoError(t, err, tt.name)
		assertMatrixNear(t, tt.want, got)
	}
}

func TestGateMatrixCaseInsensitive(t *testing.T) {
	upper, err := GateMatrix("H", nil)
	require.NoError(t, err)
	lower, err := GateMatrix(" h ", nil)
	require.NoError(t, err)
	assertMatrixNear(t, upper, lower)

	_, err = GateMatrix("rx", []float64{0.5})
	assert.NoError(t, err)
}

func TestGateMatrixUnsupported(t *testing.T) {
	for _, name := range []string{"Q", "CX", "SDG", "HADAMARD", ""} {
		_, err := GateMatrix(name, nil)
		require.ErrorIs(t, err, ErrUnsupportedGate, name)
	}
}

func TestGateMatrixMissingAngle(t *testing.T) {
	for _, name := range []string{"RX", "RY", "RZ"} {
		_, err := GateMatrix(name, nil)
		require.ErrorIs(t, err, ErrMissingAngle, name)
		assert.Contains(t, err.Error(), name)
	}
}

func TestGateMatrixIgnoresAngleOnFixedGates(t *testing.T) {
	// H:0.3 style input is accepted and the angle discarded.
	plain, err := GateMatrix("H", nil)
	require.NoError(t, err)
	withAngle, err := GateMatrix("H", []float64{0.3})
	require.NoError(t, err)
	assertMatrixNear(t, plain, withAngle)
}

func TestGateMatricesUnitary(t *testing.T) {
	identity := Matrix2{{1, 0}, {0, 1}}
	for _, name := range GateNames() {
		var params []float64
		if IsRotationGate(name) {
			params = []float64{0.7}
		}
		u, err := GateMatrix(name, params)
		require.NoError(t, err, name)
		assertMatrixNear(t, identity, u.Mul(u.Dagger()))
	}
}

func TestCatalogConsistency(t *testing.T) {
	s, err := GateMatrix("S", nil)
	require.NoError(t, err)
	z, err := GateMatrix("Z", nil)
	require.NoError(t, err)
	tm, err := GateMatrix("T", nil)
	require.NoError(t, err)

	// S·S = Z and T·T = S.
	assertMatrixNear(t, z, s.Mul(s))
	assertMatrixNear(t, s, tm.Mul(tm))
}

func TestGateNames(t *testing.T) {
	assert.Equal(t, []string{"H", "RX", "RY", "RZ", "S", "T", "X", "Y", "Z"}, GateNames())
}

func TestIsRotationGate(t *testing.T) {
	assert.True(t, IsRotationGate("rx"))
	assert.True(t, IsRotationGate("RZ"))
	assert.False(t, IsRotationGate("H"))
	assert.False(t, IsRotationGate("nope"))
}
