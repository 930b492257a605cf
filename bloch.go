package main

import (
	"fmt"
	"math"
	"math/cmplx"
)

// BlochVector is the real 3-vector picture of a single-qubit state.
// Pure states sit on the unit sphere; each component is in [-1, 1].
type BlochVector struct {
	X, Y, Z float64
}

// BlochFromAmplitudes projects a 2-component complex state (α, β) onto the
// Bloch sphere:
//
//	x = 2·Re(conj(α)·β)
//	y = 2·Im(conj(α)·β)
//	z = |α|² − |β|²
//
// The dimension check guards externally supplied vectors; states built by
// NewStateVector always pass it.
func BlochFromAmplitudes(amps []complex128) (BlochVector, error) {
	if len(amps) != 2 {
		return BlochVector{}, fmt.Errorf("%w: got %d amplitudes, want 2", ErrInvalidDimension, len(amps))
	}
	alpha, beta := amps[0], amps[1]
	cross := cmplx.Conj(alpha) * beta
	return BlochVector{
		X: 2 * real(cross),
		Y: 2 * imag(cross),
		Z: real(alpha*cmplx.Conj(alpha)) - real(beta*cmplx.Conj(beta)),
	}, nil
}

// Bloch projects the state onto the Bloch sphere.
func (s *StateVector) Bloch() (BlochVector, error) {
	return BlochFromAmplitudes(s.Amplitudes)
}

// BlochTrajectory projects every state of a history, in order.
func BlochTrajectory(history []*StateVector) ([]BlochVector, error) {
	vectors := make([]BlochVector, len(history))
	for i, state := range history {
		v, err := state.Bloch()
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}
	return vectors, nil
}

// Norm returns the Euclidean length of the vector.
func (v BlochVector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
