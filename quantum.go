package main

import (
	"math/cmplx"
)

// StateVector holds the amplitudes of a single-qubit pure state.
// Index 0 is |0⟩, index 1 is |1⟩. Catalog gates are unitary, so a state
// constructed by NewStateVector keeps unit norm under evolution.
type StateVector struct {
	Amplitudes []complex128
}

// NewStateVector returns the canonical initial state |0⟩ = (1, 0).
func NewStateVector() *StateVector {
	return &StateVector{Amplitudes: []complex128{1, 0}}
}

// Clone returns a deep copy of the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps}
}

// Norm returns |α|² + |β|².
func (s *StateVector) Norm() float64 {
	n := 0.0
	for _, amp := range s.Amplitudes {
		n += real(amp * cmplx.Conj(amp))
	}
	return n
}

// ApplyMatrix multiplies the state by a 2x2 matrix in place.
func (s *StateVector) ApplyMatrix(m Matrix2) {
	a, b := s.Amplitudes[0], s.Amplitudes[1]
	s.Amplitudes[0] = m[0][0]*a + m[0][1]*b
	s.Amplitudes[1] = m[1][0]*a + m[1][1]*b
}

// ApplyGate looks up the gate's unitary in the catalog and applies it.
func (s *StateVector) ApplyGate(g Gate) error {
	m, err := g.Matrix()
	if err != nil {
		return err
	}
	s.ApplyMatrix(m)
	return nil
}

// Evolve applies every gate in order to |0⟩ and returns the final state.
// A catalog error aborts the run; no partial state is returned.
func Evolve(gates []Gate) (*StateVector, error) {
	state := NewStateVector()
	for _, g := range gates {
		if err := state.ApplyGate(g); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// EvolveSteps applies gates in order, capturing the state after each step.
// The history starts with the untouched initial state, so N gates yield
// N+1 entries. Entries are clones and never mutated afterwards.
func EvolveSteps(gates []Gate) ([]*StateVector, error) {
	state := NewStateVector()
	history := make([]*StateVector, 0, len(gates)+1)
	history = append(history, state.Clone())
	for _, g := range gates {
		if err := state.ApplyGate(g); err != nil {
			return nil, err
		}
		history = append(history, state.Clone())
	}
	return history, nil
}
