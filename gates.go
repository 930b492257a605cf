package main

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strings"
)

// Errors surfaced by the gate catalog and sequence handling. All are
// wrapped with context at the failure site and checked with errors.Is.
var (
	ErrUnsupportedGate  = errors.New("unsupported gate")
	ErrMissingAngle     = errors.New("missing angle")
	ErrInvalidAngle     = errors.New("invalid angle")
	ErrInvalidDimension = errors.New("invalid state dimension")
)

// Matrix2 is a 2x2 complex matrix, row-major. Every matrix produced by the
// catalog is unitary.
type Matrix2 [2][2]complex128

// Mul returns the matrix product m*n.
func (m Matrix2) Mul(n Matrix2) Matrix2 {
	var out Matrix2
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out[r][c] = m[r][0]*n[0][c] + m[r][1]*n[1][c]
		}
	}
	return out
}

// Dagger returns the conjugate transpose.
func (m Matrix2) Dagger() Matrix2 {
	return Matrix2{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}

// Gate is a single operation on the qubit: a catalog name plus parameters.
// Rotation gates (RX/RY/RZ) carry one angle in radians; fixed gates carry
// none. Values are treated as read-only once constructed.
type Gate struct {
	Type   string
	Params []float64
}

// HasAngle reports whether the gate carries an angle parameter.
func (g Gate) HasAngle() bool { return len(g.Params) > 0 }

// gateEntry ties a catalog name to its matrix builder. needsAngle marks
// the rotation gates; fixed builders ignore theta.
type gateEntry struct {
	needsAngle bool
	build      func(theta float64) Matrix2
}

// gateCatalog maps canonical gate names to matrix builders. It is never
// mutated after init, so concurrent lookups need no locking.
var gateCatalog = map[string]gateEntry{
	"H": {build: func(float64) Matrix2 {
		h := complex(1/math.Sqrt2, 0)
		return Matrix2{{h, h}, {h, -h}}
	}},
	"X": {build: func(float64) Matrix2 {
		return Matrix2{{0, 1}, {1, 0}}
	}},
	"Y": {build: func(float64) Matrix2 {
		return Matrix2{{0, -1i}, {1i, 0}}
	}},
	"Z": {build: func(float64) Matrix2 {
		return Matrix2{{1, 0}, {0, -1}}
	}},
	"S": {build: func(float64) Matrix2 {
		return Matrix2{{1, 0}, {0, 1i}}
	}},
	"T": {build: func(float64) Matrix2 {
		return Matrix2{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}
	}},
	"RX": {needsAngle: true, build: func(theta float64) Matrix2 {
		c := complex(math.Cos(theta/2), 0)
		js := complex(0, -math.Sin(theta/2))
		return Matrix2{{c, js}, {js, c}}
	}},
	"RY": {needsAngle: true, build: func(theta float64) Matrix2 {
		c := complex(math.Cos(theta/2), 0)
		s := complex(math.Sin(theta/2), 0)
		return Matrix2{{c, -s}, {s, c}}
	}},
	"RZ": {needsAngle: true, build: func(theta float64) Matrix2 {
		phase := cmplx.Exp(complex(0, theta/2))
		return Matrix2{{cmplx.Conj(phase), 0}, {0, phase}}
	}},
}

// CanonicalGateName trims and uppercases a gate name for catalog lookup.
func CanonicalGateName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// IsRotationGate reports whether the named gate requires an angle.
func IsRotationGate(name string) bool {
	entry, ok := gateCatalog[CanonicalGateName(name)]
	return ok && entry.needsAngle
}

// GateNames returns all catalog names in sorted order.
func GateNames() []string {
	names := make([]string, 0, len(gateCatalog))
	for name := range gateCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GateMatrix returns the unitary for the named gate. Rotation gates take
// their angle from params[0] and fail without one. An angle handed to a
// fixed gate is ignored, matching the reference CLI's permissive behavior.
func GateMatrix(name string, params []float64) (Matrix2, error) {
	canon := CanonicalGateName(name)
	entry, ok := gateCatalog[canon]
	if !ok {
		return Matrix2{}, fmt.Errorf("%w: %s", ErrUnsupportedGate, name)
	}
	theta := 0.0
	if entry.needsAngle {
		if len(params) == 0 {
			return Matrix2{}, fmt.Errorf("%w: %s requires an angle", ErrMissingAngle, canon)
		}
		theta = params[0]
	}
	return entry.build(theta), nil
}

// Matrix returns the unitary for the gate.
func (g Gate) Matrix() (Matrix2, error) {
	return GateMatrix(g.Type, g.Params)
}
