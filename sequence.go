package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// piExprRegex matches expressions like: pi, 2pi, 2*pi, pi/2, 3pi/4, 3*pi/4,
// -pi, -pi/2, -3*pi/4
var piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// parseAngleExpr parses a single angle expression, supporting plain numbers
// and pi expressions. Returns the parsed value and true on success.
//
// Supported formats:
//   - Plain numbers: "1.5707", "-0.5", "3.14e-2"
//   - Pi constant: "pi"
//   - Pi fractions: "pi/2", "pi/4", "pi/3"
//   - Coefficients: "2pi", "2*pi", "3pi/4", "3*pi/4"
//   - Negative: "-pi", "-pi/2", "-3*pi/4"
func parseAngleExpr(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// Try plain number first
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true
	}

	// Try pi expression
	s = strings.ToLower(s)
	if matches := piExprRegex.FindStringSubmatch(s); matches != nil {
		negative := matches[1] == "-"
		coeffStr := matches[2]
		denomStr := matches[3]

		coeff := 1.0
		if coeffStr != "" {
			var err error
			coeff, err = strconv.ParseFloat(coeffStr, 64)
			if err != nil {
				return 0, false
			}
		}

		result := coeff * math.Pi

		if denomStr != "" {
			denom, err := strconv.ParseFloat(denomStr, 64)
			if err != nil || denom == 0 {
				return 0, false
			}
			result /= denom
		}

		if negative {
			result = -result
		}
		return result, true
	}

	return 0, false
}

// formatAngle formats an angle value, using pi notation when possible.
func formatAngle(val float64) string {
	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{2 * math.Pi / 3, "2*pi/3"},
	}

	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}

	return fmt.Sprintf("%g", val)
}

// ParseSequence turns a comma-separated gate list like "H,RY:1.5708,X" into
// an ordered slice of gates. Token order is application order. Empty input
// is a valid empty sequence; blank tokens are dropped, so trailing commas
// and stray whitespace are tolerated. Names are canonicalized to uppercase.
//
// This checks syntax only. Whether a gate requires an angle is the job of
// ValidateGates, run by callers before evolution.
func ParseSequence(text string) ([]Gate, error) {
	var gates []Gate
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		name, angleText, hasAngle := strings.Cut(token, ":")
		g := Gate{Type: CanonicalGateName(name)}
		if hasAngle {
			val, ok := parseAngleExpr(angleText)
			if !ok {
				return nil, fmt.Errorf("%w in token %q", ErrInvalidAngle, token)
			}
			g.Params = []float64{val}
		}
		gates = append(gates, g)
	}
	return gates, nil
}

// ValidateGates rejects gates whose angle requirement is unmet and gates
// outside the catalog, so callers can fail before evolving.
func ValidateGates(gates []Gate) error {
	for _, g := range gates {
		entry, ok := gateCatalog[CanonicalGateName(g.Type)]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnsupportedGate, g.Type)
		}
		if entry.needsAngle && !g.HasAngle() {
			return fmt.Errorf("%w: %s requires an angle in sequence, e.g. %s:1.5708",
				ErrMissingAngle, g.Type, g.Type)
		}
	}
	return nil
}

// FormatSequence renders a gate list back to sequence text. The output
// round-trips through ParseSequence; recognized pi fractions are written in
// pi notation.
func FormatSequence(gates []Gate) string {
	tokens := make([]string, len(gates))
	for i, g := range gates {
		if g.HasAngle() {
			tokens[i] = fmt.Sprintf("%s:%s", CanonicalGateName(g.Type), formatAngle(g.Params[0]))
		} else {
			tokens[i] = CanonicalGateName(g.Type)
		}
	}
	return strings.Join(tokens, ",")
}
