package metric

import (
	"math"
	"strconv"
	"strings"
)

// Value is an optional metric value. The zero Value is undefined, which is
// different from a defined zero.
type Value struct {
	Float float64
	Valid bool
}

// Defined creates a defined value. NaN and infinities are treated as
// undefined.
func Defined(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{Float: f, Valid: true}
}

// Undefined returns the value of a cell that has no data.
func Undefined() Value {
	return Value{}
}

// String formats the value for a CSV cell. Undefined values are empty.
func (v Value) String() string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}

// Parse reads a CSV cell. Empty strings and common missing-value markers
// become undefined.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "none", "null", "na", "<na>":
		return Value{}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, err
	}
	return Defined(f), nil
}

// Round2 rounds a float to two decimal places.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
