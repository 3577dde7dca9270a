// FILE: lixenwraith/smolconf/type.go
package smolconf

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bounds that disable clamping.
const (
	NoClampIntMin   int64   = math.MinInt64
	NoClampIntMax   int64   = math.MaxInt64
	NoClampUintMin  uint64  = 0
	NoClampUintMax  uint64  = math.MaxUint64
	NoClampFloatMin float64 = -math.MaxFloat64
	NoClampFloatMax float64 = math.MaxFloat64
)

// String retrieves the raw value for key.
func (s *Store) String(key string) (string, error) {
	v, ok := s.Find(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return v, nil
}

// Bool retrieves a boolean value. "1", "TRUE" and "ON" are true; "0", "FALSE"
// and "OFF" are false. Word forms are case-insensitive.
func (s *Store) Bool(key string) (bool, error) {
	v, err := s.String(key)
	if err != nil {
		return false, err
	}
	b, ok := parseBool(v)
	if !ok {
		return false, fmt.Errorf("%w: cannot convert %q to bool for key %s", ErrWrongType, v, key)
	}
	return b, nil
}

func parseBool(v string) (value, ok bool) {
	switch {
	case v == "1", strings.EqualFold(v, "true"), strings.EqualFold(v, "on"):
		return true, true
	case v == "0", strings.EqualFold(v, "false"), strings.EqualFold(v, "off"):
		return false, true
	}
	return false, false
}

// Int64 retrieves a base-10 integer and clamps it into [min, max].
// Leading spaces and a '+' sign are accepted; trailing characters are not.
// Literals beyond the int64 range saturate before clamping.
func (s *Store) Int64(key string, min, max int64) (int64, error) {
	v, err := s.String(key)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(strings.TrimLeft(v, " "), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: cannot convert %q to int64 for key %s", ErrWrongType, v, key)
	}
	return clamp(i, min, max), nil
}

// Uint64 retrieves a base-10 unsigned integer and clamps it into [min, max].
// Leading spaces and a '+' sign are accepted; a minus sign is a type error.
func (s *Store) Uint64(key string, min, max uint64) (uint64, error) {
	v, err := s.String(key)
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(unsignedLiteral(v), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: cannot convert %q to uint64 for key %s", ErrWrongType, v, key)
	}
	return clamp(u, min, max), nil
}

// Float64 retrieves a floating-point value and clamps it into [min, max].
// Leading spaces are accepted.
// NaN is returned unclamped.
func (s *Store) Float64(key string, min, max float64) (float64, error) {
	v, err := s.String(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimLeft(v, " "), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: cannot convert %q to float64 for key %s", ErrWrongType, v, key)
	}
	return clamp(f, min, max), nil
}

// unsignedLiteral drops leading spaces and one '+' sign, which ParseUint rejects.
func unsignedLiteral(v string) string {
	return strings.TrimPrefix(strings.TrimLeft(v, " "), "+")
}

// Path retrieves a value that must name a file currently readable through
// the store's FileProbe.
func (s *Store) Path(key string) (string, error) {
	v, err := s.String(key)
	if err != nil {
		return "", err
	}
	probe := s.probe
	if probe == nil {
		probe = OSProbe{}
	}
	if !probe.CanOpen(v) {
		return "", fmt.Errorf("%w: path %q for key %s could not be accessed", ErrWrongType, v, key)
	}
	return v, nil
}

type ordered interface {
	~int64 | ~uint64 | ~float64
}

// clamp pins v into [min, max], checking the upper bound first.
func clamp[T ordered](v, min, max T) T {
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}
