package deltae

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLab parses "L, a, b" (comma-separated floats, extraneous whitespace
// tolerated) into a validated LabValue. A wrong token count or a
// non-numeric token is ErrBadFormat; parsed values outside the Lab ranges
// are ErrOutOfBounds.
func ParseLab(s string) (LabValue, error) {
	v, err := parseFloats(s)
	if err != nil {
		return LabValue{}, err
	}
	return NewLab(v[0], v[1], v[2])
}

// ParseLch parses "L, c, h" into a validated LchValue.
func ParseLch(s string) (LchValue, error) {
	v, err := parseFloats(s)
	if err != nil {
		return LchValue{}, err
	}
	return NewLch(v[0], v[1], v[2])
}

// ParseXyz parses "X, Y, Z" into a validated XyzValue.
func ParseXyz(s string) (XyzValue, error) {
	v, err := parseFloats(s)
	if err != nil {
		return XyzValue{}, err
	}
	return NewXyz(v[0], v[1], v[2])
}

// ParseMethod maps a case-insensitive alias to its DEMethod. Unrecognized
// aliases are ErrBadFormat.
func ParseMethod(s string) (DEMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "de2000", "de00", "2000", "00":
		return DE2000, nil
	case "de1976", "de76", "1976", "76":
		return DE1976, nil
	case "de1994", "de94", "1994", "94",
		"de1994g", "de94g", "1994g", "94g":
		return DE1994G, nil
	case "de1994t", "de94t", "1994t", "94t":
		return DE1994T, nil
	case "decmc", "decmc1", "cmc1", "cmc":
		return DECMC1, nil
	case "decmc2", "cmc2":
		return DECMC2, nil
	}
	return DEMethod{}, fmt.Errorf("%w: unrecognized method %q", ErrBadFormat, s)
}

// parseFloats splits a comma-separated triple, tolerating whitespace
// around tokens, and parses each token as a float.
func parseFloats(s string) ([3]float64, error) {
	var vals [3]float64
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return vals, fmt.Errorf("%w: expected 3 comma-separated values in %q", ErrBadFormat, s)
	}
	for i, field := range fields {
		val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return vals, fmt.Errorf("%w: bad numeric field %q in %q", ErrBadFormat, field, s)
		}
		vals[i] = val
	}
	return vals, nil
}
