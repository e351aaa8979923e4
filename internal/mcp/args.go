// ABOUTME: Typed accessors over the loosely typed JSON arguments of a tool call
// ABOUTME: Wrong types become InvalidParameterError instead of being coerced silently

package mcp

import (
	"encoding/json"
	"math"
	"strings"
)

// Args holds decoded tool-call arguments.
type Args map[string]any

func (a Args) lookup(key string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns the string argument for key. Absent and null are not present.
func (a Args) String(key string) (string, bool, error) {
	v, ok := a.lookup(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", true, &InvalidParameterError{Name: key, Detail: "expected a string"}
	}
	return s, true, nil
}

// OptionalString returns nil when key is absent or blank.
func (a Args) OptionalString(key string) (*string, error) {
	s, ok, err := a.String(key)
	if err != nil || !ok || strings.TrimSpace(s) == "" {
		return nil, err
	}
	return &s, nil
}

// RequireString returns the string argument for key or a MissingParameterError
// when it is absent or blank.
func (a Args) RequireString(key string) (string, error) {
	s, ok, err := a.String(key)
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(s) == "" {
		return "", &MissingParameterError{Key: key}
	}
	return s, nil
}

// Int returns the integer argument for key. JSON numbers arrive as float64
// and are accepted only when integral.
func (a Args) Int(key string) (int, bool, error) {
	v, ok := a.lookup(key)
	if !ok {
		return 0, false, nil
	}

	invalid := &InvalidParameterError{Name: key, Detail: "expected an integer"}
	switch n := v.(type) {
	case int:
		return n, true, nil
	case int32:
		return int(n), true, nil
	case int64:
		return int(n), true, nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, true, invalid
		}
		return int(n), true, nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, true, invalid
		}
		return int(i), true, nil
	default:
		return 0, true, invalid
	}
}

// Bool returns the boolean argument for key.
func (a Args) Bool(key string) (bool, bool, error) {
	v, ok := a.lookup(key)
	if !ok {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, true, &InvalidParameterError{Name: key, Detail: "expected a boolean"}
	}
	return b, true, nil
}

// Limit returns the positive integer for key, or fallback when absent.
func (a Args) Limit(key string, fallback int) (int, error) {
	n, ok, err := a.Int(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return fallback, nil
	}
	if n <= 0 {
		return 0, &InvalidParameterError{Name: key, Detail: "must be a positive integer"}
	}
	return n, nil
}
