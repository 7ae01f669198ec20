// Package jsonpath extracts values from decoded JSON using dotted paths.
package jsonpath

import (
	"strconv"
	"strings"
)

// Resolve walks data along a dot-separated path of map keys and slice
// indices and returns the value found there. The second return is false
// when the path does not resolve: a missing key, a non-numeric or
// out-of-range index, or a scalar reached before the path is exhausted.
// Resolve never panics, regardless of input shape.
//
// Resolve(data, "summary.0.total_balance") reads data["summary"][0]["total_balance"].
func Resolve(data any, path string) (any, bool) {
	value := data
	for _, key := range strings.Split(path, ".") {
		switch v := value.(type) {
		case map[string]any:
			next, ok := v[key]
			if !ok {
				return nil, false
			}
			value = next
		case []any:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			value = v[i]
		default:
			return nil, false
		}
		if value == nil {
			return nil, false
		}
	}
	return value, true
}

// Float resolves path and coerces the value to float64. It returns 0 and
// false when the path is absent or the value is not numeric; callers that
// default to zero can ignore the bool.
func Float(data any, path string) (float64, bool) {
	value, ok := Resolve(data, path)
	if !ok {
		return 0, false
	}
	return AsFloat(value)
}

// AsFloat coerces a decoded JSON value to float64. encoding/json decodes
// all numbers as float64, but API payloads sometimes carry numeric strings.
func AsFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
