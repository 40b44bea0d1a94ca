package domain

import (
	"encoding/json"
	"fmt"
	"math"

	"go.trai.ch/rcstring"
	"go.trai.ch/zerr"
)

// Value is one node of a document tree. It holds one of
// rcstring.SharedString, int64, float64, bool, nil, List or Map.
type Value any

// List is a document sequence.
type List []Value

// Map is a document mapping. Keys compare by content, so a lookup with a
// freshly built key finds an entry decoded from any source.
type Map map[rcstring.SharedString]Value

// Lookup returns the value stored under key.
func (m Map) Lookup(key string) (Value, bool) {
	k := rcstring.New(key)
	defer k.Release()
	v, ok := m[k]
	return v, ok
}

// Keys returns the keys of m in byte order.
func (m Map) Keys() []rcstring.SharedString {
	keys := make([]rcstring.SharedString, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	rcstring.Sort(keys)
	return keys
}

// FromAny converts the output of a generic decoder (maps, slices, strings,
// numbers, booleans and nil) into a document tree.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case rcstring.SharedString:
		return val, nil
	case string:
		return rcstring.New(val), nil
	case bool:
		return val, nil
	case int:
		return int64(val), nil
	case int64:
		return val, nil
	case uint64:
		if val > math.MaxInt64 {
			return float64(val), nil
		}
		return int64(val), nil
	case float64:
		return normalizeFloat(val), nil
	case json.Number:
		return fromNumber(val)
	case []any:
		list := make(List, len(val))
		for i, item := range val {
			converted, err := FromAny(item)
			if err != nil {
				return nil, zerr.With(err, "index", i)
			}
			list[i] = converted
		}
		return list, nil
	case map[string]any:
		m := make(Map, len(val))
		for k, item := range val {
			converted, err := FromAny(item)
			if err != nil {
				return nil, zerr.With(err, "key", k)
			}
			m[rcstring.New(k)] = converted
		}
		return m, nil
	case map[any]any:
		m := make(Map, len(val))
		for k, item := range val {
			key := fmt.Sprint(k)
			converted, err := FromAny(item)
			if err != nil {
				return nil, zerr.With(err, "key", key)
			}
			m[rcstring.New(key)] = converted
		}
		return m, nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrUnsupportedValue, "cannot convert decoded value"), "type", fmt.Sprintf("%T", v))
	}
}

// fromNumber keeps integer literals exact when they fit an int64 and falls
// back to float64 for everything else.
func fromNumber(n json.Number) (Value, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(ErrUnsupportedValue, "number out of range"), "number", n.String())
	}
	return normalizeFloat(f), nil
}

// normalizeFloat turns integral floats that fit an int64 into int64, so a
// JSON 3 and a YAML 3 end up as the same value.
func normalizeFloat(f float64) Value {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}
