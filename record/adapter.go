package record

import (
	"fmt"
	"sort"
)

// FromAny converts a Go value into a tagged Value.
//
// This exists as an adapter layer for callers holding untyped data (for
// example values produced by a generic JSON decoder). Maps become objects with
// keys in sorted order since Go maps carry no order of their own.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case Record:
		return Object(x), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > uint64(1<<63-1) {
			// Avoid silently wrapping large values.
			return Value{}, fmt.Errorf("record: uint64 out of range: %d", x)
		}
		return Int(int64(x)), nil
	case []Value:
		return Array(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i := range x {
			vv, err := FromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = vv
		}
		return Array(arr), nil
	case []string:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = String(x[i])
		}
		return Array(arr), nil
	case map[string]any:
		r, err := RecordFromMap(x)
		if err != nil {
			return Value{}, err
		}
		return Object(r), nil
	default:
		return Value{}, fmt.Errorf("record: unsupported value type %T", v)
	}
}

// RecordFromMap converts a map[string]any into a Record with sorted field names.
func RecordFromMap(m map[string]any) (Record, error) {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	r := make(Record, len(names))
	for i, name := range names {
		v, err := FromAny(m[name])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		r[i] = Field{Name: name, Value: v}
	}
	return r, nil
}
