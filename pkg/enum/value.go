package enum

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// List is an ordered sequence constant value.
type List []any

// Pair is one key/value entry of a Map.
type Pair struct {
	Key   string
	Value any
}

// Map is an ordered key/value constant value. Unlike a Go map it keeps
// insertion order, which is significant for strict equality and rendering.
type Map []Pair

// Get returns the value stored under key.
func (m Map) Get(key string) (any, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (m Map) Keys() []string {
	keys := make([]string, len(m))
	for i, p := range m {
		keys[i] = p.Key
	}
	return keys
}

// MarshalJSON encodes the map as a JSON object preserving key order.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Normalize converts v to the canonical representation used for constant
// values: nil, bool, int64, float64, string, List or Map. Named scalar types
// (type Color int) normalize to their underlying kind.
func Normalize(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case bool, string, int64, float64:
		return x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case float32:
		return float64(x), nil
	case List:
		return normalizeList(x)
	case []any:
		return normalizeList(x)
	case Map:
		out := make(Map, len(x))
		seen := make(map[string]struct{}, len(x))
		for i, p := range x {
			if _, dup := seen[p.Key]; dup {
				return nil, fmt.Errorf("duplicate map key %q", p.Key)
			}
			seen[p.Key] = struct{}{}
			nv, err := Normalize(p.Value)
			if err != nil {
				return nil, err
			}
			out[i] = Pair{Key: p.Key, Value: nv}
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(Map, 0, len(keys))
		for _, k := range keys {
			nv, err := Normalize(x[k])
			if err != nil {
				return nil, err
			}
			out = append(out, Pair{Key: k, Value: nv})
		}
		return out, nil
	}
	return normalizeReflect(reflect.ValueOf(v))
}

func normalizeList(in []any) (List, error) {
	out := make(List, len(in))
	for i, item := range in {
		nv, err := Normalize(item)
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	return out, nil
}

func normalizeReflect(rv reflect.Value) (any, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("unsigned value %d overflows int64", u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice, reflect.Array:
		out := make(List, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			nv, err := Normalize(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return Normalize(m)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return Normalize(rv.Elem().Interface())
	}
	return nil, fmt.Errorf("unsupported value of type %s", rv.Type())
}

// cloneValue deep-copies list and map values so callers cannot mutate
// cached constant values through returned slices.
func cloneValue(v any) any {
	switch x := v.(type) {
	case List:
		out := make(List, len(x))
		for i, item := range x {
			out[i] = cloneValue(item)
		}
		return out
	case Map:
		out := make(Map, len(x))
		for i, p := range x {
			out[i] = Pair{Key: p.Key, Value: cloneValue(p.Value)}
		}
		return out
	default:
		return v
	}
}

// StrictEqual reports type-and-value equality of two normalized values.
// int64(1000) and float64(1000) are not strictly equal.
func StrictEqual(a, b any) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case int64:
		y, ok := b.(int64)
		return ok && x == y
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !StrictEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	case Map:
		y, ok := b.(Map)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i].Key != y[i].Key || !StrictEqual(x[i].Value, y[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// LooseEqual reports equality after rendering both operands to text with
// the same rule String uses: 1000 matches "1000", true matches "1", and nil,
// false and "" all match each other.
func LooseEqual(a, b any) bool {
	return render(a) == render(b)
}

// Format renders v the way an instance's String method renders its value.
func Format(v any) string { return render(v) }

// render converts a normalized value to its textual form: JSON for lists and
// maps, literal text otherwise.
func render(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "1"
		}
		return ""
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x)
	case string:
		return x
	case List, Map:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	}
	nv, err := Normalize(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return render(nv)
}

func formatFloat(f float64) string {
	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-5 && abs < 1e15) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'G', -1, 64)
}
