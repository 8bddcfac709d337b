package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"

	"equipment-csv/internal/match"
)

// suggestMinScore is the similarity a sibling key needs to be offered as a correction.
const suggestMinScore = 0.8

// Value is a single node of the document together with its path from the root.
// The zero Value is absent.
type Value struct {
	raw  *fastjson.Value
	path string
}

// Path returns the location of the value, e.g. "List[2].Dimensions.Length".
func (v Value) Path() string {
	return v.path
}

// Kind returns the JSON type of the value.
func (v Value) Kind() Kind {
	if v.raw == nil {
		return KindMissing
	}

	switch v.raw.Type() {
	case fastjson.TypeNull:
		return KindNull
	case fastjson.TypeObject:
		return KindObject
	case fastjson.TypeArray:
		return KindArray
	case fastjson.TypeString:
		return KindString
	case fastjson.TypeNumber:
		return KindNumber
	case fastjson.TypeTrue, fastjson.TypeFalse:
		return KindBool
	default:
		return KindMissing
	}
}

// IsAbsent returns true for missing and null values.
func (v Value) IsAbsent() bool {
	k := v.Kind()
	return k == KindMissing || k == KindNull
}

// Truthy reports whether the value is present and not one of
// null, false, 0 or the empty string.
func (v Value) Truthy() bool {
	switch v.Kind() {
	case KindMissing, KindNull:
		return false
	case KindBool:
		return v.raw.Type() == fastjson.TypeTrue
	case KindNumber:
		f, err := v.raw.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	case KindString:
		return len(v.raw.GetStringBytes()) > 0
	default:
		return true
	}
}

// Object narrows the value to an object.
func (v Value) Object() (Object, error) {
	if v.Kind() != KindObject {
		return Object{}, &TypeError{Path: v.path, Want: KindObject, Got: v.Kind()}
	}

	obj, err := v.raw.Object()
	if err != nil {
		return Object{}, err
	}

	return Object{obj: obj, path: v.path}, nil
}

// Array narrows the value to an array and returns its elements in order.
func (v Value) Array() ([]Value, error) {
	if v.Kind() != KindArray {
		return nil, &TypeError{Path: v.path, Want: KindArray, Got: v.Kind()}
	}

	items, err := v.raw.Array()
	if err != nil {
		return nil, err
	}

	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = Value{raw: item, path: fmt.Sprintf("%s[%d]", v.path, i)}
	}

	return out, nil
}

// Find walks nested objects along keys.
// A value on the way that is not Truthy (absent, null, false, 0, "") counts as
// an empty object and yields an absent result, not an error.
// Any other value that is not an object yields a *TypeError.
func (v Value) Find(keys ...string) (Value, error) {
	cur := v

	for i, key := range keys {
		if !cur.Truthy() {
			return Value{path: joinPath(cur.path, keys[i:]...)}, nil
		}

		obj, err := cur.Object()
		if err != nil {
			return Value{}, err
		}

		cur = obj.Get(key)
	}

	return cur, nil
}

// Require walks nested objects along keys like Find, but every key must be
// present and non-null. The first gap is reported as a *MissingFieldError.
func (v Value) Require(keys ...string) (Value, error) {
	cur := v

	for _, key := range keys {
		obj, err := cur.Object()
		if err != nil {
			return Value{}, err
		}

		cur = obj.Get(key)
		if cur.IsAbsent() {
			return Value{}, &MissingFieldError{
				Path:        cur.path,
				Suggestions: match.Suggest(key, obj.Keys(), suggestMinScore),
			}
		}
	}

	return cur, nil
}

// Text renders the value as CSV cell content, before escaping.
func (v Value) Text() string {
	switch v.Kind() {
	case KindMissing, KindNull:
		return ""
	case KindString:
		return string(v.raw.GetStringBytes())
	case KindNumber:
		f, err := v.raw.Float64()
		if err != nil {
			return v.raw.String()
		}

		return FormatNumber(f)
	case KindBool:
		return strconv.FormatBool(v.raw.Type() == fastjson.TypeTrue)
	default:
		return v.raw.String()
	}
}

// FormatNumber renders f in the shortest form that round-trips.
// Magnitudes in [1e-6, 1e21) use plain decimal notation, others use an
// exponent without zero padding ("1e+21", "1.5e-7").
func FormatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")

	return mantissa + "e" + sign + digits
}

// Object is a value narrowed to a JSON object.
type Object struct {
	obj  *fastjson.Object
	path string
}

// Get returns the value stored under key, or an absent value.
// When a key is duplicated, the last occurrence wins.
func (o Object) Get(key string) Value {
	var found *fastjson.Value

	o.obj.Visit(func(k []byte, v *fastjson.Value) {
		if string(k) == key {
			found = v
		}
	})

	return Value{raw: found, path: joinPath(o.path, key)}
}

// Keys returns the object's keys in document order. Duplicates are reported once.
func (o Object) Keys() []string {
	var keys []string

	seen := make(map[string]struct{}, o.obj.Len())

	o.obj.Visit(func(k []byte, _ *fastjson.Value) {
		if _, ok := seen[string(k)]; ok {
			return
		}

		seen[string(k)] = struct{}{}
		keys = append(keys, string(k))
	})

	return keys
}

// Len returns the number of keys.
func (o Object) Len() int {
	return o.obj.Len()
}

func joinPath(base string, keys ...string) string {
	var sb strings.Builder

	sb.WriteString(base)

	for _, key := range keys {
		if sb.Len() > 0 {
			sb.WriteString(".")
		}

		sb.WriteString(key)
	}

	return sb.String()
}
