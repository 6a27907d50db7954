package lang

import (
	"log/slog"
	"reflect"
	"slices"

	"github.com/goccy/go-yaml"
)

// Value is any argument value that can be written as OpenSCAD source.
//
// The set of implementations is closed: [Number], [Bool], [String], [List],
// [Record], and [*Variable]. A nil Value means "absent"; absent record fields
// are omitted from output.
type Value interface {
	isValue()
}

// Number is a numeric literal.
type Number float64

// Bool is a boolean literal.
type Bool bool

// String is a string literal.
type String string

// List is an ordered, possibly heterogeneous vector of values.
type List []Value

// Field is a single named entry of a [Record].
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered set of named options. It is only meaningful in
// argument position, where it is written as name=value pairs.
type Record []Field

func (Number) isValue() {}
func (Bool) isValue() {}
func (String) isValue() {}
func (List) isValue() {}
func (Record) isValue() {}

// reservedFields names record keys that are never emitted.
var reservedFields = []string{"parent", "indent", "fs", "banner", "opts"}

// Get returns the value of the named field.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}

// Set returns a copy of r with the named field assigned v. An existing
// field keeps its position; a new field is appended.
func (r Record) Set(name string, v Value) Record {
	out := slices.Clone(r)

	for i := range out {
		if out[i].Name == name {
			out[i].Value = v

			return out
		}
	}

	return append(out, Field{Name: name, Value: v})
}

// emittable returns the fields of r that carry information: fields with a
// reserved name or an absent value are dropped.
func (r Record) emittable() []Field {
	out := make([]Field, 0, len(r))

	for _, f := range r {
		if f.Value == nil || slices.Contains(reservedFields, f.Name) {
			continue
		}

		out = append(out, f)
	}

	return out
}

// Numeric is the set of Go types accepted by [Vec].
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vec returns a [List] of numbers.
func Vec[T Numeric](xs ...T) List {
	l := make(List, len(xs))
	for i, x := range xs {
		l[i] = Number(x)
	}

	return l
}

// Opts returns a [Record] from alternating name, value arguments. Values are
// converted with [ValueOf]; it panics if the pairs are malformed.
func Opts(pairs ...any) Record {
	if len(pairs)%2 != 0 {
		panic("lang.Opts: odd number of arguments")
	}

	r := make(Record, 0, len(pairs)/2)

	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("lang.Opts: field name must be a string")
		}

		r = r.Set(name, MustValueOf(pairs[i+1]))
	}

	return r
}

// MustValueOf is like [ValueOf] but panics on error.
func MustValueOf(v any) Value {
	val, err := ValueOf(v)
	if err != nil {
		panic(err)
	}

	return val
}

// ValueOf converts a native Go value into a [Value].
//
// Supported inputs are Values themselves, nil (absent), booleans, strings,
// every integer and floating-point kind, slices and arrays (as [List]),
// maps keyed by string (as [Record], keys sorted), and [yaml.MapSlice] (as
// [Record], order kept). Pointers are dereferenced.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil

	case Value:
		return x, nil

	case bool:
		return Bool(x), nil

	case string:
		return String(x), nil

	case yaml.MapSlice:
		r := make(Record, 0, len(x))

		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, ErrUnsupportedValue.
					With(slog.String("key", typeName(item.Key)))
			}

			val, err := ValueOf(item.Value)
			if err != nil {
				return nil, err
			}

			r = r.Set(key, val)
		}

		return r, nil
	}

	return reflectValue(reflect.ValueOf(v))
}

func reflectValue(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil

	case reflect.String:
		return String(rv.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return Number(rv.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}

		return ValueOf(rv.Elem().Interface())

	case reflect.Slice, reflect.Array:
		l := make(List, rv.Len())

		for i := range rv.Len() {
			val, err := ValueOf(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}

			l[i] = val
		}

		return l, nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}

		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}

		slices.Sort(keys)

		r := make(Record, 0, len(keys))

		for _, k := range keys {
			val, err := ValueOf(
				rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface(),
			)
			if err != nil {
				return nil, err
			}

			r = append(r, Field{Name: k, Value: val})
		}

		return r, nil
	}

	var typ any
	if rv.IsValid() {
		typ = rv.Interface()
	}

	return nil, ErrUnsupportedValue.With(slog.String("type", typeName(typ)))
}

// typeName names the dynamic type of v for error attributes.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	return reflect.TypeOf(v).String()
}
