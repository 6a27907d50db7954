package lang

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// WriteValue returns the OpenSCAD literal for v.
//
// Records can only be written in argument position (isArg), where they
// expand to comma-separated name=value pairs; anywhere else they fail with
// [ErrUnsupportedValue]. Variables are written as their bare name.
func (d *Document) WriteValue(v Value, isArg bool) (string, error) {
	switch x := v.(type) {
	case *Variable:
		if x == nil {
			break
		}

		return x.name, nil

	case Number:
		return formatNumber(float64(x)), nil

	case Bool:
		return strconv.FormatBool(bool(x)), nil

	case String:
		return d.quote(string(x)), nil

	case List:
		elem := make([]string, len(x))

		for i, e := range x {
			s, err := d.WriteValue(e, false)
			if err != nil {
				return "", err
			}

			elem[i] = s
		}

		return "[" + strings.Join(elem, ", ") + "]", nil

	case Record:
		if !isArg {
			return "", ErrUnsupportedValue.With(
				slog.String("type", "record"),
				slog.Bool("argument", false),
			)
		}

		fields := x.emittable()
		elem := make([]string, len(fields))

		for i, f := range fields {
			s, err := d.WriteValue(f.Value, false)
			if err != nil {
				return "", err
			}

			elem[i] = f.Name + "=" + s
		}

		return strings.Join(elem, ", "), nil
	}

	return "", ErrUnsupportedValue.With(slog.String("type", typeName(v)))
}

// WriteArgs returns the comma-separated argument list for args.
//
// Arguments that carry no information are dropped: absent (nil) values and
// records with no emittable fields. This lets a trailing options record be
// passed unconditionally and vanish when it is empty.
func (d *Document) WriteArgs(args []Value) (string, error) {
	elem := make([]string, 0, len(args))

	for _, arg := range args {
		if arg == nil {
			continue
		}

		if r, ok := arg.(Record); ok && len(r.emittable()) == 0 {
			continue
		}

		s, err := d.WriteValue(arg, true)
		if err != nil {
			return "", err
		}

		elem = append(elem, s)
	}

	return strings.Join(elem, ", "), nil
}

// quote returns s enclosed in double quotes. Embedded quotes and
// backslashes are escaped only when the document enables string escaping.
func (d *Document) quote(s string) string {
	if d.escape {
		s = strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
	}

	return `"` + s + `"`
}

// formatNumber returns the shortest decimal representation of f that
// round-trips, switching to exponent notation outside [1e-6, 1e21).
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"

	case math.IsInf(f, 1):
		return "Infinity"

	case math.IsInf(f, -1):
		return "-Infinity"

	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)

		// Go pads the exponent to two digits ("1e-07").
		mant, exp, _ := strings.Cut(s, "e")
		digits := strings.TrimLeft(exp[1:], "0")

		return mant + "e" + exp[:1] + digits
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
