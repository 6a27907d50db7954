package lang

import (
	"errors"
	"math"
	"testing"
)

func TestWriteValue(t *testing.T) {
	doc := New()
	d := doc.AddVariable("d", Number(5))

	tests := []struct {
		name  string
		value Value
		isArg bool
		want  string
	}{
		{"integer", Number(5), false, "5"},
		{"fraction", Number(1.5), false, "1.5"},
		{"negative", Number(-0.25), false, "-0.25"},
		{"large integer", Number(123456789), false, "123456789"},
		{"zero", Number(0), false, "0"},
		{"negative zero", Number(math.Copysign(0, -1)), false, "0"},
		{"huge", Number(1e21), false, "1e+21"},
		{"tiny", Number(1e-7), false, "1e-7"},
		{"small", Number(0.000001), false, "0.000001"},
		{"nan", Number(math.NaN()), false, "NaN"},
		{"infinity", Number(math.Inf(1)), false, "Infinity"},
		{"negative infinity", Number(math.Inf(-1)), false, "-Infinity"},
		{"true", Bool(true), false, "true"},
		{"false", Bool(false), false, "false"},
		{"string", String("hello"), false, `"hello"`},
		{"string verbatim", String(`a"b`), false, `"a"b"`},
		{"empty list", List{}, false, "[]"},
		{"list", List{Number(1), String("x"), Bool(false)}, false, `[1, "x", false]`},
		{"nested list", List{Vec(1, 2), Vec(3, 4)}, false, "[[1, 2], [3, 4]]"},
		{"variable", d, false, "d"},
		{"variable in list", List{d, Number(1)}, false, "[d, 1]"},
		{
			"record argument",
			Opts("size", Vec(1, 2, 3), "center", true),
			true,
			"size=[1, 2, 3], center=true",
		},
		{
			"record drops reserved and absent fields",
			Record{
				{"parent", Number(1)},
				{"r", Number(5)},
				{"fs", Number(2)},
				{"d", nil},
				{"opts", Bool(true)},
				{"$fn", Number(32)},
			},
			true,
			"r=5, $fn=32",
		},
		{"record with variable", Opts("r", d), true, "r=d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := doc.WriteValue(tt.value, tt.isArg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("WriteValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteValue_StringEscaping(t *testing.T) {
	doc := New(WithStringEscaping(true))

	got, err := doc.WriteValue(String(`say "hi" \o/`), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `"say \"hi\" \\o/"`
	if got != want {
		t.Errorf("WriteValue() = %q, want %q", got, want)
	}
}

func TestWriteValue_Unsupported(t *testing.T) {
	doc := New()

	var nilVar *Variable

	tests := []struct {
		name  string
		value Value
	}{
		{"record outside argument", Opts("r", 1)},
		{"record nested in list", List{Opts("r", 1)}},
		{"record nested in record", Record{{"inner", Opts("r", 1)}}},
		{"absent", nil},
		{"nil variable", nilVar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isArg := tt.name == "record nested in record"

			_, err := doc.WriteValue(tt.value, isArg)
			if !errors.Is(err, ErrUnsupportedValue) {
				t.Errorf("expected ErrUnsupportedValue, got %v", err)
			}
		})
	}
}

func TestWriteArgs(t *testing.T) {
	doc := New()

	tests := []struct {
		name string
		args []Value
		want string
	}{
		{"none", nil, ""},
		{"positional", []Value{Number(10), Vec(0, 0, 1)}, "10, [0, 0, 1]"},
		{"mixed", []Value{Vec(1, 2, 3), Opts("center", true)}, "[1, 2, 3], center=true"},
		{"absent dropped", []Value{nil, Number(1), nil}, "1"},
		{"empty record dropped", []Value{Number(1), Record{}}, "1"},
		{"reserved-only record dropped", []Value{Record{{"parent", Number(1)}}}, ""},
		{"two records", []Value{Opts("r", 1), Opts("h", 2)}, "r=1, h=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := doc.WriteArgs(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("WriteArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}
