package units

import (
	"math"
	"testing"
)

func TestLengthRoundTrip(t *testing.T) {
	values := []float64{0, 0.5, 1, 42, 1609.344, 123456.789}
	lengths := Length.Units()
	for _, from := range lengths {
		for _, to := range lengths {
			for _, v := range values {
				got := Convert(Convert(v, from, to), to, from)
				if math.Abs(got-v) > 1e-9*math.Max(1, math.Abs(v)) {
					t.Fatalf("round trip %s->%s->%s of %v = %v", from.Label(), to.Label(), from.Label(), v, got)
				}
			}
		}
	}
}

func TestTemperatureAnchors(t *testing.T) {
	if got := Convert(0, Celsius, Fahrenheit); math.Abs(got-32) > 1e-9 {
		t.Fatalf("0C = %vF, want 32", got)
	}
	if got := Convert(100, Celsius, Fahrenheit); math.Abs(got-212) > 1e-9 {
		t.Fatalf("100C = %vF, want 212", got)
	}
	if got := Convert(0, Celsius, Kelvin); math.Abs(got-273.15) > 1e-9 {
		t.Fatalf("0C = %vK, want 273.15", got)
	}
	for _, f := range []float64{-40, 0, 32, 98.6, 212} {
		got := Convert(Convert(f, Fahrenheit, Celsius), Celsius, Fahrenheit)
		if math.Abs(got-f) > 1e-9 {
			t.Fatalf("F->C->F of %v = %v", f, got)
		}
	}
}

func TestKnownConversions(t *testing.T) {
	cases := []struct {
		v        float64
		from, to Unit
		want     float64
	}{
		{1, Kilometers, Meters, 1000},
		{1, Miles, Kilometers, 1.609344},
		{3, Feet, Yards, 1},
		{10, Meters, Feet, 32.808398950131235},
		{-40, Celsius, Fahrenheit, -40},
	}
	for _, c := range cases {
		got := Convert(c.v, c.from, c.to)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("%v %s -> %s = %v, want %v", c.v, c.from.Label(), c.to.Label(), got, c.want)
		}
	}
}

func TestCategoryDefaults(t *testing.T) {
	if Length.DefaultInput() != Meters || Length.DefaultOutput() != Miles {
		t.Fatalf("length defaults = %s/%s", Length.DefaultInput().Label(), Length.DefaultOutput().Label())
	}
	if Temperature.DefaultInput() != Celsius || Temperature.DefaultOutput() != Kelvin {
		t.Fatalf("temperature defaults = %s/%s", Temperature.DefaultInput().Label(), Temperature.DefaultOutput().Label())
	}
}

func TestUnitsBelongToCategory(t *testing.T) {
	for _, c := range Categories() {
		for _, u := range c.Units() {
			if u.Category() != c {
				t.Fatalf("%s listed under %s but reports %s", u.Label(), c.Label(), u.Category().Label())
			}
			if u.Label() == "" || u.Symbol() == "" {
				t.Fatalf("unit %d missing label or symbol", u)
			}
		}
	}
}

func TestParseValue(t *testing.T) {
	cases := map[string]float64{
		"":      0,
		"abc":   0,
		"1.5.2": 0,
		"NaN":   0,
		"Inf":   0,
		" 42 ":  42,
		"-3.25": -3.25,
	}
	for in, want := range cases {
		if got := ParseValue(in); got != want {
			t.Fatalf("ParseValue(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := FormatValue(32.808399, 2); got != "32.81" {
		t.Fatalf("FormatValue = %q", got)
	}
	if got := FormatValue(32.00, 2); got != "32" {
		t.Fatalf("FormatValue trims zeros: %q", got)
	}
	if got := FormatValue(-0.0001, 2); got != "0" {
		t.Fatalf("FormatValue negative zero: %q", got)
	}
	if got := Format(10, Meters, 2); got != "10 m" {
		t.Fatalf("Format = %q", got)
	}
	if got := Format(32.808399, Feet, 2); got != "32.81 ft" {
		t.Fatalf("Format = %q", got)
	}
}
