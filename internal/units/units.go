package units

import (
	"math"
	"strconv"
	"strings"
)

// Category is a family of compatible units. Conversion is only defined
// between units of the same category.
type Category int

const (
	Length Category = iota
	Temperature
)

func (c Category) Label() string {
	switch c {
	case Temperature:
		return "Temperature"
	default:
		return "Length"
	}
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{Length, Temperature}
}

// Unit is one member of a category's closed unit set.
type Unit int

const (
	Meters Unit = iota
	Kilometers
	Feet
	Yards
	Miles
	Celsius
	Fahrenheit
	Kelvin
)

// unitDef describes a unit relative to its category's base unit
// (meters for length, degrees Celsius for temperature):
// base = value*scale + offset.
type unitDef struct {
	category Category
	label    string
	symbol   string
	scale    float64
	offset   float64
}

var defs = map[Unit]unitDef{
	Meters:     {Length, "meters", "m", 1, 0},
	Kilometers: {Length, "kilometers", "km", 1000, 0},
	Feet:       {Length, "feet", "ft", 0.3048, 0},
	Yards:      {Length, "yards", "yd", 0.9144, 0},
	Miles:      {Length, "miles", "mi", 1609.344, 0},
	Celsius:    {Temperature, "Celsius", "°C", 1, 0},
	Fahrenheit: {Temperature, "Fahrenheit", "°F", 5.0 / 9.0, -160.0 / 9.0},
	Kelvin:     {Temperature, "Kelvin", "K", 1, -273.15},
}

var byCategory = map[Category][]Unit{
	Length:      {Meters, Kilometers, Feet, Yards, Miles},
	Temperature: {Celsius, Fahrenheit, Kelvin},
}

func (u Unit) Label() string  { return defs[u].label }
func (u Unit) Symbol() string { return defs[u].symbol }

func (u Unit) Category() Category { return defs[u].category }

// Units returns the category's unit set in display order.
func (c Category) Units() []Unit {
	return append([]Unit(nil), byCategory[c]...)
}

// DefaultInput is the unit selected for input when the category is activated.
func (c Category) DefaultInput() Unit {
	return byCategory[c][0]
}

// DefaultOutput is the unit selected for output when the category is activated.
func (c Category) DefaultOutput() Unit {
	us := byCategory[c]
	return us[len(us)-1]
}

// Convert converts v from one unit to another of the same category.
// Pure and deterministic; callers guarantee the category match by only
// offering same-category unit pairs.
func Convert(v float64, from, to Unit) float64 {
	f, t := defs[from], defs[to]
	base := v*f.scale + f.offset
	return (base - t.offset) / t.scale
}

// ParseValue parses user numeric input. Empty or malformed text is
// coerced to zero rather than surfaced as an error.
func ParseValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatValue renders v with at most precision fraction digits,
// trimming trailing zeros.
func FormatValue(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if precision > 0 && strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Format renders v with its unit symbol, e.g. "32.81 ft".
func Format(v float64, u Unit, precision int) string {
	return FormatValue(v, precision) + " " + u.Symbol()
}
