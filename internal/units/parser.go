package units

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// atoms maps a unit symbol to its definition. Populated by register in this
// file; symbols are case-sensitive (mol vs Mol would be distinct, only the
// former exists).
var atoms = map[string]Unit{}

func register(name string, dim Dimension, factor, offset float64) {
	if _, exists := atoms[name]; exists {
		panic(fmt.Sprintf("unit symbol %q already registered", name))
	}
	atoms[name] = Unit{name: name, dim: dim, factor: factor, offset: offset}
}

func init() {
	var (
		mass   = Dimension{Mass: 1}
		length = Dimension{Length: 1}
		time   = Dimension{Time: 1}
		temp   = Dimension{Temperature: 1}
		amount = Dimension{Amount: 1}

		pressure = Dimension{Mass: 1, Length: -1, Time: -2}
		energy   = Dimension{Mass: 1, Length: 2, Time: -2}
		power    = Dimension{Mass: 1, Length: 2, Time: -3}
		volume   = Dimension{Length: 3}
	)

	// Mass.
	register("kg", mass, 1, 0)
	register("g", mass, 1e-3, 0)
	register("mg", mass, 1e-6, 0)
	register("t", mass, 1e3, 0)
	register("lb", mass, 0.45359237, 0)

	// Length and volume.
	register("m", length, 1, 0)
	register("cm", length, 1e-2, 0)
	register("mm", length, 1e-3, 0)
	register("km", length, 1e3, 0)
	register("ft", length, 0.3048, 0)
	register("L", volume, 1e-3, 0)
	register("mL", volume, 1e-6, 0)

	// Time.
	register("s", time, 1, 0)
	register("min", time, 60, 0)
	register("hr", time, 3600, 0)
	register("day", time, 86400, 0)

	// Temperature. degC and degF are affine and only valid standalone;
	// K and R compose freely.
	register("K", temp, 1, 0)
	register("R", temp, 5.0/9.0, 0)
	register("degC", temp, 1, 273.15)
	register("degF", temp, 5.0/9.0, 255.3722222222222)

	// Amount of substance.
	register("mol", amount, 1, 0)
	register("kmol", amount, 1e3, 0)
	register("mmol", amount, 1e-3, 0)

	// Pressure.
	register("Pa", pressure, 1, 0)
	register("kPa", pressure, 1e3, 0)
	register("MPa", pressure, 1e6, 0)
	register("bar", pressure, 1e5, 0)
	register("atm", pressure, 101325, 0)
	register("psi", pressure, 6894.757293168361, 0)
	register("mmHg", pressure, 133.322387415, 0)

	// Energy and power.
	register("J", energy, 1, 0)
	register("kJ", energy, 1e3, 0)
	register("MJ", energy, 1e6, 0)
	register("cal", energy, 4.184, 0)
	register("kcal", energy, 4184, 0)
	register("BTU", energy, 1055.05585262, 0)
	register("W", power, 1, 0)
	register("kW", power, 1e3, 0)

	// Dimensionless ratio.
	register("dimensionless", dimensionless, 1, 0)
}

// atomRegex matches a single parsed atom: a symbol with an optional integer
// exponent, e.g. `m`, `m^3`, `s^-2`.
var atomRegex = regexp.MustCompile(`^([A-Za-z]+)(?:\^(-?\d+))?$`)

// Parse interprets a unit expression such as "K", "J/mol/K", "kg*m^2/s^2" or
// "m^3". Terms multiply left to right; each "/" divides by everything in the
// following term. Affine scales (degC, degF) are accepted only as the whole
// expression, since an offset is meaningless inside a compound unit.
func Parse(expr string) (Unit, error) {
	s := strings.TrimSpace(expr)
	if s == "" || s == "none" {
		return None, nil
	}

	if u, ok := atoms[s]; ok {
		return u, nil
	}

	result := Unit{name: s, factor: 1}
	for i, divTerm := range strings.Split(s, "/") {
		for _, mulTerm := range strings.Split(divTerm, "*") {
			atom, err := parseAtom(mulTerm)
			if err != nil {
				return None, fmt.Errorf("invalid unit expression %q: %w", expr, err)
			}
			if atom.affine() {
				return None, fmt.Errorf("invalid unit expression %q: %s cannot appear in a compound unit", expr, atom.name)
			}
			if i == 0 {
				result.dim = result.dim.mul(atom.dim)
				result.factor *= atom.factor
			} else {
				result.dim = result.dim.div(atom.dim)
				result.factor /= atom.factor
			}
		}
	}
	return result, nil
}

// MustParse is a Parse wrapper for unit literals in code. It panics on error.
func MustParse(expr string) Unit {
	u, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return u
}

func parseAtom(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	matches := atomRegex.FindStringSubmatch(s)
	if matches == nil {
		return None, fmt.Errorf("malformed term %q", s)
	}

	u, ok := atoms[matches[1]]
	if !ok {
		return None, fmt.Errorf("unknown unit symbol %q", matches[1])
	}

	if matches[2] != "" {
		exp, err := strconv.Atoi(matches[2])
		if err != nil {
			// Unreachable due to regex `-?\d+`
			return None, fmt.Errorf("internal error parsing exponent: %w", err)
		}
		if exp < -8 || exp > 8 {
			return None, fmt.Errorf("exponent %d out of range in term %q", exp, s)
		}
		if u.affine() {
			return None, fmt.Errorf("%s cannot take an exponent", u.name)
		}
		u.dim = u.dim.pow(int8(exp))
		u.factor = powf(u.factor, exp)
	}
	return u, nil
}

// powf computes f^n for small integer n without pulling in math.Pow
// rounding surprises for the common exact cases.
func powf(f float64, n int) float64 {
	if n < 0 {
		return 1 / powf(f, -n)
	}
	out := 1.0
	for i := 0; i < n; i++ {
		out *= f
	}
	return out
}
