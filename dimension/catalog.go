// SPDX-License-Identifier: MIT

// Package dimension - named SI dimensions.
//
// Every constant is a Literal with exact integer exponents in
// [L, M, T, I, Θ, N, J] order. Lookup resolves catalog names
// case-insensitively; spaces and hyphens are treated as underscores.
package dimension

import (
	"fmt"
	"sort"
	"strings"
)

// Base dimensions.
var (
	Dimensionless     = Literal(0, 0, 0, 0, 0, 0, 0)
	Length            = Literal(1, 0, 0, 0, 0, 0, 0)
	Mass              = Literal(0, 1, 0, 0, 0, 0, 0)
	Time              = Literal(0, 0, 1, 0, 0, 0, 0)
	ElectricCurrent   = Literal(0, 0, 0, 1, 0, 0, 0)
	Temperature       = Literal(0, 0, 0, 0, 1, 0, 0)
	AmountOfSubstance = Literal(0, 0, 0, 0, 0, 1, 0)
	LuminousIntensity = Literal(0, 0, 0, 0, 0, 0, 1)
)

// Mechanical dimensions.
var (
	Area         = Literal(2, 0, 0, 0, 0, 0, 0)
	Volume       = Literal(3, 0, 0, 0, 0, 0, 0)
	Frequency    = Literal(0, 0, -1, 0, 0, 0, 0)
	Velocity     = Literal(1, 0, -1, 0, 0, 0, 0)
	Acceleration = Literal(1, 0, -2, 0, 0, 0, 0)
	Momentum     = Literal(1, 1, -1, 0, 0, 0, 0)
	Force        = Literal(1, 1, -2, 0, 0, 0, 0)
	Energy       = Literal(2, 1, -2, 0, 0, 0, 0)
	Power        = Literal(2, 1, -3, 0, 0, 0, 0)
	Density      = Literal(-3, 1, 0, 0, 0, 0, 0)
	Pressure     = Literal(-1, 1, -2, 0, 0, 0, 0)
)

// Electromagnetic dimensions.
var (
	ElectricCharge      = Literal(0, 0, 1, 1, 0, 0, 0)
	ElectricPotential   = Literal(2, 1, -3, -1, 0, 0, 0)
	Resistance          = Literal(2, 1, -3, -2, 0, 0, 0)
	Capacitance         = Literal(-2, -1, 4, 2, 0, 0, 0)
	Inductance          = Literal(2, 1, -2, -2, 0, 0, 0)
	MagneticFlux        = Literal(2, 1, -2, -1, 0, 0, 0)
	MagneticFluxDensity = Literal(0, 1, -2, -1, 0, 0, 0)
	MagneticField       = Literal(-1, 0, 0, 1, 0, 0, 0)

	// Flux and FluxDensity are short aliases of the magnetic quantities.
	Flux        = MagneticFlux
	FluxDensity = MagneticFluxDensity
)

var catalog = map[string]Dimension{
	"dimensionless":         Dimensionless,
	"length":                Length,
	"mass":                  Mass,
	"time":                  Time,
	"electric_current":      ElectricCurrent,
	"temperature":           Temperature,
	"amount_of_substance":   AmountOfSubstance,
	"luminous_intensity":    LuminousIntensity,
	"area":                  Area,
	"volume":                Volume,
	"frequency":             Frequency,
	"velocity":              Velocity,
	"acceleration":          Acceleration,
	"momentum":              Momentum,
	"force":                 Force,
	"energy":                Energy,
	"power":                 Power,
	"density":               Density,
	"pressure":              Pressure,
	"electric_charge":       ElectricCharge,
	"electric_potential":    ElectricPotential,
	"resistance":            Resistance,
	"capacitance":           Capacitance,
	"inductance":            Inductance,
	"flux":                  Flux,
	"flux_density":          FluxDensity,
	"magnetic_flux":         MagneticFlux,
	"magnetic_flux_density": MagneticFluxDensity,
	"magnetic_field":        MagneticField,
}

// normalizeName lowercases name and maps spaces and hyphens to underscores.
func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return '_'
		}

		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

// Lookup resolves a catalog name such as "force" or "Magnetic Flux".
func Lookup(name string) (Dimension, error) {
	d, ok := catalog[normalizeName(name)]
	if !ok {
		return Dimension{}, dimensionErrorf(fmt.Sprintf("Lookup(%q)", name), ErrParse)
	}

	return d, nil
}

// Names returns every catalog name in sorted order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Resolve accepts either a catalog name or the canonical text form.
// The bare "-" always means dimensionless.
func Resolve(s string) (Dimension, error) {
	if d, err := Lookup(s); err == nil {
		return d, nil
	}
	d, err := Parse(s)
	if err != nil {
		return Dimension{}, dimensionErrorf(fmt.Sprintf("Resolve(%q)", s), ErrParse)
	}

	return d, nil
}
