// Package physconst holds the physical constants used throughout the
// course library, in the unit conventions of the course sheets
// (energies in eV, lengths in meters).
package physconst

import "math"

// SI values, truncated to the precision used in the course material.
const (
	// ElementaryCharge is the elementary charge in coulombs.
	ElementaryCharge = 1.60217662e-19

	// SpeedOfLight is the speed of light in vacuum in m/s.
	SpeedOfLight = 299792458.0

	// ProtonRestEnergy is the proton rest energy in eV.
	ProtonRestEnergy = 938.27e6
)

// Gamma returns the Lorentz factor for a particle of kinetic energy ek
// and rest energy rest, both in eV.
func Gamma(ek, rest float64) float64 {
	return 1 + ek/rest
}

// BetaGamma returns the relativistic beta*gamma product for a particle of
// kinetic energy ek and rest energy rest, both in eV.
func BetaGamma(ek, rest float64) float64 {
	g := Gamma(ek, rest)
	return math.Sqrt(g*g - 1)
}

// Beta returns the velocity of the particle as a fraction of the speed of
// light, for kinetic energy ek and rest energy rest in eV.
func Beta(ek, rest float64) float64 {
	g := Gamma(ek, rest)
	return BetaGamma(ek, rest) / g
}
