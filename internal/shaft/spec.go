// Package shaft models a rotating shaft carrying gears and pulleys and
// sizes it for combined torsional and bending loads.
//
// Modeling limitation: all transverse forces and bending moments are
// treated as collinear scalars acting in a single plane. Load
// directions are not resolved in 3-D; the sizing formulas assume one
// resultant bending moment.
package shaft

import (
	"fmt"
	"math"

	"github.com/tanishapritha/shaft-designer/internal/catalog"
	"github.com/tanishapritha/shaft-designer/internal/mech"
)

// maxPressureAngle bounds gear pressure angles to 45°.
const maxPressureAngle = math.Pi / 4

// Gear is a gear mounted on the shaft. The mesh force is either derived
// from the pitch diameter and the shaft torque, or specified directly;
// the two input modes are mutually exclusive and fixed at construction.
type Gear struct {
	Position      float64 // m, from the left bearing
	PressureAngle float64 // rad

	pitchDiameter  float64 // m, diameter-specified mode
	tangential     float64 // N, force-specified mode
	forceSpecified bool
}

// GearByDiameter constructs a gear whose tangential force follows from
// the transmitted torque and the pitch diameter.
func GearByDiameter(position, pitchDiameter, pressureAngle float64) Gear {
	return Gear{
		Position:      position,
		PressureAngle: pressureAngle,
		pitchDiameter: pitchDiameter,
	}
}

// GearByForce constructs a gear with a directly specified tangential force.
func GearByForce(position, tangential, pressureAngle float64) Gear {
	return Gear{
		Position:       position,
		PressureAngle:  pressureAngle,
		tangential:     tangential,
		forceSpecified: true,
	}
}

// ForceSpecified reports whether the gear carries a direct tangential
// force instead of deriving it from geometry.
func (g Gear) ForceSpecified() bool {
	return g.forceSpecified
}

// Forces returns the tangential and radial mesh forces for the given
// shaft torque.
func (g Gear) Forces(torque float64) (ft, fr float64) {
	if g.forceSpecified {
		return g.tangential, mech.RadialFromTangential(g.tangential, g.PressureAngle)
	}
	return mech.GearForces(torque, g.pitchDiameter, g.PressureAngle)
}

// Pulley is a belt pulley mounted on the shaft.
type Pulley struct {
	Position      float64 // m, from the left bearing
	PitchDiameter float64 // m
	TensionRatio  float64 // tight/slack side, T1/T2
}

// Tensions returns the tight- and slack-side belt tensions for the
// given shaft torque.
func (p Pulley) Tensions(torque float64) (t1, t2 float64, err error) {
	return mech.PulleyTensions(torque, p.PitchDiameter, p.TensionRatio)
}

// Spec is one complete design case. Build it fresh per evaluation; the
// design pipeline never mutates it.
type Spec struct {
	Length         float64 // m
	Material       catalog.Material
	FactorOfSafety float64
	PowerKW        float64
	SpeedRPM       float64
	Gears          []Gear
	Pulleys        []Pulley
	ExtraMoment    float64 // N·m, manually supplied bending moment
	ExtraTorque    float64 // N·m, manually supplied torsional moment
}

// Validate checks the structural invariants of the design case.
func (s *Spec) Validate() error {
	if s.Length <= 0 {
		return fmt.Errorf("invalid shaft length: %.4f m, must be positive", s.Length)
	}
	if s.FactorOfSafety <= 0 {
		return fmt.Errorf("invalid factor of safety: %.2f, must be positive", s.FactorOfSafety)
	}
	if s.Material.YieldStrength <= 0 {
		return fmt.Errorf("invalid yield strength for %q: %.2f MPa, must be positive", s.Material.Name, s.Material.YieldStrength)
	}
	for i, g := range s.Gears {
		if g.Position < 0 || g.Position > s.Length {
			return fmt.Errorf("gear #%d position %.4f m outside shaft span [0, %.4f]", i+1, g.Position, s.Length)
		}
		if g.PressureAngle < 0 || g.PressureAngle > maxPressureAngle {
			return fmt.Errorf("gear #%d pressure angle %.4f rad outside [0, π/4]", i+1, g.PressureAngle)
		}
	}
	for i, p := range s.Pulleys {
		if p.Position < 0 || p.Position > s.Length {
			return fmt.Errorf("pulley #%d position %.4f m outside shaft span [0, %.4f]", i+1, p.Position, s.Length)
		}
		if p.PitchDiameter <= 0 {
			return fmt.Errorf("pulley #%d pitch diameter %.4f m must be positive", i+1, p.PitchDiameter)
		}
		if p.TensionRatio <= 1 {
			return fmt.Errorf("pulley #%d belt tension ratio %.4f must be greater than 1", i+1, p.TensionRatio)
		}
	}
	return nil
}
