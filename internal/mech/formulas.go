// Package mech implements the static mechanics formulas for sizing a
// solid circular shaft under torsion, bending, and combined loading.
//
// Unit conventions: positions and diameters in metres, forces in
// newtons, moments and torque in newton-metres, power in kilowatts,
// rotational speed in rev/min, angles in radians, yield strength in MPa.
package mech

import (
	"fmt"
	"math"
)

const (
	// PowerTorqueConstant converts power (kW) and speed (rev/min) to
	// torque (N·m): T = 9550·P/n.
	PowerTorqueConstant = 9550.0

	// MPa scales megapascals to pascals.
	MPa = 1e6
)

// TorqueFromPower returns the transmitted torque in N·m.
// A non-positive speed means no rotation and therefore zero torque.
func TorqueFromPower(powerKW, rpm float64) float64 {
	if rpm <= 0 {
		return 0
	}
	return PowerTorqueConstant * powerKW / rpm
}

// GearForces returns the tangential and radial gear-mesh forces for a
// given shaft torque: Ft = 2T/r, Fr = Ft·tan(pressureAngle).
// Degenerate geometry (pitch diameter ≤ 0) yields zero forces.
func GearForces(torque, pitchDiameter, pressureAngle float64) (ft, fr float64) {
	if pitchDiameter <= 0 {
		return 0, 0
	}
	radius := pitchDiameter / 2
	ft = 2 * torque / radius
	fr = ft * math.Tan(pressureAngle)
	return ft, fr
}

// RadialFromTangential derives the radial mesh force from a directly
// specified tangential force.
func RadialFromTangential(ft, pressureAngle float64) float64 {
	return ft * math.Tan(pressureAngle)
}

// PulleyTensions solves the belt tensions from torque = (T1−T2)·r and
// T1 = ratio·T2. Unlike the gear case, degenerate inputs make the
// system singular, so they are rejected rather than zeroed.
func PulleyTensions(torque, pitchDiameter, tensionRatio float64) (t1, t2 float64, err error) {
	if pitchDiameter <= 0 {
		return 0, 0, fmt.Errorf("invalid pulley diameter: %.4f m, must be positive", pitchDiameter)
	}
	if tensionRatio <= 1 {
		return 0, 0, fmt.Errorf("invalid belt tension ratio: %.4f, must be greater than 1", tensionRatio)
	}
	radius := pitchDiameter / 2
	t2 = torque / (radius * (tensionRatio - 1))
	t1 = tensionRatio * t2
	return t1, t2, nil
}

// PointLoadMoment returns the bending moment of a point load about the
// left reference end of the shaft.
func PointLoadMoment(force, position float64) float64 {
	return force * position
}

func allowableStress(syMPa, fos float64) (float64, error) {
	if syMPa <= 0 || fos <= 0 {
		return 0, fmt.Errorf("invalid material properties: Sy=%.2f MPa, fos=%.2f", syMPa, fos)
	}
	return syMPa * MPa / fos, nil
}

// DiameterFromTorsion solves τ = 16T/(πd³) for the minimum diameter (m).
func DiameterFromTorsion(torque, syMPa, fos float64) (float64, error) {
	tauAllow, err := allowableStress(syMPa, fos)
	if err != nil {
		return 0, err
	}
	return math.Cbrt(16 * torque / (math.Pi * tauAllow)), nil
}

// DiameterFromBending solves σ = 32M/(πd³) for the minimum diameter (m).
func DiameterFromBending(moment, syMPa, fos float64) (float64, error) {
	sigmaAllow, err := allowableStress(syMPa, fos)
	if err != nil {
		return 0, err
	}
	return math.Cbrt(32 * moment / (math.Pi * sigmaAllow)), nil
}

// DiameterFromCombined applies the ASME-style combined stress formula
//
//	d = [(16/(π·τ_allow))·√((Kb·M)² + (Kt·T)²)]^(1/3)
//
// kb and kt are shock/stress-concentration factors, typically 1.
func DiameterFromCombined(moment, torque, syMPa, fos, kb, kt float64) (float64, error) {
	tauAllow, err := allowableStress(syMPa, fos)
	if err != nil {
		return 0, err
	}
	term := math.Hypot(kb*moment, kt*torque)
	return math.Cbrt(16 / (math.Pi * tauAllow) * term), nil
}
