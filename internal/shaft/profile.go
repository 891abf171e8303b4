package shaft

import (
	"fmt"
	"math"
)

// Sample is one (position, magnitude) point of a step profile.
type Sample struct {
	Position float64 // m
	Value    float64
}

// Profile holds the shear-force and bending-moment distributions along
// the shaft as three parallel ordered sequences.
type Profile struct {
	Positions []float64 // m
	Shear     []float64 // V, N
	Moment    []float64 // M, N·m
}

// MaxAbsMoment returns the largest absolute bending moment in the profile.
func (p *Profile) MaxAbsMoment() float64 {
	var max float64
	for _, m := range p.Moment {
		if a := math.Abs(m); a > max {
			max = a
		}
	}
	return max
}

// MaxAbsShear returns the largest absolute shear force in the profile.
func (p *Profile) MaxAbsShear() float64 {
	var max float64
	for _, v := range p.Shear {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

// Reactions solves the support reactions of a simply supported shaft
// over [supportA, supportB] by taking moments about B:
// RA = ΣF·(B−x)/(B−A), RB = ΣF − RA.
func Reactions(loads []PointLoad, supportA, supportB float64) (ra, rb float64, err error) {
	span := supportB - supportA
	if span <= 0 {
		return 0, 0, fmt.Errorf("invalid support span: [%.4f, %.4f]", supportA, supportB)
	}
	var totalForce, momentAboutB float64
	for _, l := range loads {
		totalForce += l.Force
		momentAboutB += l.Force * (supportB - l.Position)
	}
	ra = momentAboutB / span
	rb = totalForce - ra
	return ra, rb, nil
}

// ShearMomentProfile samples V(x) and M(x) over [0, length] at the
// given step, inclusive of both endpoints. Each point load switches on
// once x reaches its position (the "≤" comparison matches the physical
// step of a point force on a shear diagram):
//
//	V(x) = RA + Σ{F : pos ≤ x}
//	M(x) = RA·x + Σ{F·(x − pos) : pos ≤ x}
func ShearMomentProfile(length, step, ra float64, loads []PointLoad) (*Profile, error) {
	if length <= 0 {
		return nil, fmt.Errorf("invalid shaft length: %.4f m, must be positive", length)
	}
	if step <= 0 || step > length {
		return nil, fmt.Errorf("invalid discretization step: %.4f m, must be in (0, %.4f]", step, length)
	}

	steps := int(math.Floor(length/step + 1e-9))
	prof := &Profile{
		Positions: make([]float64, 0, steps+2),
		Shear:     make([]float64, 0, steps+2),
		Moment:    make([]float64, 0, steps+2),
	}

	sample := func(x float64) {
		v := ra
		m := ra * x
		for _, l := range loads {
			if l.Position <= x {
				v += l.Force
				m += l.Force * (x - l.Position)
			}
		}
		prof.Positions = append(prof.Positions, x)
		prof.Shear = append(prof.Shear, v)
		prof.Moment = append(prof.Moment, m)
	}

	for i := 0; i <= steps; i++ {
		sample(float64(i) * step)
	}
	// The right endpoint is always part of the profile even when the
	// span is not an exact multiple of the step.
	if last := float64(steps) * step; length-last > step*1e-9 {
		sample(length)
	}

	return prof, nil
}

// TorqueProfile accumulates torque step contributions along the shaft,
// producing the (position, torque) sequence for a torque diagram. Each
// segment switches on once x reaches its position.
func TorqueProfile(length, step float64, segments []Sample) (positions, torque []float64, err error) {
	if length <= 0 {
		return nil, nil, fmt.Errorf("invalid shaft length: %.4f m, must be positive", length)
	}
	if step <= 0 || step > length {
		return nil, nil, fmt.Errorf("invalid discretization step: %.4f m, must be in (0, %.4f]", step, length)
	}

	sample := func(x float64) {
		var t float64
		for _, s := range segments {
			if s.Position <= x {
				t += s.Value
			}
		}
		positions = append(positions, x)
		torque = append(torque, t)
	}

	steps := int(math.Floor(length/step + 1e-9))
	for i := 0; i <= steps; i++ {
		sample(float64(i) * step)
	}
	// Same ragged-endpoint rule as ShearMomentProfile, so the two
	// profiles stay pairwise aligned for rendering.
	if last := float64(steps) * step; length-last > step*1e-9 {
		sample(length)
	}
	return positions, torque, nil
}
