package shaft

import (
	"math"
	"testing"
)

func TestCombineBendingMoments(t *testing.T) {
	permutations := [][]float64{
		{100, -40, 25},
		{-40, 100, 25},
		{25, -40, 100},
	}

	for _, values := range permutations {
		moments := make([]MomentContribution, len(values))
		for i, v := range values {
			moments[i] = MomentContribution{Position: float64(i) * 0.1, Moment: v}
		}
		if got := CombineBendingMoments(moments); math.Abs(got-85) > 1e-9 {
			t.Errorf("CombineBendingMoments(%v) = %.4f, want 85", values, got)
		}
	}
}

func TestCombineBendingMomentsEmpty(t *testing.T) {
	if got := CombineBendingMoments(nil); got != 0 {
		t.Errorf("empty superposition = %.4f, want 0", got)
	}
}

func TestGearVariants(t *testing.T) {
	angle := 20 * math.Pi / 180
	torque := 149.21875

	byDia := GearByDiameter(0.2, 0.2, angle)
	if byDia.ForceSpecified() {
		t.Error("diameter-specified gear reports force-specified")
	}
	ft, fr := byDia.Forces(torque)
	if math.Abs(ft-2984.375) > 1e-6 {
		t.Errorf("Ft = %.4f, want 2984.375", ft)
	}
	if math.Abs(fr-ft*math.Tan(angle)) > 1e-9 {
		t.Errorf("Fr = %.4f, want Ft·tan(20°)", fr)
	}

	byForce := GearByForce(0.2, 1000, angle)
	if !byForce.ForceSpecified() {
		t.Error("force-specified gear reports diameter-specified")
	}
	ft, fr = byForce.Forces(torque)
	if ft != 1000 {
		t.Errorf("Ft = %.4f, want the specified 1000", ft)
	}
	if math.Abs(fr-1000*math.Tan(angle)) > 1e-9 {
		t.Errorf("Fr = %.4f, want 1000·tan(20°)", fr)
	}
}

func TestSpecValidate(t *testing.T) {
	valid := func() Spec {
		return Spec{
			Length:         1.0,
			Material:       testMaterial(),
			FactorOfSafety: 2,
			PowerKW:        15,
			SpeedRPM:       960,
			Gears:          []Gear{GearByDiameter(0.2, 0.2, 20*math.Pi/180)},
			Pulleys:        []Pulley{{Position: 0.5, PitchDiameter: 0.3, TensionRatio: 2}},
		}
	}

	if s := valid(); s.Validate() != nil {
		t.Fatalf("valid spec rejected: %v", s.Validate())
	}

	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"zero length", func(s *Spec) { s.Length = 0 }},
		{"zero factor of safety", func(s *Spec) { s.FactorOfSafety = 0 }},
		{"zero yield strength", func(s *Spec) { s.Material.YieldStrength = 0 }},
		{"gear beyond shaft end", func(s *Spec) { s.Gears[0].Position = 1.5 }},
		{"gear pressure angle above 45°", func(s *Spec) { s.Gears[0].PressureAngle = math.Pi / 3 }},
		{"pulley beyond shaft end", func(s *Spec) { s.Pulleys[0].Position = 2 }},
		{"pulley zero diameter", func(s *Spec) { s.Pulleys[0].PitchDiameter = 0 }},
		{"pulley tension ratio of 1", func(s *Spec) { s.Pulleys[0].TensionRatio = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			if s.Validate() == nil {
				t.Error("expected validation error")
			}
		})
	}
}
