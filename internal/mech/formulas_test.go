package mech

import (
	"math"
	"testing"
)

func TestTorqueFromPower(t *testing.T) {
	tests := []struct {
		name     string
		powerKW  float64
		rpm      float64
		expected float64
	}{
		{"15 kW at 960 rpm", 15, 960, 149.21875},
		{"zero speed gives zero torque", 20, 0, 0},
		{"negative speed gives zero torque", 20, -100, 0},
		{"zero power", 0, 1500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TorqueFromPower(tt.powerKW, tt.rpm)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("TorqueFromPower(%.1f, %.1f) = %.5f, want %.5f",
					tt.powerKW, tt.rpm, got, tt.expected)
			}
		})
	}
}

func TestTorqueFromPowerScaling(t *testing.T) {
	base := TorqueFromPower(10, 1200)
	if doubled := TorqueFromPower(20, 1200); math.Abs(doubled-2*base) > 1e-9 {
		t.Errorf("torque not linear in power: %.5f vs 2x%.5f", doubled, base)
	}
	if halved := TorqueFromPower(10, 2400); math.Abs(halved-base/2) > 1e-9 {
		t.Errorf("torque not inverse in speed: %.5f vs %.5f/2", halved, base)
	}
}

func TestGearForces(t *testing.T) {
	angle := 20 * math.Pi / 180

	ft, fr := GearForces(149.21875, 0.2, angle)
	if math.Abs(ft-2984.375) > 1e-6 {
		t.Errorf("Ft = %.4f, want 2984.375", ft)
	}
	if ratio := fr / ft; math.Abs(ratio-math.Tan(angle)) > 1e-12 {
		t.Errorf("Fr/Ft = %.6f, want tan(20°) = %.6f", ratio, math.Tan(angle))
	}

	// Degenerate geometry is a no-op, not an error.
	if ft, fr := GearForces(100, 0, angle); ft != 0 || fr != 0 {
		t.Errorf("zero diameter should give zero forces, got (%.2f, %.2f)", ft, fr)
	}
	if ft, fr := GearForces(100, -0.1, angle); ft != 0 || fr != 0 {
		t.Errorf("negative diameter should give zero forces, got (%.2f, %.2f)", ft, fr)
	}
}

func TestRadialFromTangential(t *testing.T) {
	angle := 14.5 * math.Pi / 180
	fr := RadialFromTangential(1000, angle)
	if math.Abs(fr-1000*math.Tan(angle)) > 1e-9 {
		t.Errorf("RadialFromTangential = %.4f, want %.4f", fr, 1000*math.Tan(angle))
	}
}

func TestPulleyTensions(t *testing.T) {
	t1, t2, err := PulleyTensions(100, 0.3, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// radius = 0.15, T2 = 100/(0.15·1) = 666.67, T1 = 1333.33
	if math.Abs(t2-666.6666666) > 1e-3 {
		t.Errorf("T2 = %.4f, want 666.67", t2)
	}
	if math.Abs(t1-1333.3333333) > 1e-3 {
		t.Errorf("T1 = %.4f, want 1333.33", t1)
	}
}

func TestPulleyTensionsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		diameter float64
		ratio    float64
	}{
		{"ratio of exactly 1", 0.3, 1.0},
		{"ratio below 1", 0.3, 0.5},
		{"zero diameter", 0, 2.0},
		{"negative diameter", -0.3, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := PulleyTensions(100, tt.diameter, tt.ratio); err == nil {
				t.Errorf("PulleyTensions(100, %.2f, %.2f) should fail", tt.diameter, tt.ratio)
			}
		})
	}
}

func TestPointLoadMoment(t *testing.T) {
	if m := PointLoadMoment(2984.375, 0.2); math.Abs(m-596.875) > 1e-9 {
		t.Errorf("PointLoadMoment = %.4f, want 596.875", m)
	}
	if m := PointLoadMoment(-500, 0.4); math.Abs(m+200) > 1e-9 {
		t.Errorf("signed moment = %.4f, want -200", m)
	}
}

func TestDiameterFromTorsion(t *testing.T) {
	// τ_allow = 250/2 MPa = 125e6 Pa; d = (16·200/(π·125e6))^(1/3)
	d, err := DiameterFromTorsion(200, 250, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d < 0.0200 || d > 0.0202 {
		t.Errorf("d = %.5f m, expected range [0.0200, 0.0202]", d)
	}
}

func TestDiameterFromBending(t *testing.T) {
	d, err := DiameterFromBending(596.875, 400, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Cbrt(32 * 596.875 / (math.Pi * 200e6))
	if math.Abs(d-want) > 1e-9 {
		t.Errorf("d = %.6f m, want %.6f", d, want)
	}
}

func TestDiameterFromCombined(t *testing.T) {
	d, err := DiameterFromCombined(596.875, 149.21875, 400, 2, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d <= 0 {
		t.Fatalf("combined diameter must be positive, got %.6f", d)
	}

	// √(M²+T²) ≥ T, so combined sizing dominates torsion-only sizing.
	dt, _ := DiameterFromTorsion(149.21875, 400, 2)
	if d < dt {
		t.Errorf("combined %.6f smaller than torsion-only %.6f", d, dt)
	}
}

func TestDiameterNotComputable(t *testing.T) {
	tests := []struct {
		name string
		sy   float64
		fos  float64
	}{
		{"zero yield strength", 0, 2},
		{"negative yield strength", -250, 2},
		{"zero factor of safety", 250, 0},
		{"negative factor of safety", 250, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DiameterFromTorsion(100, tt.sy, tt.fos); err == nil {
				t.Error("DiameterFromTorsion should fail")
			}
			if _, err := DiameterFromBending(100, tt.sy, tt.fos); err == nil {
				t.Error("DiameterFromBending should fail")
			}
			if _, err := DiameterFromCombined(100, 50, tt.sy, tt.fos, 1, 1); err == nil {
				t.Error("DiameterFromCombined should fail")
			}
		})
	}
}
