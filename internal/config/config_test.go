package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeCase(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.yml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing case file: %v", err)
	}
	return path
}

const sampleCase = `
material: AISI 1045 Steel
factorOfSafety: 2.0
shaftLength: 1000
power: 15
speed: 960
gears:
  - position: 200
    diameter: 200
    pressureAngle: 20
  - position: 700
    tangentialForce: 1500
    pressureAngle: 20
pulleys:
  - position: 500
    diameter: 300
    tensionRatio: 2.0
extraBendingMoment: 25
extraTorsionalMoment: 5
`

func TestLoadAndConvert(t *testing.T) {
	path := writeCase(t, sampleCase)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	materials, sizes, err := c.Tables()
	if err != nil {
		t.Fatalf("Tables: %v", err)
	}
	if len(sizes) == 0 {
		t.Fatal("expected default size catalog")
	}

	spec, err := c.Spec(materials)
	if err != nil {
		t.Fatalf("Spec: %v", err)
	}

	if math.Abs(spec.Length-1.0) > 1e-12 {
		t.Errorf("length = %.4f m, want 1.0 (mm converted)", spec.Length)
	}
	if spec.Material.YieldStrength != 530 {
		t.Errorf("Sy = %.1f, want 530 for AISI 1045", spec.Material.YieldStrength)
	}
	if len(spec.Gears) != 2 || len(spec.Pulleys) != 1 {
		t.Fatalf("got %d gears / %d pulleys, want 2/1", len(spec.Gears), len(spec.Pulleys))
	}

	if spec.Gears[0].ForceSpecified() {
		t.Error("gear #1 should be diameter-specified")
	}
	if !spec.Gears[1].ForceSpecified() {
		t.Error("gear #2 should be force-specified")
	}
	wantAngle := 20 * math.Pi / 180
	if math.Abs(spec.Gears[0].PressureAngle-wantAngle) > 1e-12 {
		t.Errorf("pressure angle = %.6f rad, want %.6f (degrees converted)", spec.Gears[0].PressureAngle, wantAngle)
	}
	if math.Abs(spec.Pulleys[0].PitchDiameter-0.3) > 1e-12 {
		t.Errorf("pulley diameter = %.4f m, want 0.3", spec.Pulleys[0].PitchDiameter)
	}
	if spec.ExtraMoment != 25 || spec.ExtraTorque != 5 {
		t.Errorf("extra moments = (%.1f, %.1f), want (25, 5)", spec.ExtraMoment, spec.ExtraTorque)
	}
}

func TestGearModesAreMutuallyExclusive(t *testing.T) {
	path := writeCase(t, `
material: AISI 1045 Steel
factorOfSafety: 2.0
shaftLength: 1000
power: 15
speed: 960
gears:
  - position: 200
    diameter: 200
    tangentialForce: 1500
    pressureAngle: 20
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	materials, _, err := c.Tables()
	if err != nil {
		t.Fatalf("Tables: %v", err)
	}
	if _, err := c.Spec(materials); err == nil {
		t.Error("a gear with both diameter and tangentialForce should fail")
	}
}

func TestGearRequiresOneMode(t *testing.T) {
	path := writeCase(t, `
material: AISI 1045 Steel
factorOfSafety: 2.0
shaftLength: 1000
power: 15
speed: 960
gears:
  - position: 200
    pressureAngle: 20
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	materials, _, err := c.Tables()
	if err != nil {
		t.Fatalf("Tables: %v", err)
	}
	if _, err := c.Spec(materials); err == nil {
		t.Error("a gear with neither diameter nor tangentialForce should fail")
	}
}

func TestTableOverrides(t *testing.T) {
	path := writeCase(t, `
material: Custom Alloy
factorOfSafety: 1.5
shaftLength: 500
power: 5
speed: 1500
materials:
  - name: Custom Alloy
    sy: 600
standardSizes: [20, 10, 40, 30]
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	materials, sizes, err := c.Tables()
	if err != nil {
		t.Fatalf("Tables: %v", err)
	}
	if len(materials) != 1 || materials[0].YieldStrength != 600 {
		t.Errorf("material override not applied: %+v", materials)
	}
	// Overridden catalog must come back sorted ascending.
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			t.Errorf("sizes not ascending: %v", sizes)
		}
	}

	spec, err := c.Spec(materials)
	if err != nil {
		t.Fatalf("Spec: %v", err)
	}
	if spec.Material.Name != "Custom Alloy" {
		t.Errorf("material = %q, want the override row", spec.Material.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("missing design file should fail")
	}
}
