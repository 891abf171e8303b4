// Package config loads YAML design case files and converts the
// user-facing units (mm, degrees) into the core unit system (m,
// radians) the formulas expect.
package config

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/viper"

	"github.com/tanishapritha/shaft-designer/internal/catalog"
	"github.com/tanishapritha/shaft-designer/internal/shaft"
)

// GearCase describes one gear in a design file. Exactly one of Diameter
// or TangentialForce must be set; the two input modes are mutually
// exclusive.
type GearCase struct {
	Position        float64  `mapstructure:"position"`        // mm from the left bearing
	Diameter        *float64 `mapstructure:"diameter"`        // mm, pitch diameter
	TangentialForce *float64 `mapstructure:"tangentialForce"` // N
	PressureAngle   float64  `mapstructure:"pressureAngle"`   // degrees
}

// PulleyCase describes one pulley in a design file.
type PulleyCase struct {
	Position     float64 `mapstructure:"position"` // mm
	Diameter     float64 `mapstructure:"diameter"` // mm
	TensionRatio float64 `mapstructure:"tensionRatio"`
}

// MaterialRow is one material table override entry.
type MaterialRow struct {
	Name string  `mapstructure:"name"`
	Sy   float64 `mapstructure:"sy"` // MPa
}

// Case is the on-disk description of a design evaluation.
type Case struct {
	Material             string       `mapstructure:"material"`
	FactorOfSafety       float64      `mapstructure:"factorOfSafety"`
	ShaftLength          float64      `mapstructure:"shaftLength"` // mm
	Power                float64      `mapstructure:"power"`       // kW
	Speed                float64      `mapstructure:"speed"`       // rpm
	Gears                []GearCase   `mapstructure:"gears"`
	Pulleys              []PulleyCase `mapstructure:"pulleys"`
	ExtraBendingMoment   float64      `mapstructure:"extraBendingMoment"`   // N·m
	ExtraTorsionalMoment float64      `mapstructure:"extraTorsionalMoment"` // N·m

	// Optional reference table overrides.
	Materials     []MaterialRow `mapstructure:"materials"`
	StandardSizes []float64     `mapstructure:"standardSizes"` // mm
}

// Load reads a YAML design case from the given path.
func Load(path string) (*Case, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading design file, %s", err)
	}

	var c Case
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode design file, %s", err)
	}
	return &c, nil
}

// Tables resolves the reference tables for this case, preferring the
// file overrides over the built-in defaults.
func (c *Case) Tables() (materials []catalog.Material, sizesMM []float64, err error) {
	materials = catalog.DefaultMaterials
	if len(c.Materials) > 0 {
		materials = make([]catalog.Material, 0, len(c.Materials))
		for _, row := range c.Materials {
			materials = append(materials, catalog.Material{Name: row.Name, YieldStrength: row.Sy})
		}
	}

	sizesMM = catalog.DefaultShaftSizes
	if len(c.StandardSizes) > 0 {
		sizesMM = append([]float64(nil), c.StandardSizes...)
		sort.Float64s(sizesMM)
	}
	if err := catalog.ValidateSizes(sizesMM); err != nil {
		return nil, nil, err
	}
	return materials, sizesMM, nil
}

// Spec converts the case into core units and builds the shaft spec.
// The gear variants are resolved here, at construction time.
func (c *Case) Spec(materials []catalog.Material) (*shaft.Spec, error) {
	mat, err := catalog.LookupMaterial(materials, c.Material)
	if err != nil {
		return nil, err
	}

	s := &shaft.Spec{
		Length:         c.ShaftLength / 1000,
		Material:       mat,
		FactorOfSafety: c.FactorOfSafety,
		PowerKW:        c.Power,
		SpeedRPM:       c.Speed,
		ExtraMoment:    c.ExtraBendingMoment,
		ExtraTorque:    c.ExtraTorsionalMoment,
	}

	for i, g := range c.Gears {
		angle := degToRad(g.PressureAngle)
		switch {
		case g.Diameter != nil && g.TangentialForce != nil:
			return nil, fmt.Errorf("gear #%d: diameter and tangentialForce are mutually exclusive", i+1)
		case g.TangentialForce != nil:
			s.Gears = append(s.Gears, shaft.GearByForce(g.Position/1000, *g.TangentialForce, angle))
		case g.Diameter != nil:
			s.Gears = append(s.Gears, shaft.GearByDiameter(g.Position/1000, *g.Diameter/1000, angle))
		default:
			return nil, fmt.Errorf("gear #%d: one of diameter or tangentialForce is required", i+1)
		}
	}

	for _, p := range c.Pulleys {
		s.Pulleys = append(s.Pulleys, shaft.Pulley{
			Position:      p.Position / 1000,
			PitchDiameter: p.Diameter / 1000,
			TensionRatio:  p.TensionRatio,
		})
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
