// Package catalog holds the read-only reference tables consumed by the
// shaft design pipeline: material yield strengths and the catalog of
// standard stock diameters. Tables are plain ordered slices supplied by
// the caller; the defaults below can be overridden from a design file.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// Material is one row of the material reference table.
type Material struct {
	Name          string
	YieldStrength float64 // Sy, MPa
}

// DefaultMaterials lists common shaft steels with typical yield strengths.
var DefaultMaterials = []Material{
	{Name: "AISI 1020 Steel", YieldStrength: 350},
	{Name: "AISI 1045 Steel", YieldStrength: 530},
	{Name: "AISI 4140 Steel", YieldStrength: 655},
	{Name: "AISI 4340 Steel", YieldStrength: 710},
	{Name: "Stainless 304", YieldStrength: 215},
	{Name: "Aluminum 6061-T6", YieldStrength: 276},
}

// DefaultShaftSizes is the stock diameter catalog in mm, ascending.
var DefaultShaftSizes = []float64{
	10, 12, 16, 20, 25, 30, 35, 40, 45, 50,
	55, 60, 70, 80, 90, 100, 110, 125, 140, 160,
}

// LookupMaterial finds a material by name in the given table.
func LookupMaterial(table []Material, name string) (Material, error) {
	for _, m := range table {
		if m.Name == name {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("unknown material %q", name)
}

// ValidateSizes checks that a size catalog is non-empty, positive, and
// strictly ascending.
func ValidateSizes(sizes []float64) error {
	if len(sizes) == 0 {
		return errors.New("standard size catalog is empty")
	}
	for i, s := range sizes {
		if s <= 0 {
			return fmt.Errorf("standard size #%d is not positive: %.2f mm", i+1, s)
		}
		if i > 0 && s <= sizes[i-1] {
			return fmt.Errorf("standard sizes must be strictly ascending: %.2f mm after %.2f mm", s, sizes[i-1])
		}
	}
	return nil
}

// RoundToStandard maps a required diameter (m) to the smallest catalog
// size (mm) that is at least as large. When the catalog tops out below
// the requirement, the maximum size is returned with undersized=true so
// the caller can surface a best-available-but-undersized result.
func RoundToStandard(requiredM float64, sizesMM []float64) (chosenMM float64, undersized bool, err error) {
	if requiredM <= 0 {
		return 0, false, fmt.Errorf("required diameter must be positive, got %.4f m", requiredM)
	}
	if len(sizesMM) == 0 {
		return 0, false, errors.New("standard size catalog is empty")
	}
	requiredMM := requiredM * 1000
	i := sort.SearchFloat64s(sizesMM, requiredMM)
	if i == len(sizesMM) {
		return sizesMM[len(sizesMM)-1], true, nil
	}
	return sizesMM[i], false, nil
}
