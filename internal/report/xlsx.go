package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tanishapritha/shaft-designer/internal/shaft"
)

// WriteXLSX writes the design result and, when given, the shear/moment
// profile into an XLSX workbook: a "Design" sheet of labelled values
// and a "Profile" sheet of (x, V, M) columns.
func WriteXLSX(spec shaft.Spec, res *shaft.Result, prof *shaft.Profile, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const design = "Design"
	if err := f.SetSheetName("Sheet1", design); err != nil {
		return err
	}

	rows := [][2]interface{}{
		{"Shaft Length (m)", spec.Length},
		{"Material", spec.Material.Name},
		{"Yield Strength (MPa)", spec.Material.YieldStrength},
		{"Factor of Safety", spec.FactorOfSafety},
		{"Power (kW)", spec.PowerKW},
		{"Speed (rpm)", spec.SpeedRPM},
		{"Torque (N·m)", res.Torque},
		{"Total Tangential Force (N)", res.FtTotal},
		{"Total Radial Force (N)", res.FrTotal},
		{"Belt Tension T1 (N)", res.T1Total},
		{"Belt Tension T2 (N)", res.T2Total},
		{"Combined Bending Moment (N·m)", res.Moment},
		{"Diameter from Torsion (mm)", res.DiameterTorsion * 1000},
		{"Diameter from Bending (mm)", res.DiameterBending * 1000},
		{"Diameter from Combined (mm)", res.DiameterCombined * 1000},
		{"Standard Diameter (mm)", res.StandardSize},
		{"Undersized", res.Undersized},
	}
	for i, r := range rows {
		if err := f.SetCellValue(design, fmt.Sprintf("A%d", i+1), r[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(design, fmt.Sprintf("B%d", i+1), r[1]); err != nil {
			return err
		}
	}

	if prof != nil {
		const sheet = "Profile"
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		headers := []string{"Position (m)", "Shear V (N)", "Moment M (N·m)"}
		for col, h := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return err
			}
		}
		for i := range prof.Positions {
			values := []float64{prof.Positions[i], prof.Shear[i], prof.Moment[i]}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, i+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
		}
	}

	return f.SaveAs(path)
}
