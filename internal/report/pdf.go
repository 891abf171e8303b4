// Package report exports a finished design evaluation as a PDF summary
// or an XLSX workbook.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/tanishapritha/shaft-designer/internal/shaft"
)

// WritePDF writes a one-page design summary report.
func WritePDF(spec shaft.Spec, res *shaft.Result, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Shaft Design Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(label, value string) {
		pdf.Cell(70, 6, label)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}

	section("Input")
	row("Shaft Length", fmt.Sprintf("%.3f m", spec.Length))
	row("Material", fmt.Sprintf("%s (Sy = %.0f MPa)", spec.Material.Name, spec.Material.YieldStrength))
	row("Factor of Safety", fmt.Sprintf("%.2f", spec.FactorOfSafety))
	row("Power", fmt.Sprintf("%.2f kW", spec.PowerKW))
	row("Speed", fmt.Sprintf("%.0f rpm", spec.SpeedRPM))
	row("Gears / Pulleys", fmt.Sprintf("%d / %d", len(spec.Gears), len(spec.Pulleys)))
	pdf.Ln(4)

	section("Loads")
	row("Torque", fmt.Sprintf("%.2f N·m", res.Torque))
	row("Total Tangential Force", fmt.Sprintf("%.2f N", res.FtTotal))
	row("Total Radial Force", fmt.Sprintf("%.2f N", res.FrTotal))
	row("Belt Tensions T1 / T2", fmt.Sprintf("%.2f / %.2f N", res.T1Total, res.T2Total))
	row("Combined Bending Moment", fmt.Sprintf("%.2f N·m", res.Moment))
	pdf.Ln(4)

	section("Sizing")
	row("Diameter (Torsion)", fmt.Sprintf("%.2f mm", res.DiameterTorsion*1000))
	row("Diameter (Bending)", fmt.Sprintf("%.2f mm", res.DiameterBending*1000))
	row("Diameter (Combined)", fmt.Sprintf("%.2f mm", res.DiameterCombined*1000))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Recommended Standard Diameter: %.0f mm", res.StandardSize))
	pdf.Ln(8)
	if res.Undersized {
		pdf.SetTextColor(200, 0, 0)
		pdf.MultiCell(0, 6, "WARNING: no catalog size covers the required diameter. "+
			"The largest available size is reported and may be undersized.", "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	return pdf.OutputFileAndClose(path)
}
