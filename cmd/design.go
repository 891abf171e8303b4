package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tanishapritha/shaft-designer/internal/config"
	"github.com/tanishapritha/shaft-designer/internal/diagram"
	"github.com/tanishapritha/shaft-designer/internal/report"
	"github.com/tanishapritha/shaft-designer/internal/shaft"
)

var (
	// Design inputs
	designFile  string
	designFos   float64
	designPower float64
	designSpeed float64
	designStep  float64

	// Output options
	designShowDiagram bool
	designPlotPrefix  string
	designReportFile  string
	designXLSXFile    string
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Size a shaft for combined torsion and bending",
	Long: `Run the full design pipeline for a shaft described in a YAML
design file: transmitted torque, gear and pulley forces, bending moment
superposition, the three candidate diameters (torsion, bending, ASME
combined), and the recommended standard stock diameter.

Positions and diameters in the design file are in mm, pressure angles
in degrees, power in kW, yield strength in MPa.

Examples:
  # Size the shaft described in case.yml
  shaft-designer design -f case.yml

  # Override the factor of safety and show ASCII diagrams
  shaft-designer design -f case.yml --fos 2.5 --diagram

  # Export plots, a PDF report, and an XLSX workbook
  shaft-designer design -f case.yml --plot out/shaft --report report.pdf --xlsx design.xlsx`,
	Run: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().StringVarP(&designFile, "file", "f", "", "Design case YAML file [required]")
	designCmd.MarkFlagRequired("file")

	// Scalar overrides
	designCmd.Flags().Float64Var(&designFos, "fos", 0, "Override factor of safety")
	designCmd.Flags().Float64Var(&designPower, "power", 0, "Override power (kW)")
	designCmd.Flags().Float64Var(&designSpeed, "speed", 0, "Override speed (rpm)")

	designCmd.Flags().Float64Var(&designStep, "step", 1, "Diagram discretization step (mm)")

	// Output options
	designCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII layout and V/M/T diagrams")
	designCmd.Flags().StringVar(&designPlotPrefix, "plot", "", "Export diagrams as <prefix>-layout/-shear/-moment/-torque.png")
	designCmd.Flags().StringVar(&designReportFile, "report", "", "Export a PDF design report")
	designCmd.Flags().StringVar(&designXLSXFile, "xlsx", "", "Export an XLSX workbook with results and profile")
}

func runDesign(cmd *cobra.Command, args []string) {
	spec, sizes, ok := loadCase(cmd, designFile)
	if !ok {
		return
	}

	result, err := shaft.Design(*spec, sizes)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	logger.Debug("design evaluated",
		zap.Float64("torque", result.Torque),
		zap.Float64("moment", result.Moment),
		zap.Float64("standardSize", result.StandardSize))

	printDesign(spec, result)

	needProfile := designShowDiagram || designPlotPrefix != "" || designXLSXFile != ""
	var profile *shaft.Profile
	var torqueProfile []float64
	if needProfile {
		profile, torqueProfile, err = buildProfiles(spec, result)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	if designShowDiagram {
		fmt.Println(diagram.DrawShaftLayout(spec.Length, result.PointLoads))
		fmt.Println(diagram.PlotShear(profile))
		fmt.Println()
		fmt.Println(diagram.PlotMoment(profile))
		fmt.Println()
		fmt.Println(diagram.PlotTorque(torqueProfile))
	}

	if designPlotPrefix != "" {
		exportPlots(spec, result, profile, torqueProfile)
	}

	if designReportFile != "" {
		if err := report.WritePDF(*spec, result, designReportFile); err != nil {
			fmt.Printf("Error exporting PDF report: %v\n", err)
		} else {
			fmt.Printf("Report exported to: %s\n", designReportFile)
		}
	}

	if designXLSXFile != "" {
		if err := report.WriteXLSX(*spec, result, profile, designXLSXFile); err != nil {
			fmt.Printf("Error exporting workbook: %v\n", err)
		} else {
			fmt.Printf("Workbook exported to: %s\n", designXLSXFile)
		}
	}
}

// loadCase reads the design file, applies scalar flag overrides, and
// converts it into the core spec and size catalog.
func loadCase(cmd *cobra.Command, path string) (*shaft.Spec, []float64, bool) {
	c, err := config.Load(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, nil, false
	}

	if cmd.Flags().Changed("fos") {
		c.FactorOfSafety = designFos
	}
	if cmd.Flags().Changed("power") {
		c.Power = designPower
	}
	if cmd.Flags().Changed("speed") {
		c.Speed = designSpeed
	}

	materials, sizes, err := c.Tables()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, nil, false
	}

	spec, err := c.Spec(materials)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, nil, false
	}
	return spec, sizes, true
}

func buildProfiles(spec *shaft.Spec, result *shaft.Result) (*shaft.Profile, []float64, error) {
	ra, rb, err := shaft.Reactions(result.PointLoads, 0, spec.Length)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("support reactions", zap.Float64("ra", ra), zap.Float64("rb", rb))

	step := designStep / 1000 // mm to m
	profile, err := shaft.ShearMomentProfile(spec.Length, step, ra, result.PointLoads)
	if err != nil {
		return nil, nil, err
	}
	_, torque, err := shaft.TorqueProfile(spec.Length, step, result.TorqueSteps)
	if err != nil {
		return nil, nil, err
	}
	return profile, torque, nil
}

func exportPlots(spec *shaft.Spec, result *shaft.Result, profile *shaft.Profile, torque []float64) {
	exports := []struct {
		name string
		run  func(string) error
	}{
		{"layout", func(f string) error { return diagram.ExportShaftLayout(spec.Length, result.PointLoads, f) }},
		{"shear", func(f string) error { return diagram.ExportShearDiagram(profile, f) }},
		{"moment", func(f string) error { return diagram.ExportMomentDiagram(profile, f) }},
		{"torque", func(f string) error { return diagram.ExportTorqueDiagram(profile.Positions, torque, f) }},
	}
	for _, e := range exports {
		file := fmt.Sprintf("%s-%s.png", designPlotPrefix, e.name)
		if err := e.run(file); err != nil {
			fmt.Printf("Error exporting %s diagram: %v\n", e.name, err)
			continue
		}
		fmt.Printf("Diagram exported to: %s\n", file)
	}
}

func printDesign(spec *shaft.Spec, result *shaft.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHAFT DESIGN - COMBINED TORSION AND BENDING")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shaft Length:\t%.3f m\n", spec.Length)
	fmt.Fprintf(w, "  Material:\t%s\n", spec.Material.Name)
	fmt.Fprintf(w, "  Yield Strength (Sy):\t%.0f MPa\n", spec.Material.YieldStrength)
	fmt.Fprintf(w, "  Factor of Safety:\t%.2f\n", spec.FactorOfSafety)
	fmt.Fprintf(w, "  Power:\t%.2f kW\n", spec.PowerKW)
	fmt.Fprintf(w, "  Speed:\t%.0f rpm\n", spec.SpeedRPM)
	fmt.Fprintf(w, "  Gears:\t%d\n", len(spec.Gears))
	fmt.Fprintf(w, "  Pulleys:\t%d\n", len(spec.Pulleys))
	w.Flush()
	fmt.Println()

	fmt.Println("LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Torque:\t%.2f N·m\n", result.Torque)
	fmt.Fprintf(w, "  Total Tangential Force (Ft):\t%.2f N\n", result.FtTotal)
	fmt.Fprintf(w, "  Total Radial Force (Fr):\t%.2f N\n", result.FrTotal)
	fmt.Fprintf(w, "  Total Belt Tension (T1):\t%.2f N\n", result.T1Total)
	fmt.Fprintf(w, "  Total Belt Tension (T2):\t%.2f N\n", result.T2Total)
	fmt.Fprintf(w, "  Combined Bending Moment:\t%.2f N·m\n", result.Moment)
	w.Flush()
	fmt.Println()

	fmt.Println("CANDIDATE DIAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  From Torsion:\t%.2f mm\n", result.DiameterTorsion*1000)
	fmt.Fprintf(w, "  From Bending:\t%.2f mm\n", result.DiameterBending*1000)
	fmt.Fprintf(w, "  From Combined Stress:\t%.2f mm\n", result.DiameterCombined*1000)
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	lines := []string{
		fmt.Sprintf("Recommended Standard Diameter: %.0f mm", result.StandardSize),
	}
	if result.Undersized {
		lines = append(lines,
			"WARNING: largest catalog size is below the requirement",
			fmt.Sprintf("Required: %.2f mm", result.DiameterCombined*1000))
		logger.Warn("catalog exhausted, best available size may be undersized",
			zap.Float64("requiredMM", result.DiameterCombined*1000),
			zap.Float64("chosenMM", result.StandardSize))
	}
	fmt.Println(diagram.DrawSummaryBox("RESULT", lines))
}
