package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tanishapritha/shaft-designer/internal/diagram"
	"github.com/tanishapritha/shaft-designer/internal/shaft"
)

var (
	diagramFile       string
	diagramStep       float64
	diagramPlotPrefix string
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Shear-force and bending-moment diagrams for a design case",
	Long: `Compute the support reactions and the shear-force / bending-moment
distributions for the shaft described in a YAML design file, and render
them as ASCII charts.

Examples:
  # Diagrams for case.yml at the default 1 mm step
  shaft-designer diagram -f case.yml

  # Coarser sampling, with PNG export
  shaft-designer diagram -f case.yml --step 5 --plot out/shaft`,
	Run: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramCmd.Flags().StringVarP(&diagramFile, "file", "f", "", "Design case YAML file [required]")
	diagramCmd.MarkFlagRequired("file")
	diagramCmd.Flags().Float64Var(&diagramStep, "step", 1, "Discretization step (mm)")
	diagramCmd.Flags().StringVar(&diagramPlotPrefix, "plot", "", "Export diagrams as <prefix>-shear.png and <prefix>-moment.png")
}

func runDiagram(cmd *cobra.Command, args []string) {
	spec, sizes, ok := loadCase(cmd, diagramFile)
	if !ok {
		return
	}

	result, err := shaft.Design(*spec, sizes)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	ra, rb, err := shaft.Reactions(result.PointLoads, 0, spec.Length)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	profile, err := shaft.ShearMomentProfile(spec.Length, diagramStep/1000, ra, result.PointLoads)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("SUPPORT REACTIONS AND EXTREMES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Reaction RA (left):\t%.2f N\n", ra)
	fmt.Fprintf(w, "  Reaction RB (right):\t%.2f N\n", rb)
	fmt.Fprintf(w, "  Max |V|:\t%.2f N\n", profile.MaxAbsShear())
	fmt.Fprintf(w, "  Max |M|:\t%.2f N·m\n", profile.MaxAbsMoment())
	w.Flush()

	fmt.Println(diagram.DrawShaftLayout(spec.Length, result.PointLoads))
	fmt.Println(diagram.PlotShear(profile))
	fmt.Println()
	fmt.Println(diagram.PlotMoment(profile))

	if diagramPlotPrefix != "" {
		shearFile := diagramPlotPrefix + "-shear.png"
		if err := diagram.ExportShearDiagram(profile, shearFile); err != nil {
			fmt.Printf("Error exporting shear diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", shearFile)
		}
		momentFile := diagramPlotPrefix + "-moment.png"
		if err := diagram.ExportMomentDiagram(profile, momentFile); err != nil {
			fmt.Printf("Error exporting moment diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", momentFile)
		}
	}
}
