package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tanishapritha/shaft-designer/internal/catalog"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the built-in material and standard size tables",
	Long: `Print the built-in reference tables: materials with their yield
strengths, and the catalog of standard stock shaft diameters. Both
tables can be overridden per design case in the YAML file.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("MATERIALS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Material\tSy (MPa)\n")
		fmt.Fprintf(w, "  ────────\t────────\n")
		for _, m := range catalog.DefaultMaterials {
			fmt.Fprintf(w, "  %s\t%.0f\n", m.Name, m.YieldStrength)
		}
		w.Flush()
		fmt.Println()

		fmt.Println("STANDARD SHAFT SIZES (mm):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Print(" ")
		for _, s := range catalog.DefaultShaftSizes {
			fmt.Printf(" %.0f", s)
		}
		fmt.Println()
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
