package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tanishapritha/shaft-designer/internal/version"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shaft-designer",
	Short: "Rotating Shaft Design Tool",
	Long: `shaft-designer - Shaft Diameter Design Tool

A CLI tool for the mechanical design of rotating shafts under combined
torsional and bending loads from mounted gears and pulleys.

This tool helps mechanical engineers perform:
  - Torque calculation from transmitted power and speed
  - Gear mesh and belt tension force resolution
  - Bending moment superposition and shear/moment diagrams
  - Shaft sizing by torsion, bending, and ASME combined stress
  - Rounding to standard stock diameters

Design cases are described in YAML files; see the design command.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   shaft-designer v%-40s║\n", version.Version)
		fmt.Println("  ║   Rotating Shaft Design Tool                              ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for sizing rotating shafts under combined")
		fmt.Println("  torsional and bending loads.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Torque, gear force, and belt tension calculation")
		fmt.Println("    • Shear-force and bending-moment diagrams")
		fmt.Println("    • Torsion, bending, and combined-stress sizing")
		fmt.Println("    • Standard stock diameter selection")
		fmt.Println()
		fmt.Println("  Use 'shaft-designer --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
