package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanishapritha/shaft-designer/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of shaft-designer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shaft-designer v%s\n", version.Version)
		fmt.Println("Rotating Shaft Design Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
