package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "voronoi",
	Short: "build 2-D Voronoi diagrams",
	Long: `This is the command-line application accompanying go-voronoi:
	- build a Voronoi diagram from a list of sites (YAML or generated),
	- tweak build settings (YAML config file),
	- dump the resulting diagram's vertices and edges for plotting.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
