package cmd

import (
	"fmt"
	"math"

	"github.com/arl/go-voronoi/geom"
	"github.com/spf13/cobra"
)

var (
	circleN      int
	circleRadius float64
)

// circleCmd represents the circle command.
var circleCmd = &cobra.Command{
	Use:   "circle SITESFILE",
	Short: "generate sites evenly spaced on a circle",
	Long: `Write N sites, evenly spaced around a circle of the given radius
centered at the origin, to SITESFILE in YAML.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		check(circleSites(args[0], circleN, circleRadius))
	},
}

func init() {
	RootCmd.AddCommand(circleCmd)
	circleCmd.Flags().IntVar(&circleN, "n", 12, "number of sites")
	circleCmd.Flags().Float64Var(&circleRadius, "radius", 10, "circle radius")
}

func circleSites(path string, n int, radius float64) error {
	if n < 1 {
		return fmt.Errorf("circle: n must be >= 1, got %d", n)
	}
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.New(radius*math.Cos(theta), radius*math.Sin(theta))
	}
	if err := writeSites(path, pts); err != nil {
		return err
	}
	fmt.Printf("%d sites written to '%s'\n", n, path)
	return nil
}
