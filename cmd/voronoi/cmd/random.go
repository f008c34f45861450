package cmd

import (
	"fmt"
	"math/rand"

	"github.com/arl/go-voronoi/geom"
	"github.com/spf13/cobra"
)

var (
	randomN      int
	randomWidth  float64
	randomHeight float64
	randomSeed   int64
)

// randomCmd represents the random command.
var randomCmd = &cobra.Command{
	Use:   "random SITESFILE",
	Short: "generate uniformly random sites",
	Long: `Write N sites, drawn uniformly at random from a width x height box
centered at the origin, to SITESFILE in YAML.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		check(randomSites(args[0], randomN, randomWidth, randomHeight, randomSeed))
	},
}

func init() {
	RootCmd.AddCommand(randomCmd)
	randomCmd.Flags().IntVar(&randomN, "n", 20, "number of sites")
	randomCmd.Flags().Float64Var(&randomWidth, "width", 20, "box width")
	randomCmd.Flags().Float64Var(&randomHeight, "height", 20, "box height")
	randomCmd.Flags().Int64Var(&randomSeed, "seed", 1, "PRNG seed")
}

func randomSites(path string, n int, width, height float64, seed int64) error {
	if n < 1 {
		return fmt.Errorf("random: n must be >= 1, got %d", n)
	}
	rng := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		x := (rng.Float64() - 0.5) * width
		y := (rng.Float64() - 0.5) * height
		pts[i] = geom.New(x, y)
	}
	if err := writeSites(path, pts); err != nil {
		return err
	}
	fmt.Printf("%d sites written to '%s'\n", n, path)
	return nil
}
