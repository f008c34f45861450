package cmd

import (
	"fmt"
	"log"

	"github.com/arl/go-voronoi/voronoi"
	"github.com/spf13/cobra"
)

var (
	runCfgVal  string
	runSitesIn string
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run SITESFILE OUTFILE",
	Short: "build a Voronoi diagram from a list of sites",
	Long: `Build a Voronoi diagram from sites listed in SITESFILE (YAML).
Build process is controlled by the provided build settings. The resulting
diagram's vertices and edges are dumped to OUTFILE in YAML, ready to be
fed to a plotting tool.`,
	Args: cobra.ExactArgs(2),
	Run:  doRun,
}

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runCfgVal, "config", "voronoi.yml", "build settings")
}

func doRun(cmd *cobra.Command, args []string) {
	sitesFile, outFile := args[0], args[1]

	check(fileExists(sitesFile))

	settings := NewSettings()
	if err := fileExists(runCfgVal); err == nil {
		check(unmarshalYAMLFile(runCfgVal, &settings))
	}

	sites, err := readSites(sitesFile)
	check(err)
	if len(sites) < 2 {
		check(fmt.Errorf("%s: need at least 2 sites, got %d", sitesFile, len(sites)))
	}

	d := voronoi.New(voronoi.Config{
		Sites:         sites,
		Balanced:      settings.Balanced,
		MergeRadius:   settings.MergeRadius,
		BoundsScale:   settings.BoundsScale,
		ValidateEuler: settings.ValidateEuler,
		Logf:          log.Printf,
	})

	d.Preprocess()
	if status := d.Run(); status.Failed() {
		check(status)
	}
	status := d.Postprocess()
	if status.Failed() {
		check(status)
	}
	if v := d.Validation(); v != nil && !v.Satisfied {
		log.Printf("warning: %v", status)
	}

	check(marshalYAMLFile(outFile, newPlotData(d.DCEL())))
	fmt.Printf("%d sites, %d vertices, %d edges -> '%s'\n", d.NSites(), d.NVertices(), d.NEdges(), outFile)
}
