package cmd

import (
	"fmt"

	csg "github.com/arl/go-csg"
	"github.com/spf13/cobra"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge FILE...",
	Short: "combine many meshes into one",
	Long: `Combine any number of meshes into their union. Meshes whose
bounding boxes do not intersect are concatenated directly, so merging a
large scene of mostly disjoint parts costs far less than a chain of
pairwise unions.`,
	Run: doMerge,
}

func init() {
	RootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVarP(&outputVal, "output", "o", "", "output STL file (default stdout)")
	mergeCmd.Flags().StringVar(&configVal, "config", "", "settings file (default built-in settings)")
}

func doMerge(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		check(fmt.Errorf("expected at least one input file"))
	}
	settings, err := loadSettings(configVal)
	check(err)

	meshes := make([]*csg.Mesh, len(args))
	for i, path := range args {
		meshes[i], err = loadMesh(path, settings.Scale)
		check(err)
	}
	check(writeMesh(csg.Union(meshes...), outputVal))
}
