package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "show infos about a mesh",
	Long: `Read a mesh from an STL or OBJ file and print its polygon and
triangle counts, convexity and bounding box on standard output.`,
	Run: doInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVar(&configVal, "config", "", "settings file (default built-in settings)")
}

func doInfo(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		check(fmt.Errorf("expected exactly one input file"))
	}
	settings, err := loadSettings(configVal)
	check(err)

	mesh, err := loadMesh(args[0], settings.Scale)
	check(err)

	polygons := mesh.Polygons()
	triangles, convex := 0, 0
	for _, p := range polygons {
		triangles += len(p.Vertices()) - 2
		if p.IsConvex() {
			convex++
		}
	}
	bounds := mesh.Bounds()
	fmt.Printf("File: %s\n", args[0])
	fmt.Printf("Polygons: %d (%d convex)\n", len(polygons), convex)
	fmt.Printf("Triangles: %d\n", triangles)
	fmt.Printf("Bounding box: %v - %v\n", bounds.Min, bounds.Max)
}
