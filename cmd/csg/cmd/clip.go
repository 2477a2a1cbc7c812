package cmd

import (
	"fmt"

	csg "github.com/arl/go-csg"
	"github.com/spf13/cobra"
)

// clipCmd represents the clip command
var clipCmd = &cobra.Command{
	Use:   "clip FILE",
	Short: "cut a mesh along a plane",
	Long: `Cut a mesh along the plane from the settings file, discarding
everything behind the plane. Unless filling is disabled in the settings,
the cross-section is capped so the result stays closed.`,
	Run: doClip,
}

func init() {
	RootCmd.AddCommand(clipCmd)

	clipCmd.Flags().StringVarP(&outputVal, "output", "o", "", "output STL file (default stdout)")
	clipCmd.Flags().StringVar(&configVal, "config", "", "settings file (default built-in settings)")
}

func doClip(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		check(fmt.Errorf("expected exactly one input file"))
	}
	settings, err := loadSettings(configVal)
	check(err)

	mesh, err := loadMesh(args[0], settings.Scale)
	check(err)

	var fill csg.Material
	if settings.Fill {
		fill = settings.FillMaterial
	}
	check(writeMesh(mesh.Clip(settings.plane(), fill), outputVal))
}
