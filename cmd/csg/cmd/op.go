package cmd

import (
	"fmt"

	csg "github.com/arl/go-csg"
	"github.com/spf13/cobra"
)

// opCmd represents the op command
var opCmd = &cobra.Command{
	Use:   "op OPERATION A B",
	Short: "apply a boolean operation to two meshes",
	Long: `Apply a boolean volume operation to two closed meshes A and B,
in STL or OBJ format. OPERATION is one of:

	union      volume enclosed by A or B
	subtract   volume enclosed by A but not B
	intersect  volume enclosed by both A and B
	xor        volume enclosed by exactly one of A and B
	stencil    A's shape, with the region inside B repainted

The result is written as binary STL to the file given with --output, or
to standard output.`,
	Run: doOp,
}

var outputVal, configVal string

func init() {
	RootCmd.AddCommand(opCmd)

	opCmd.Flags().StringVarP(&outputVal, "output", "o", "", "output STL file (default stdout)")
	opCmd.Flags().StringVar(&configVal, "config", "", "settings file (default built-in settings)")
}

func doOp(cmd *cobra.Command, args []string) {
	if len(args) != 3 {
		check(fmt.Errorf("expected OPERATION A B, got %d argument(s)", len(args)))
	}
	settings, err := loadSettings(configVal)
	check(err)

	a, err := loadMesh(args[1], settings.Scale)
	check(err)
	b, err := loadMesh(args[2], settings.Scale)
	check(err)

	var result *csg.Mesh
	switch args[0] {
	case "union":
		result = a.Union(b)
	case "subtract":
		result = a.Subtract(b)
	case "intersect":
		result = a.Intersect(b)
	case "xor":
		result = a.Xor(b)
	case "stencil":
		result = a.Stencil(b)
	default:
		check(fmt.Errorf("unknown operation %q", args[0]))
	}
	check(writeMesh(result, outputVal))
}
