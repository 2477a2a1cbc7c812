package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "csg",
	Short: "boolean operations on solid meshes",
	Long: `csg applies constructive solid geometry to closed surface meshes:
	- combine two meshes with union, subtract, intersect, xor or stencil,
	- merge many meshes at once, skipping CSG work on disjoint pairs,
	- cut a mesh along a plane, optionally capping the cross-section,
	- read STL and Wavefront OBJ geometry, write binary STL.`,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
