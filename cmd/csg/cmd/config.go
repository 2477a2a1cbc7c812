package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "create a settings file",
	Long: `Create a settings file in YAML format, prefilled with default
values: load scale, cutting plane and cross-section fill.

If FILE is not provided, 'csg.yml' is used.`,
	Run: doConfig,
}

func init() {
	RootCmd.AddCommand(configCmd)
}

func doConfig(cmd *cobra.Command, args []string) {
	path := "csg.yml"
	if len(args) >= 1 {
		path = args[0]
	}
	if ok, err := confirmIfExists(path,
		fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path)); !ok {
		if err == nil {
			fmt.Println("aborted by user...")
		} else {
			fmt.Println("aborted,", err)
		}
		return
	}
	check(marshalYAMLFile(path, DefaultSettings()))
	fmt.Printf("settings written to '%s'\n", path)
}
