package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spigell/hh-assessor/internal/catalog"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the built-in catalog size",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("%s version: %s\n", app, version)
		if c, err := catalog.Default(); err == nil {
			fmt.Printf("built-in catalog: %d roles, %d questions, %d actions, %d structures\n",
				len(c.Roles), len(c.Questions), len(c.Actions), len(c.Structures))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
