package commands

import (
	"github.com/spf13/cobra"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version of modelcache`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("modelcache %s\n", version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
