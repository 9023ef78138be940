package cmd

import (
	"github.com/spf13/cobra"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the extract stage",
	Long: `Parses the locally saved FBRef snapshot, scrapes the Transfermarkt
league table and transfer pages, and uploads the raw CSV tables to object
storage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newPipelineEnv()
		if err != nil {
			return err
		}
		defer env.log.Sync()
		return env.runExtract(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(extractCmd)
}
