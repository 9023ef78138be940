package cmd

import (
	"github.com/spf13/cobra"
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Run the load stage",
	Long: `Loads every curated table from object storage into the MySQL
warehouse, replacing the previous contents table by table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newPipelineEnv()
		if err != nil {
			return err
		}
		defer env.log.Sync()
		return env.runLoad(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(loadCmd)
}
