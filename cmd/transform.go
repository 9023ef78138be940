package cmd

import (
	"github.com/spf13/cobra"
)

// transformCmd represents the transform command
var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Run the transform stage",
	Long: `Reads the raw tables from object storage, reconciles club names
against the canonical registry, builds the curated tables and uploads them
back to object storage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newPipelineEnv()
		if err != nil {
			return err
		}
		defer env.log.Sync()
		return env.runTransform(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(transformCmd)
}
