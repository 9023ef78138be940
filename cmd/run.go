package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline",
	Long:  `Runs extract, transform and load in order against the configured season.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newPipelineEnv()
		if err != nil {
			return err
		}
		defer env.log.Sync()

		ctx := cmd.Context()

		env.log.Info("pipeline started", zap.String("season", env.cfg.Pipeline.Season))
		if err := env.runExtract(ctx); err != nil {
			return err
		}
		if err := env.runTransform(ctx); err != nil {
			return err
		}
		if err := env.runLoad(ctx); err != nil {
			return err
		}
		env.log.Info("pipeline finished", zap.String("season", env.cfg.Pipeline.Season))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(runCmd)
}
