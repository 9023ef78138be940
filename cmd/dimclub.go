package cmd

import (
	"os"

	"championship-pipeline/feature/registry"

	"github.com/spf13/cobra"
)

// dimClubCmd represents the dim-club command
var dimClubCmd = &cobra.Command{
	Use:   "dim-club",
	Short: "Rebuild the dim_club table",
	Long: `Rebuilds the club dimension table from the canonical registry,
refreshes the cached copy in object storage and prints the table as CSV.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newPipelineEnv()
		if err != nil {
			return err
		}
		defer env.log.Sync()

		ctx := cmd.Context()
		if err := env.ensureBucket(ctx); err != nil {
			return err
		}

		dim, err := registry.LoadOrBuild(ctx, env.store, env.bucket(), env.cfg.Pipeline.DimClubObjectName(), env.reg, env.log)
		if err != nil {
			return err
		}
		return dim.WriteCSV(os.Stdout)
	},
}

func init() {
	RootCmd.AddCommand(dimClubCmd)
}
