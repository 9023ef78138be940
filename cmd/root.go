package cmd

import (
	"fmt"
	"os"

	"championship-pipeline/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "championship-pipeline",
	Short: "Championship Statistics Pipeline",
	Long: `Championship-pipeline extracts, transforms and loads EFL Championship
season statistics. It scrapes Transfermarkt, parses saved FBRef pages,
reconciles club identities against a canonical registry and loads curated
tables into a MySQL warehouse.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the standard logger; console format and debug
		// level give readable CLI output with ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
