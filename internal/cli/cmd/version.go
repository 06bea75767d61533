package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/rpmview/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "rpmview %s (commit %s, built %s, %s)\n%s\n",
			buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate, buildInfo.GoVersion, build.RepoURL())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
