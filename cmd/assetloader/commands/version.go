package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/assetloader/internal/build"
)

type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

func (c *CLI) newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version, commit and date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{
				Version: build.Version,
				Commit:  build.Commit,
				Date:    build.Date,
				Go:      runtime.Version(),
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "assetloader version %s (commit: %s, date: %s)\n",
				info.Version, info.Commit, info.Date)
			return err
		},
	}
	cmd.Flags().Bool("json", false, "Print build information as JSON")
	return cmd
}
