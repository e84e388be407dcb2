package commands

import (
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/assetloader/internal/adapters/host"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Register the configured assets and blocks and print the page markup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := workingDir(cmd)
			if err != nil {
				return err
			}
			page, err := c.app.Render(cmd.Context(), cwd, requestOptions(cmd))
			if err != nil {
				return err
			}
			return pageWriter(cmd)(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().Bool("json", false, "Print head and footer markup as JSON")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render again whenever a configured manifest changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := workingDir(cmd)
			if err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), cwd, requestOptions(cmd), cmd.OutOrStdout(), pageWriter(cmd))
		},
	}
	cmd.Flags().Bool("json", false, "Print one JSON object per render")
	return cmd
}

func pageWriter(cmd *cobra.Command) func(io.Writer, host.Page) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return func(w io.Writer, page host.Page) error {
			return writeJSON(w, page)
		}
	}
	return func(w io.Writer, page host.Page) error {
		_, err := io.WriteString(w, page.String())
		return err
	}
}
