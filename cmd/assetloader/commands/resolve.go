package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/assetloader/internal/app"
	"go.trai.ch/assetloader/internal/ui/style"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <asset>...",
		Short: "Print where assets resolve to without registering them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workingDir(cmd)
			if err != nil {
				return err
			}
			opts, asJSON := resolveOptions(cmd)
			opts.Handle, _ = cmd.Flags().GetString("handle")

			reports, err := c.app.Resolve(cmd.Context(), cwd, args, opts)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), reports)
			}
			return writeReports(cmd.OutOrStdout(), reports)
		},
	}
	addManifestFlags(cmd)
	cmd.Flags().String("handle", "", "Handle to report instead of the asset name")
	return cmd
}

func (c *CLI) newAssetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List every asset a manifest points to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := workingDir(cmd)
			if err != nil {
				return err
			}
			opts, asJSON := resolveOptions(cmd)

			values, err := c.app.Assets(cmd.Context(), cwd, opts)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), values)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(values, "\n"))
			return err
		},
	}
	addManifestFlags(cmd)
	return cmd
}

func addManifestFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("manifest", "m", nil, "Candidate manifest path; repeat to add fallbacks")
	cmd.Flags().StringP("name", "n", "", "Use a named manifest list from assetloader.yaml")
	cmd.Flags().Bool("json", false, "Print JSON")
}

func resolveOptions(cmd *cobra.Command) (app.ResolveOptions, bool) {
	manifests, _ := cmd.Flags().GetStringSlice("manifest")
	name, _ := cmd.Flags().GetString("name")
	asJSON, _ := cmd.Flags().GetBool("json")
	return app.ResolveOptions{
		RequestOptions: requestOptions(cmd),
		Manifests:      manifests,
		ManifestName:   name,
	}, asJSON
}

func writeReports(w io.Writer, reports []app.Report) error {
	for _, r := range reports {
		uri := r.URI
		if r.Version != "" {
			uri += " " + style.Muted("ver="+r.Version)
		}
		note := ""
		switch {
		case r.StyleFallback:
			note = " " + style.Muted("(served by the dev server script)")
		case !r.FromManifest:
			note = " " + style.Muted("(not in manifest)")
		}
		if _, err := fmt.Fprintf(w, "%s %s %s%s\n", style.Accent(r.Handle), r.Kind, uri, note); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
