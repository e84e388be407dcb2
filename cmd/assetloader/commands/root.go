// Package commands implements the CLI commands for assetloader.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/assetloader/internal/adapters/host"
	"go.trai.ch/assetloader/internal/app"
	"go.trai.ch/assetloader/internal/build"
)

// CLI represents the command line interface for assetloader.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, cwd string, assets []string, opts app.ResolveOptions) ([]app.Report, error)
	Assets(ctx context.Context, cwd string, opts app.ResolveOptions) ([]string, error)
	Render(ctx context.Context, cwd string, opts app.RequestOptions) (host.Page, error)
	Watch(
		ctx context.Context,
		cwd string,
		opts app.RequestOptions,
		out io.Writer,
		write func(io.Writer, host.Page) error,
	) error
	SetLogFormat(flag string)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "assetloader",
		Short:         "Resolve and register bundler-built assets from manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			format, _ := cmd.Flags().GetString("log-format")
			a.SetLogFormat(format)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("chdir", "C", "", "Run as if started in this directory")
	flags.String("log-format", "auto", "Log format: auto, pretty, or json")
	flags.String("env", "", "Override the environment type: local, development, staging, or production")
	flags.Bool("admin", false, "Render for an admin screen")
	flags.Bool("script-debug", false, "Override the configured script_debug flag")
	flags.Bool("trace", false, "Log a line for every resolution step")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newAssetsCmd())
	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// requestOptions reads the persistent flags shared by every command.
func requestOptions(cmd *cobra.Command) app.RequestOptions {
	flags := cmd.Flags()
	admin, _ := flags.GetBool("admin")
	env, _ := flags.GetString("env")
	trace, _ := flags.GetBool("trace")

	opts := app.RequestOptions{Admin: admin, Environment: env, Trace: trace}
	if flags.Changed("script-debug") {
		debug, _ := flags.GetBool("script-debug")
		opts.ScriptDebug = &debug
	}
	return opts
}

// workingDir returns --chdir, or the process working directory.
func workingDir(cmd *cobra.Command) (string, error) {
	if dir, _ := cmd.Flags().GetString("chdir"); dir != "" {
		return dir, nil
	}
	return os.Getwd()
}
