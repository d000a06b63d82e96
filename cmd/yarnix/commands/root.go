// Package commands implements the CLI commands for yarnix.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/yarnix/internal/adapters/telemetry/progrock"
	"go.trai.ch/yarnix/internal/core/domain"
	"go.trai.ch/yarnix/internal/core/ports"
)

// CLI represents the command line interface for yarnix.
type CLI struct {
	app     Application
	loader  ports.ConfigLoader
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, settings domain.Settings) error
	SetTelemetry(t ports.Telemetry)
}

// New creates a new CLI instance with the given app and config loader.
func New(a Application, loader ports.ConfigLoader) *CLI {
	rootCmd := &cobra.Command{
		Use:           "yarnix",
		Short:         "Convert a yarn lockfile into a Nix fetch catalog",
		Long: "yarnix reads a yarn v1 lockfile, fills in missing integrity hashes " +
			"(rewriting the lockfile in place when needed) and emits a declarative " +
			"Nix expression describing how to fetch every dependency.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().String("lockfile", "./yarn.lock", "Path to the lockfile to read and, if patched, rewrite")
	rootCmd.Flags().Bool("no-nix", false, "Suppress catalog emission to stdout")
	rootCmd.Flags().Bool("no-patch", false, "Abort instead of rewriting a changed lockfile")
	rootCmd.Flags().Bool("progress", false, "Show live progress during reconciliation")

	c := &CLI{
		app:     a,
		loader:  loader,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = c.runRoot
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// runRoot merges config-file defaults with explicit flags and runs one
// conversion. Flags set on the command line always win.
func (c *CLI) runRoot(cmd *cobra.Command, _ []string) error {
	settings, err := c.loader.Load(".")
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("lockfile") {
		settings.LockfilePath, _ = flags.GetString("lockfile")
	}
	if flags.Changed("no-nix") {
		settings.NoNix, _ = flags.GetBool("no-nix")
	}
	if flags.Changed("no-patch") {
		settings.NoPatch, _ = flags.GetBool("no-patch")
	}
	if flags.Changed("progress") {
		settings.Progress, _ = flags.GetBool("progress")
	}

	if settings.Progress {
		c.app.SetTelemetry(progrock.New(cmd.ErrOrStderr()))
	}

	return c.app.Run(cmd.Context(), settings)
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

// SetOutput sets the writers for usage and error messages. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
