// Package commands implements the CLI commands for the ganttify tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kylemshaw/ganttify/internal/app"
	"github.com/kylemshaw/ganttify/internal/build"
	"github.com/kylemshaw/ganttify/internal/core/domain"
	"github.com/kylemshaw/ganttify/internal/core/ports"
)

// CLI represents the command line interface for ganttify.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Render(ctx context.Context, opts app.RenderOptions) error
	Validate(ctx context.Context, projectPath string) (*domain.Schedule, error)
	Watch(ctx context.Context, opts app.WatchOptions) error
	EnableTracing()
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(bool)
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ganttify",
		Short:         "Resolve project plans into working-day schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	var jsonLogs, trace bool
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Log in JSON instead of pretty text")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "Log resolution trace spans")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if jsonLogs {
			if l, ok := c.logger.(jsonSwitcher); ok {
				l.SetJSON(true)
			}
		}
		if trace {
			c.app.EnableTracing()
		}
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newValidateCmd())
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
