package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected by the main package via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the choicekit CLI and returns an error if any command
// fails. Logging defaults to info level on stderr; --verbose (-v)
// raises it to debug. The logger rides the context and is accessible
// to all commands via loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "choicekit",
		Short:        "Choicekit runs matching, voting and allocation rules",
		Long:         `Choicekit is a CLI for computational social choice: two-sided stable matching, voting rules, one-sided allocation and distortion bounds, all driven by TOML instance files.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("choicekit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMatchCmd())
	root.AddCommand(newVoteCmd())
	root.AddCommand(newAllocateCmd())
	root.AddCommand(newDistortCmd())

	return root.ExecuteContext(context.Background())
}
