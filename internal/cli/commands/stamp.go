// Package commands implements the linestamp CLI commands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/linestamp/pkg/annotate"
	"github.com/ccollicutt/linestamp/pkg/clock"
	"github.com/ccollicutt/linestamp/pkg/config"
	"github.com/ccollicutt/linestamp/pkg/detector"
)

// ExitCode is set by commands to indicate the result.
var ExitCode = 0

// StampOptions holds command-line options for the root command.
type StampOptions struct {
	Relative    bool
	Incremental bool
	SinceStart  bool
	Monotonic   bool
	Unique      bool
	ConfigPath  string
}

// NewStampCommand creates the root command: read standard input, stamp
// each line, write standard output.
func NewStampCommand() *cobra.Command {
	opts := &StampOptions{}

	cmd := &cobra.Command{
		Use:   "linestamp [flags] [format]",
		Short: "Timestamp each line of standard input",
		Long: `Linestamp reads lines from standard input and writes them to standard
output with a timestamp prepended, an existing timestamp rewritten, or an
elapsed-time delta prepended.

Format is a strftime string. Default: "%b %d %H:%M:%S".
Extensions: %.S (seconds with subseconds), %.s (unix time with subseconds),
%.T (time of day with subseconds), %N (nanoseconds).

Exit codes:
  0 - Input processed
  2 - Configuration or runtime error`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStamp(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Relative, "relative", "r", false, "Convert existing timestamps to relative times")
	cmd.Flags().BoolVarP(&opts.Incremental, "incremental", "i", false, "Stamp with time elapsed since the previous line")
	cmd.Flags().BoolVarP(&opts.SinceStart, "since-start", "s", false, "Stamp with time elapsed since the run started")
	cmd.Flags().BoolVarP(&opts.Monotonic, "monotonic", "m", false, "Use the monotonic clock")
	cmd.Flags().BoolVarP(&opts.Unique, "unique", "u", false, "Suppress lines identical to the previous line")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to config file")

	return cmd
}

func runStamp(cmd *cobra.Command, args []string, opts *StampOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyFlags(cmd, cfg, opts)
	if len(args) == 1 {
		cfg.SetFormat(args[0])
	}

	// Re-validate after the merge so mode precedence and the delta-format
	// override see the final flag values.
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validating options: %w", err)
	}

	processor := annotate.New(cfg, clock.NewSource(cfg.Monotonic), detector.New())
	if err := processor.Run(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("processing input: %w", err)
	}
	return nil
}

// applyFlags overlays explicitly set flags onto the loaded configuration;
// flags win over the config file and environment.
func applyFlags(cmd *cobra.Command, cfg *config.Options, opts *StampOptions) {
	if cmd.Flags().Changed("relative") {
		cfg.Relative = opts.Relative
	}
	if cmd.Flags().Changed("incremental") {
		cfg.Incremental = opts.Incremental
	}
	if cmd.Flags().Changed("since-start") {
		cfg.SinceStart = opts.SinceStart
	}
	if cmd.Flags().Changed("monotonic") {
		cfg.Monotonic = opts.Monotonic
	}
	if cmd.Flags().Changed("unique") {
		cfg.Unique = opts.Unique
	}
}
