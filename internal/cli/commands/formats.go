package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/linestamp/pkg/detector"
	"github.com/ccollicutt/linestamp/pkg/output"
)

// FormatsOptions holds command-line options for the formats command.
type FormatsOptions struct {
	Output string
}

// NewFormatsCommand creates the formats command.
func NewFormatsCommand() *cobra.Command {
	opts := &FormatsOptions{}

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the recognized timestamp formats",
		Long: `List the timestamp formats recognized in relative mode, in the priority
order they are tried.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormats(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

func runFormats(cmd *cobra.Command, opts *FormatsOptions) error {
	var formatter output.Formatter
	switch opts.Output {
	case "text":
		formatter = output.NewTextFormatter()
	case "json":
		formatter = output.NewJSONFormatter()
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	listing := output.NewListing(detector.Formats())
	return formatter.Format(ctx, listing, cmd.OutOrStdout())
}
