package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava12/tgff/encode"
)

func (a *app) newDumpCmd() *cobra.Command {
	var (
		format string
		indent int
	)

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Prints parsed content",
		Long:  "Parses the file and prints attributes, graphs, and tables as JSON or YAML.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				if !slices.Contains(encode.Formats, format) {
					return fmt.Errorf("unknown output format %q, expecting one of %s", format, strings.Join(encode.Formats, ", "))
				}
				a.cfg.Output.Format = format
			}
			if cmd.Flags().Changed("indent") {
				a.cfg.Output.Indent = indent
			}
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid output options: %w", err)
			}

			c, err := a.parseFile(args[0])
			if err != nil {
				return err
			}
			return encode.Write(cmd.OutOrStdout(), c, a.cfg.Output.Format, a.cfg.Output.Indent)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: "+strings.Join(encode.Formats, ", "))
	cmd.Flags().IntVar(&indent, "indent", 0, "indentation width, 0 means compact JSON")
	return cmd
}

func (a *app) newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary FILE",
		Short: "Prints graph and table sizes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.parseFile(args[0])
			if err != nil {
				return err
			}
			return encode.Text(cmd.OutOrStdout(), encode.Summarize(c))
		},
	}
}
