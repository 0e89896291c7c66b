package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ava12/tgff/encode"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	lineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Reports syntax errors",
		Long: `Parses each file and prints "ok" or the first syntax error with its line.

Exit status is non-zero if any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runCheck,
	}
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		c, err := a.parseFile(path)
		if err == nil {
			s := encode.Summarize(c)
			fmt.Fprintf(out, "%s %s: %d graphs, %d tasks, %d tables\n", okStyle.Render("ok"), path, len(s.Graphs), s.Tasks(), len(s.Tables))
			continue
		}

		failed++
		fmt.Fprintf(out, "%s %v\n", failStyle.Render("FAIL"), err)
		var pe *parseError
		if errors.As(err, &pe) && pe.text != "" {
			fmt.Fprintf(out, "    %s\n", lineStyle.Render(pe.text))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
