package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// StatsCmd returns the stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counts",
		Long: `Show the number of tasks by status, and pending tasks by priority.

Examples:
  lista stats
  lista stats --json
`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}

	addOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	stats, err := cliInstance.Store().Statistics()
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d %d %d\n", stats.Total, stats.Pending, stats.Completed)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"statistics":      stats,
			"completion_rate": stats.CompletionRate(),
		})
	}

	// Human-readable output
	row := func(label string, value interface{}) {
		fmt.Printf("  %s %v\n", styles.LabelStyle.Render(fmt.Sprintf("%-12s", label)), value)
	}
	fmt.Println(styles.TitleStyle.Render("Task statistics"))
	row("Total:", stats.Total)
	row("Pending:", stats.Pending)
	row("Completed:", stats.Completed)
	row("Done:", fmt.Sprintf("%.0f%%", stats.CompletionRate()))
	fmt.Println(styles.SectionStyle.Render("Pending by priority"))
	row("High:", styles.HighStyle.Render(fmt.Sprint(stats.HighPriority)))
	row("Medium:", styles.MediumStyle.Render(fmt.Sprint(stats.MediumPriority)))
	row("Low:", styles.LowStyle.Render(fmt.Sprint(stats.LowPriority)))
	return nil
}
