package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/store"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `List tasks in file order. Task numbers stay the same in filtered views.

Examples:
  # All tasks
  lista list

  # Only pending tasks containing "rent"
  lista list --status=pending --search=rent

  # JSON output for agents
  lista list --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringP("status", "s", "all", "Status filter: all, pending, completed")
	cmd.Flags().String("search", "", "Only tasks containing this text (case-insensitive)")
	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	statusFlag, _ := cmd.Flags().GetString("status")
	term, _ := cmd.Flags().GetString("search")

	var status models.Status
	if statusFlag != "" && statusFlag != "all" {
		status, err = models.ParseStatus(statusFlag)
		if err != nil {
			return formatter.Fail(err)
		}
	}

	tasks, err := cliInstance.Store().ReadAll()
	if err != nil {
		return formatter.Fail(err)
	}

	return printTasks(formatter, store.Select(tasks, status, term), store.Summarize(tasks))
}

// printTasks writes a task listing in the formatter's mode
func printTasks(formatter *cli.OutputFormatter, tasks []models.IndexedTask, stats models.Statistics) error {
	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Printf("%d\n", t.Index+1)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"tasks": cli.TasksJSON(tasks),
			"count": len(tasks),
		})
	}

	// Human-readable output
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	for _, t := range tasks {
		fmt.Println(cli.FormatTask(t.Index, t.Task))
	}
	fmt.Println()
	fmt.Println(styles.SubtitleStyle.Render(fmt.Sprintf("%d shown, %d total (%d pending, %d completed)",
		len(tasks), stats.Total, stats.Pending, stats.Completed)))
	return nil
}
