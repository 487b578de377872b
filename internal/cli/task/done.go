package task

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/models"
)

// DoneCmd returns the done subcommand
func DoneCmd() *cobra.Command {
	return statusCmd("done <task_number>", "Mark a task as completed", models.StatusCompleted, `Mark a task as completed.

Examples:
  # Complete task 3
  lista done 3

  # JSON output for agents
  lista done 3 --json
`)
}

// UndoCmd returns the undo subcommand
func UndoCmd() *cobra.Command {
	cmd := statusCmd("undo <task_number>", "Mark a completed task as pending again", models.StatusPending, `Reopen a completed task.

Examples:
  lista undo 3
`)
	cmd.Aliases = []string{"reopen"}
	return cmd
}

func statusCmd(use, short string, status models.Status, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetStatus(cmd, args, status)
		},
	}

	addOutputFlags(cmd)

	return cmd
}

func runSetStatus(cmd *cobra.Command, args []string, status models.Status) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	index, err := taskNumber(formatter, args[0])
	if err != nil {
		return err
	}

	task, err := cliInstance.Store().Get(index)
	if err != nil {
		return formatter.Fail(notFound(err, index))
	}

	if task.Status == status {
		// Nothing to change, still a success
		fmt.Fprintf(os.Stderr, "Task #%d is already %s\n", index+1, status)
	} else if err := cliInstance.Store().UpdateStatus(index, status); err != nil {
		return formatter.Fail(notFound(err, index))
	}
	task.Status = status

	if formatter.Quiet {
		fmt.Printf("%d\n", index+1)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{"task": cli.NewTaskJSON(index, task)})
	}

	// Human-readable output
	fmt.Printf("%s Task #%d marked as %s: %s\n",
		styles.SuccessStyle.Render("✓"), index+1, status, task.Description)
	return nil
}
