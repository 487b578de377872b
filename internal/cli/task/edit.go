package task

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/huhforms"
	"github.com/thenoetrevino/lista/internal/models"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <task_number>",
		Short: "Change a pending task's text or priority",
		Long: `Change the description and/or priority of a pending task.
Completed tasks cannot be edited; reopen them with 'lista undo' first.
Without flags the task is edited in a form.

Examples:
  lista edit 2 --text="Pay rent by Friday"
  lista edit 2 --priority=low
`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().StringP("text", "t", "", "New description")
	cmd.Flags().StringP("priority", "p", "", "New priority: high, medium, low")
	addOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
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
	if task.IsCompleted() {
		return formatter.Fail(fmt.Errorf("%w: task #%d", cli.ErrCompletedTask, index+1))
	}

	text, _ := cmd.Flags().GetString("text")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	textSet := cmd.Flags().Changed("text")

	priority := task.Priority
	if priorityFlag != "" {
		priority, err = models.ParsePriority(priorityFlag)
		if err != nil {
			return formatter.Fail(err)
		}
	}

	if !textSet && priorityFlag == "" {
		if !formatter.Interactive() {
			return formatter.Fail(fmt.Errorf("%w: at least one of --text or --priority is required", cli.ErrUsage))
		}
		text = task.Description
		ok := true
		if err := runForm(huhforms.CreateTaskForm(&text, &priority, &ok)); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return cancelled()
			}
			return formatter.Fail(err)
		}
		if !ok {
			return cancelled()
		}
		textSet = text != task.Description
	}

	if !textSet {
		text = task.Description
	}
	if err := cliInstance.Store().Update(index, text, priority); err != nil {
		return formatter.Fail(notFound(err, index))
	}

	updated, err := cliInstance.Store().Get(index)
	if err != nil {
		return formatter.Fail(notFound(err, index))
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", index+1)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{"task": cli.NewTaskJSON(index, updated)})
	}

	// Human-readable output
	fmt.Printf("%s Task #%d updated\n", styles.SuccessStyle.Render("✓"), index+1)
	fmt.Println(cli.FormatTask(index, updated))
	return nil
}
