package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/huhforms"
	"github.com/thenoetrevino/lista/internal/models"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [description...]",
		Short: "Add a new task",
		Long: `Add a new pending task to the end of the list.

Examples:
  # Simple task (human-readable output)
  lista add Buy milk

  # High priority
  lista add "Pay rent" --priority=high

  # Prompt for the task and its priority
  lista add --interactive

  # Quiet mode for bash capture
  N=$(lista add "Call mom" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().StringP("priority", "p", "", "Priority: high, medium, low (defaults to the configured priority)")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for the task with a form")
	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	description := strings.Join(args, " ")
	interactive, _ := cmd.Flags().GetBool("interactive")

	priority := models.DefaultPriority
	if cliInstance.App.Config != nil {
		priority = cliInstance.App.Config.Priority()
	}
	if flag, _ := cmd.Flags().GetString("priority"); flag != "" {
		priority, err = models.ParsePriority(flag)
		if err != nil {
			return formatter.Fail(err)
		}
	}

	if interactive || (description == "" && formatter.Interactive()) {
		ok := true
		if err := runForm(huhforms.CreateTaskForm(&description, &priority, &ok)); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return cancelled()
			}
			return formatter.Fail(err)
		}
		if !ok {
			return cancelled()
		}
	}

	task, err := cliInstance.Store().Add(description, priority)
	if err != nil {
		return formatter.Fail(err)
	}

	tasks, err := cliInstance.Store().ReadAll()
	if err != nil {
		return formatter.Fail(err)
	}
	view := cli.NewTaskJSON(len(tasks)-1, task)

	if formatter.Quiet {
		fmt.Printf("%d\n", view.Number)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{"task": view})
	}

	// Human-readable output
	fmt.Printf("%s Task #%d added\n", styles.SuccessStyle.Render("✓"), view.Number)
	fmt.Printf("  %s %s\n", styles.LabelStyle.Render("Task:"), task.Description)
	fmt.Printf("  %s %s\n", styles.LabelStyle.Render("Priority:"), styles.Priority(task).Render(string(task.Priority)))
	return nil
}
