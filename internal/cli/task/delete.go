package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <task_number>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long: `Delete a task by number (requires confirmation unless --force, --quiet or --json).
Later tasks move up by one.

Examples:
  lista delete 4
  lista delete 4 --force
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	force, _ := cmd.Flags().GetBool("force")

	index, err := taskNumber(formatter, args[0])
	if err != nil {
		return err
	}

	task, err := cliInstance.Store().Get(index)
	if err != nil {
		return formatter.Fail(notFound(err, index))
	}

	// Ask for confirmation unless force or non-interactive output
	ok, err := confirm(formatter, force, fmt.Sprintf("Delete task #%d?", index+1), task.Description)
	if err != nil {
		return formatter.Fail(err)
	}
	if !ok {
		return cancelled()
	}

	if err := cliInstance.Store().Delete(index); err != nil {
		return formatter.Fail(notFound(err, index))
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", index+1)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{"deleted": cli.NewTaskJSON(index, task)})
	}

	// Human-readable output
	fmt.Printf("%s Task #%d deleted: %s\n", styles.SuccessStyle.Render("✓"), index+1, task.Description)
	return nil
}
