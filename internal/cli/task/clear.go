package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// ClearCmd returns the clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove completed tasks",
		Long: `Remove every completed task. With --all, remove every task.

Examples:
  lista clear
  lista clear --all --force
`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}

	cmd.Flags().Bool("all", false, "Remove all tasks, not only completed ones")
	cmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	all, _ := cmd.Flags().GetBool("all")
	force, _ := cmd.Flags().GetBool("force")

	var removed int
	if all {
		ok, err := confirm(formatter, force, "Remove ALL tasks?", "This cannot be undone unless you have a backup.")
		if err != nil {
			return formatter.Fail(err)
		}
		if !ok {
			return cancelled()
		}
		removed, err = cliInstance.Store().ClearAll()
		if err != nil {
			return formatter.Fail(err)
		}
	} else {
		removed, err = cliInstance.Store().ClearCompleted()
		if err != nil {
			return formatter.Fail(err)
		}
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", removed)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{"removed": removed, "all": all})
	}

	// Human-readable output
	what := "completed tasks"
	if all {
		what = "tasks"
	}
	if removed == 0 {
		fmt.Printf("No %s to remove.\n", what)
		return nil
	}
	fmt.Printf("%s Removed %d %s\n", styles.SuccessStyle.Render("✓"), removed, what)
	return nil
}
