package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// ResetCmd returns the reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the task file and start over",
		Long: `Delete the task file entirely (requires confirmation unless --force,
--quiet or --json). The backup file is left alone.

Examples:
  lista reset --force
`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	force, _ := cmd.Flags().GetBool("force")
	path := cliInstance.Store().Config().DataFile

	ok, err := confirm(formatter, force, "Start a new task list?", path+" will be deleted.")
	if err != nil {
		return formatter.Fail(err)
	}
	if !ok {
		return cancelled()
	}

	if err := cliInstance.Store().Reset(); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{"path": path})
	}

	fmt.Printf("%s Removed %s\n", styles.SuccessStyle.Render("✓"), path)
	return nil
}
