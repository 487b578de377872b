package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/store"
)

// ValidateCmd returns the validate subcommand
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a task file for malformed lines",
		Long: `Check every line of a task file: field count, timestamp, priority and
status. Defaults to the configured task file. Exits with status 4 and names
the first bad line when the file is malformed.

Examples:
  lista validate
  lista validate ~/old-todos.txt
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}

	addOutputFlags(cmd)

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	path := cliInstance.Store().Config().DataFile
	if len(args) == 1 {
		path = args[0]
		err = store.ValidateFile(path)
	} else {
		err = cliInstance.Store().Validate()
	}
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{"path": path, "valid": true})
	}

	fmt.Printf("%s %s is valid\n", styles.SuccessStyle.Render("✓"), path)
	return nil
}
