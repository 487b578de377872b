package task

import (
	"strings"

	"github.com/spf13/cobra"
)

// SearchCmd returns the search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <term...>",
		Short: "Find tasks by text",
		Long: `Find tasks whose description contains the term, ignoring case.

Examples:
  lista search rent
  lista search "buy milk" --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}

	addOutputFlags(cmd)

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	matches, err := cliInstance.Store().Search(strings.Join(args, " "))
	if err != nil {
		return formatter.Fail(err)
	}

	stats, err := cliInstance.Store().Statistics()
	if err != nil {
		return formatter.Fail(err)
	}

	return printTasks(formatter, matches, stats)
}
