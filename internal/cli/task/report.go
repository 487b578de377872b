package task

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/export"
)

// now is the clock used for report dates
var now = time.Now

// ReportCmd returns the report subcommand
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a markdown summary of the task list",
		Long: `Render the task list as a markdown report in the terminal.

Examples:
  lista report
  lista report --raw > todos.md
`,
		Args: cobra.NoArgs,
		RunE: runReport,
	}

	cmd.Flags().Bool("raw", false, "Print the markdown source instead of rendering it")
	cmd.Flags().Int("width", 80, "Word wrap width of the rendered report")
	addOutputFlags(cmd)

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	raw, _ := cmd.Flags().GetBool("raw")
	width, _ := cmd.Flags().GetInt("width")

	tasks, err := cliInstance.Store().ReadAll()
	if err != nil {
		return formatter.Fail(err)
	}

	md := export.MarkdownReport(tasks, now())

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{"markdown": md})
	}

	if raw || formatter.Quiet {
		fmt.Print(md)
		return nil
	}

	rendered, err := renderMarkdown(md, width)
	if err != nil {
		// Fall back to the markdown source
		fmt.Print(md)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

// renderMarkdown renders md for the terminal with glamour
func renderMarkdown(md string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
