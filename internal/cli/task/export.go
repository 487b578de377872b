package task

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/export"
)

// ExportCmd returns the export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write the task list to another file",
		Long: `Write the task list to a file as a text report, CSV, JSON, markdown
or a SQLite database. The format is taken from --format, then from the file
extension, then from the configured export_format when the path has no
extension.

Examples:
  lista export ~/todos.csv
  lista export ~/todos.db --format=sqlite
  lista export report.txt
`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().String("format", "", "Export format: txt, csv, json, md, sqlite")
	addOutputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	path := args[0]
	formatFlag, _ := cmd.Flags().GetString("format")

	configured := ""
	if cliInstance.App.Config != nil {
		configured = cliInstance.App.Config.ExportFormat
	}

	format, err := resolveFormat(configured, formatFlag, path)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := cliInstance.Store().Export(cmd.Context(), path, format); err != nil {
		return formatter.Fail(err)
	}

	tasks, err := cliInstance.Store().ReadAll()
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Println(path)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"path":   path,
			"format": format,
			"count":  len(tasks),
		})
	}

	fmt.Printf("%s Exported %d tasks to %s (%s)\n", styles.SuccessStyle.Render("✓"), len(tasks), path, format)
	return nil
}

// resolveFormat picks the flag value, then the path extension, then the configured default
func resolveFormat(configured, flag, path string) (export.Format, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	if filepath.Ext(path) != "" {
		return export.FormatForPath(path)
	}
	if configured == "" {
		return export.FormatText, nil
	}
	return export.ParseFormat(configured)
}
