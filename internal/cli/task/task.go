package task

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/huhforms"
	"github.com/thenoetrevino/lista/internal/store"
)

// Commands returns every task command. They are registered directly on
// the root command.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		DoneCmd(),
		UndoCmd(),
		EditCmd(),
		DeleteCmd(),
		ClearCmd(),
		SearchCmd(),
		StatsCmd(),
		BackupCmd(),
		RestoreCmd(),
		ExportCmd(),
		ReportCmd(),
		ValidateCmd(),
		ResetCmd(),
	}
}

// runForm runs a huh form
var runForm = func(form *huh.Form) error {
	return form.Run()
}

// addOutputFlags adds the agent-friendly flags every command carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// setup reads the output flags and returns the CLI from the command context
func setup(cmd *cobra.Command) (*cli.CLI, *cli.OutputFormatter, error) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			return nil, nil, cli.Exit(cli.ExitError, errors.Join(err, fmtErr))
		}
		return nil, nil, cli.Exit(cli.ExitError, err)
	}
	return cliInstance, formatter, nil
}

// confirm asks a yes/no question unless force is set or output is not interactive
func confirm(formatter *cli.OutputFormatter, force bool, title, description string) (bool, error) {
	if force || !formatter.Interactive() {
		return true, nil
	}
	return ask(title, description)
}

// ask shows a confirmation form. Tests replace it to answer prompts.
var ask = func(title, description string) (bool, error) {
	var ok bool
	if err := runForm(huhforms.CreateConfirmForm(title, description, &ok)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// taskNumber parses the task number argument into a store index
func taskNumber(formatter *cli.OutputFormatter, arg string) (int, error) {
	index, err := cli.ParseTaskNumber(arg)
	if err != nil {
		return 0, formatter.Fail(err)
	}
	return index, nil
}

// notFound rewrites an out-of-range error in terms of the 1-based task number
func notFound(err error, index int) error {
	if errors.Is(err, store.ErrIndexOutOfRange) {
		return fmt.Errorf("%w: no task #%d", store.ErrIndexOutOfRange, index+1)
	}
	return err
}

// cancelled reports an aborted prompt
func cancelled() error {
	fmt.Println("Cancelled.")
	return nil
}
