package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/store"
)

// BackupCmd returns the backup subcommand
func BackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the task file to the backup file",
		Long: `Copy the task file byte for byte to the backup file, replacing any
previous backup.

Examples:
  lista backup
  lista backup --backup-file=/tmp/todos.bak
`,
		Args: cobra.NoArgs,
		RunE: runBackup,
	}

	addOutputFlags(cmd)

	return cmd
}

// RestoreCmd returns the restore subcommand
func RestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replace the task file with the backup",
		Long: `Replace the task file with the contents of the backup file
(requires confirmation unless --force, --quiet or --json).

Examples:
  lista restore
  lista restore --force
`,
		Args: cobra.NoArgs,
		RunE: runRestore,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

func runBackup(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	if err := cliInstance.Store().Backup(); err != nil {
		return formatter.Fail(err)
	}

	path := cliInstance.Store().Config().BackupFile
	if formatter.Quiet {
		fmt.Println(path)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{"backup_file": path})
	}

	fmt.Printf("%s Backup written to %s\n", styles.SuccessStyle.Render("✓"), path)
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close() }()

	force, _ := cmd.Flags().GetBool("force")
	cfg := cliInstance.Store().Config()

	if !cliInstance.Store().HasBackup() {
		return formatter.Fail(fmt.Errorf("%w at %s", store.ErrNoBackup, cfg.BackupFile))
	}

	ok, err := confirm(formatter, force, "Restore from backup?",
		fmt.Sprintf("%s will be replaced with %s.", cfg.DataFile, cfg.BackupFile))
	if err != nil {
		return formatter.Fail(err)
	}
	if !ok {
		return cancelled()
	}

	if err := cliInstance.Store().Restore(); err != nil {
		return formatter.Fail(err)
	}

	tasks, err := cliInstance.Store().ReadAll()
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", len(tasks))
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"backup_file": cfg.BackupFile,
			"count":       len(tasks),
		})
	}

	fmt.Printf("%s Restored %d tasks from %s\n", styles.SuccessStyle.Render("✓"), len(tasks), cfg.BackupFile)
	return nil
}
