package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/cgint/vscode-chat-extractor/internal"
	"github.com/spf13/cobra"
)

var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that the state database is readable",
	Long: `Verify that the state database can be located, opened read-only, and
contains the expected key-value table with message records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := internal.ResolveStorePath(dbPath)
		if err != nil {
			fmt.Println(failStyle.Render("✗ Store location"))
			return err
		}
		fmt.Println(okStyle.Render("✓ Store location") + " " + path)

		db, err := internal.OpenDatabase(path)
		if err != nil {
			fmt.Println(failStyle.Render("✗ Open database"))
			return err
		}
		defer func() { _ = db.Close() }()
		fmt.Println(okStyle.Render("✓ Open database"))

		hasKV, err := internal.HasTable(db, internal.TableDiskKV)
		if err != nil {
			fmt.Println(failStyle.Render("✗ Read schema"))
			return err
		}
		if !hasKV {
			fmt.Println(failStyle.Render("✗ Table " + internal.TableDiskKV + " missing"))
			return fmt.Errorf("table %s not found in %s", internal.TableDiskKV, path)
		}
		fmt.Println(okStyle.Render("✓ Table " + internal.TableDiskKV))

		storage := internal.NewStorage(db, keyPrefix)
		records, err := storage.LoadMessageRecords()
		if err != nil {
			fmt.Println(failStyle.Render("✗ Scan message records"))
			return err
		}
		groups := internal.GroupRecords(records, storage.KeyPrefix())
		fmt.Println(okStyle.Render(fmt.Sprintf("✓ %d message record(s) in %d conversation(s)", len(records), len(groups))))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
