package cmd

import (
	"fmt"

	"github.com/cgint/vscode-chat-extractor/internal"
	"github.com/spf13/cobra"
)

var dumpOutputDir string

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the whole store to files",
	Long: `Dump every row of every table in the state database to a directory,
for offline inspection and full-text searching.

JSON values are pretty-printed to .json files, readable text to .txt, and
anything else is kept byte-for-byte as .bin. Each table directory also gets
a schema.json and a keys.txt listing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, path, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		fmt.Printf("Dumping %s to %s\n", path, dumpOutputDir)

		report, err := internal.DumpStore(db, dumpOutputDir)
		if err != nil {
			return fmt.Errorf("dump failed: %w", err)
		}

		fmt.Printf("Dumped %d row(s) across %d table(s): %d json, %d text, %d binary, %d absent\n",
			report.Rows, report.Tables, report.JSONFiles, report.TextFiles, report.BinaryFiles, report.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVarP(&dumpOutputDir, "out", "o", "./sqlite_dump", "Output directory")
}
