package cmd

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/cgint/vscode-chat-extractor/internal"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	dbPath    string
	keyPrefix string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vscode-chat-extractor",
	Short: "Extract and browse chat history from an editor state database",
	Long: `Extract, render and serve chat history stored in a VSCode/Cursor
state database (state.vscdb).

The tool reads the key-value store in read-only mode, decodes the message
records it finds, groups them into conversations and presents them as
browsable documents.

Quick Start:
  vscode-chat-extractor list                     # List all conversations
  vscode-chat-extractor show <conversation-id>   # View one conversation
  vscode-chat-extractor export --format md       # Export as Markdown
  vscode-chat-extractor serve                    # Start the API viewer`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the state database (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&keyPrefix, "key-prefix", internal.DefaultKeyPrefix, "Key prefix of message records")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// openStore resolves the configured store location and opens it read-only.
// A missing store is fatal to the command.
func openStore() (*sql.DB, string, error) {
	path, err := internal.ResolveStorePath(dbPath)
	if err != nil {
		return nil, "", err
	}

	db, err := internal.OpenDatabase(path)
	if err != nil {
		return nil, "", err
	}
	return db, path, nil
}
