package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/cgint/vscode-chat-extractor/internal"
	"github.com/spf13/cobra"
)

var searchShowStrings bool

var matchKindStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("214")).
	Bold(true)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the whole store for a term",
	Long: `Search every record of the state database for a byte sequence.

This goes beyond message records: JSON, text and binary values in both
key-value tables are inspected, and matches report where the term was found
along with surrounding context.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := args[0]

		db, path, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		fmt.Printf("Searching %s for: %q\n\n", path, term)

		matches, err := internal.SearchStore(db, term)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(matches) == 0 {
			fmt.Println("No matches found.")
			return nil
		}

		for _, match := range matches {
			fmt.Printf("%s %s (%s, position %d)\n",
				matchKindStyle.Render("["+match.Kind+"]"),
				match.Key, match.Table, match.Position)
			if match.Context != "" {
				fmt.Printf("  ...%s...\n", match.Context)
			}
			if searchShowStrings {
				for _, s := range match.Strings {
					fmt.Printf("  string: %s\n", s)
				}
			}
			fmt.Println()
		}

		fmt.Printf("Found %d match(es).\n", len(matches))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchShowStrings, "strings", false, "Show printable strings extracted from binary matches")
}
