package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/cgint/vscode-chat-extractor/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available conversations",
	Long:  `List all conversations found in the state database, with title and message count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, path, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		internal.LogDebug("scanning %s", path)

		storage := internal.NewStorage(db, keyPrefix)
		summaries, err := storage.Catalog()
		if err != nil {
			return fmt.Errorf("failed to build catalog: %w", err)
		}

		displaySummaries(summaries)
		return nil
	},
}

func displaySummaries(summaries []internal.ConversationSummary) {
	if len(summaries) == 0 {
		fmt.Println(headerStyle.Render("📋 No conversations found"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("📋 Found %d conversation(s)", len(summaries)))
	fmt.Println(header)
	fmt.Println()

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Title")+"\t"+titleStyle.Render("Messages")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, summary := range summaries {
		// Show short ID (first 8 chars) for readability, but the full id is
		// what show/export accept.
		shortID := summary.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t\n",
			idStyle.Render(shortID),
			summary.Title,
			countStyle.Render(strconv.Itoa(summary.MessageCount)))
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("💡 Tip: Use the full ID (e.g., ") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render(summaries[0].ID) +
		idStyle.Render(") with `vscode-chat-extractor show <id>`"))
}

func init() {
	rootCmd.AddCommand(listCmd)
}
