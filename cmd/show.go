package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cgint/vscode-chat-extractor/internal"
	"github.com/spf13/cobra"
)

var showLimit int

var (
	// Styles for show command
	convHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1).
			MarginBottom(1)

	convMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginBottom(1)

	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 1)

	assistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	messageContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <conversation-id>",
	Short: "Show messages for a specific conversation",
	Long:  `Display all messages of one conversation, including attachments, code blocks and tool outputs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conversationID := args[0]

		db, _, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		storage := internal.NewStorage(db, keyPrefix)
		conv, err := storage.Conversation(conversationID)
		if err != nil {
			return fmt.Errorf("failed to load conversation: %w", err)
		}
		if conv == nil {
			return fmt.Errorf("conversation not found: %s (use 'vscode-chat-extractor list' to see available conversations)", conversationID)
		}

		summary := internal.Summarize(conv.ID, conv.Messages)
		displayConversationHeader(summary)

		messagesToShow := conv.Messages
		total := len(messagesToShow)
		if showLimit > 0 && showLimit < total {
			messagesToShow = messagesToShow[:showLimit]
		}

		for i, msg := range messagesToShow {
			displayMessage(i+1, msg, total)
		}

		if showLimit > 0 && showLimit < total {
			fmt.Println()
			fmt.Println(detailStyle.Render(fmt.Sprintf("... (%d more message(s))", total-showLimit)))
		}

		return nil
	},
}

func displayConversationHeader(summary internal.ConversationSummary) {
	fmt.Println(convHeaderStyle.Render(fmt.Sprintf("💬 %s", summary.Title)))
	fmt.Println(convMetaStyle.Render(fmt.Sprintf("ID: %s • Messages: %d", summary.ID, summary.MessageCount)))
	fmt.Println()
}

func displayMessage(index int, msg internal.Message, total int) {
	var actorStyle lipgloss.Style
	var actorLabel string

	switch msg.Sender {
	case internal.SenderUser:
		actorStyle = userMessageStyle
		actorLabel = "👤 User"
	default:
		actorStyle = assistantMessageStyle
		actorLabel = "🤖 Assistant"
	}

	header := actorStyle.Render(actorLabel) + " " + detailStyle.Render(fmt.Sprintf("[%d/%d]", index, total))
	fmt.Println(header)

	content := strings.TrimSpace(msg.Text)
	if content != "" {
		fmt.Println(messageContentStyle.Render(wrapText(content, 80)))
	} else {
		fmt.Println(messageContentStyle.Foreground(lipgloss.Color("240")).Render("(empty message)"))
	}

	for _, a := range msg.Attachments {
		fmt.Println(detailStyle.Render(fmt.Sprintf("  📎 %s: %s", a.Type, a.Name)))
	}
	for _, cb := range msg.CodeBlocks {
		lang := cb.Language
		if lang == "" {
			lang = "code"
		}
		fmt.Println(detailStyle.Render(fmt.Sprintf("  📄 %s block (%d bytes)", lang, len(cb.Content))))
	}
	for _, to := range msg.ToolOutputs {
		name := to.ToolName
		if name == "" {
			name = "tool"
		}
		if to.Status != "" {
			fmt.Println(detailStyle.Render(fmt.Sprintf("  🔧 %s (%s)", name, to.Status)))
		} else {
			fmt.Println(detailStyle.Render(fmt.Sprintf("  🔧 %s", name)))
		}
	}

	fmt.Println()
}

func wrapText(text string, width int) string {
	lines := strings.Split(text, "\n")
	var wrapped []string

	for _, line := range lines {
		if len(line) <= width {
			wrapped = append(wrapped, line)
			continue
		}

		words := strings.Fields(line)
		currentLine := ""
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				if currentLine != "" {
					wrapped = append(wrapped, currentLine)
					currentLine = word
				} else {
					wrapped = append(wrapped, word)
					currentLine = ""
				}
			} else {
				if currentLine == "" {
					currentLine = word
				} else {
					currentLine += " " + word
				}
			}
		}
		if currentLine != "" {
			wrapped = append(wrapped, currentLine)
		}
	}

	return strings.Join(wrapped, "\n")
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&showLimit, "limit", "n", 0, "Limit number of messages to show")
}
