package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cgint/vscode-chat-extractor/internal"
)

// MarkdownExporter exports conversations in Markdown format
type MarkdownExporter struct{}

// Export exports a conversation to Markdown format
func (e *MarkdownExporter) Export(conv *internal.Conversation, w io.Writer) error {
	_, err := io.WriteString(w, RenderMarkdown(conv))
	return err
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}

// RenderMarkdown renders a conversation as a Markdown document. Shared with
// the HTML exporter, which converts this output.
func RenderMarkdown(conv *internal.Conversation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Conversation %s\n\n", conv.ID)
	fmt.Fprintf(&b, "**Messages:** %d\n\n", len(conv.Messages))
	b.WriteString("---\n\n")

	for i, msg := range conv.Messages {
		switch msg.Sender {
		case internal.SenderUser:
			b.WriteString("## 👤 User\n\n")
		default:
			b.WriteString("## 🤖 Assistant\n\n")
		}

		if msg.Text != "" {
			b.WriteString(msg.Text)
			b.WriteString("\n\n")
		}

		if len(msg.Attachments) > 0 {
			b.WriteString("**Attachments:**\n\n")
			for _, a := range msg.Attachments {
				if a.Path != "" {
					fmt.Fprintf(&b, "- %s: `%s` (%s)\n", a.Type, a.Name, a.Path)
				} else {
					fmt.Fprintf(&b, "- %s: `%s`\n", a.Type, a.Name)
				}
			}
			b.WriteString("\n")
		}

		for _, cb := range msg.CodeBlocks {
			if cb.URIPath != "" {
				fmt.Fprintf(&b, "`%s`:\n\n", cb.URIPath)
			}
			fmt.Fprintf(&b, "```%s\n%s\n```\n\n", cb.Language, cb.Content)
		}

		for _, to := range msg.ToolOutputs {
			name := to.ToolName
			if name == "" {
				name = "tool"
			}
			if to.Status != "" {
				fmt.Fprintf(&b, "**Tool output** (%s, %s):\n\n", name, to.Status)
			} else {
				fmt.Fprintf(&b, "**Tool output** (%s):\n\n", name)
			}
			fmt.Fprintf(&b, "```\n%s\n```\n\n", renderToolData(to.Data))
		}

		if i < len(conv.Messages)-1 {
			b.WriteString("---\n\n")
		}
	}

	return b.String()
}

// renderToolData formats tool data for a fenced block: strings as-is,
// structured values re-serialized as indented JSON.
func renderToolData(data any) string {
	switch v := data.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(out)
	}
}

// WriteIndex writes a Markdown index of all conversations, linking to the
// per-conversation files produced with the given extension.
func WriteIndex(w io.Writer, summaries []internal.ConversationSummary, ext string) error {
	var b strings.Builder
	b.WriteString("# Chat History Index\n\n")
	fmt.Fprintf(&b, "%d conversation(s)\n\n", len(summaries))

	for _, s := range summaries {
		fmt.Fprintf(&b, "- [%s](./%s) (%d messages)\n", s.Title, ConversationFileName(s.ID, ext), s.MessageCount)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ConversationFileName is the on-disk name for one exported conversation.
func ConversationFileName(conversationID, ext string) string {
	return fmt.Sprintf("conversation_%s.%s", conversationID, ext)
}
