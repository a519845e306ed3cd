package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cgint/vscode-chat-extractor/internal"
)

func TestMarkdownExport(t *testing.T) {
	conv := internal.CreateTestConversation("conv1")

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(conv, &buf); err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Conversation conv1",
		"**Messages:** 2",
		"## 👤 User",
		"## 🤖 Assistant",
		"Hello, how are you?",
		"Doing fine, thanks.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdownDetails(t *testing.T) {
	conv := internal.CreateTestConversationWithMessages("conv1", []internal.Message{
		{
			ID:     "001",
			Sender: internal.SenderUser,
			Text:   "see the file",
			Attachments: []internal.Attachment{
				{Type: "file_selection", Name: "main.go", Path: "/work/main.go"},
				{Type: "symbol_link_error", Name: "broken entry"},
			},
		},
		{
			ID:     "002",
			Sender: internal.SenderAssistant,
			CodeBlocks: []internal.CodeBlock{
				{Language: "go", Content: "package main", URIPath: "/work/main.go"},
			},
			ToolOutputs: []internal.ToolOutput{
				{ToolName: "read_file", Status: "completed", Data: map[string]any{"lines": 42}},
				{Data: "plain result"},
			},
		},
	})

	out := RenderMarkdown(conv)

	for _, want := range []string{
		"- file_selection: `main.go` (/work/main.go)",
		"- symbol_link_error: `broken entry`",
		"`/work/main.go`:",
		"```go\npackage main\n```",
		"**Tool output** (read_file, completed):",
		`"lines": 42`,
		"**Tool output** (tool):",
		"plain result",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdownEmptyConversation(t *testing.T) {
	conv := internal.CreateTestConversationWithMessages("empty", nil)

	out := RenderMarkdown(conv)

	if !strings.Contains(out, "# Conversation empty") {
		t.Errorf("output missing header:\n%s", out)
	}
	if !strings.Contains(out, "**Messages:** 0") {
		t.Errorf("output missing count:\n%s", out)
	}
}

func TestWriteIndex(t *testing.T) {
	summaries := []internal.ConversationSummary{
		{ID: "chat1", Title: "Fix my parser", MessageCount: 4},
		{ID: "chat2", Title: "Conversation chat2", MessageCount: 1},
	}

	var buf bytes.Buffer
	if err := WriteIndex(&buf, summaries, "md"); err != nil {
		t.Fatalf("WriteIndex() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Chat History Index",
		"2 conversation(s)",
		"[Fix my parser](./conversation_chat1.md) (4 messages)",
		"[Conversation chat2](./conversation_chat2.md) (1 messages)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("index missing %q:\n%s", want, out)
		}
	}
}

func TestConversationFileName(t *testing.T) {
	if got := ConversationFileName("abc", "html"); got != "conversation_abc.html" {
		t.Errorf("ConversationFileName() = %q", got)
	}
}
