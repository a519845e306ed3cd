package export

import (
	"bytes"
	"testing"

	"github.com/cgint/vscode-chat-extractor/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExport(t *testing.T) {
	conv := internal.CreateTestConversation("conv1")

	var buf bytes.Buffer
	if err := (&YAMLExporter{}).Export(conv, &buf); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["id"] != "conv1" {
		t.Errorf("id = %v, want conv1", decoded["id"])
	}
	msgs, ok := decoded["messages"].([]any)
	if !ok || len(msgs) != 2 {
		t.Errorf("messages = %v, want 2 entries", decoded["messages"])
	}
}
