package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCommand(t *testing.T) {
	path := testStorePath(t)
	outDir := filepath.Join(t.TempDir(), "out")

	_, err := runCommand(t, "export", "--db", path, "--out", outDir, "--format", "md")
	if err != nil {
		t.Fatalf("export error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(outDir, "conversation_chat1.md"))
	if err != nil {
		t.Fatalf("missing exported conversation: %v", err)
	}
	if !strings.Contains(string(content), "# Conversation chat1") {
		t.Errorf("exported file missing header:\n%s", content)
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.md"))
	if err != nil {
		t.Fatalf("missing index: %v", err)
	}
	if !strings.Contains(string(index), "conversation_chat1.md") {
		t.Errorf("index missing conversation link:\n%s", index)
	}
}

func TestExportCommandSingleConversation(t *testing.T) {
	path := testStorePath(t)
	outDir := filepath.Join(t.TempDir(), "out")

	_, err := runCommand(t, "export", "--db", path, "--out", outDir,
		"--format", "json", "--conversation-id", "chat1")
	if err != nil {
		t.Fatalf("export error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "conversation_chat1.json")); err != nil {
		t.Errorf("missing exported conversation: %v", err)
	}
}

func TestExportCommandUnknownConversation(t *testing.T) {
	path := testStorePath(t)
	outDir := filepath.Join(t.TempDir(), "out")

	_, err := runCommand(t, "export", "--db", path, "--out", outDir,
		"--conversation-id", "does-not-exist")
	if err == nil {
		t.Fatal("expected error for unknown conversation id")
	}
}

func TestExportCommandInvalidFormat(t *testing.T) {
	path := testStorePath(t)
	outDir := filepath.Join(t.TempDir(), "out")

	_, err := runCommand(t, "export", "--db", path, "--out", outDir,
		"--format", "invalid", "--conversation-id", "")
	if err == nil {
		t.Fatal("expected error for invalid format")
	}
}
