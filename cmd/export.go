package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cgint/vscode-chat-extractor/internal"
	"github.com/cgint/vscode-chat-extractor/internal/export"
	"github.com/spf13/cobra"
)

var (
	format         string
	outputDir      string
	conversationID string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export conversations to files",
	Long: `Export conversations to various formats (json, jsonl, md, html, yaml).

Exports all conversations by default, or a single one with --conversation-id.
An index.md listing every exported conversation is written alongside the
per-conversation files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		storage := internal.NewStorage(db, keyPrefix)
		groups, err := storage.Conversations()
		if err != nil {
			return fmt.Errorf("failed to scan conversations: %w", err)
		}

		if conversationID != "" {
			messages, ok := groups[conversationID]
			if !ok {
				return fmt.Errorf("conversation not found: %s (use 'vscode-chat-extractor list' to see available conversations)", conversationID)
			}
			groups = map[string][]internal.Message{conversationID: messages}
		}

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		summaries := internal.ListAll(groups)
		for _, summary := range summaries {
			conv := &internal.Conversation{ID: summary.ID, Messages: groups[summary.ID]}
			name := export.ConversationFileName(conv.ID, exporter.Extension())
			path := filepath.Join(outputDir, name)

			if err := writeConversation(exporter, conv, path); err != nil {
				internal.LogError("Failed to export conversation %s: %v", conv.ID, err)
				continue
			}
		}

		indexPath := filepath.Join(outputDir, "index.md")
		indexFile, err := os.Create(indexPath)
		if err != nil {
			return fmt.Errorf("failed to create index file: %w", err)
		}
		defer func() { _ = indexFile.Close() }()
		if err := export.WriteIndex(indexFile, summaries, exporter.Extension()); err != nil {
			return &internal.ExportError{Format: "md", Path: indexPath, Err: err}
		}

		fmt.Printf("Export complete: %d conversation(s) exported to %s\n", len(summaries), outputDir)
		return nil
	},
}

func writeConversation(exporter export.Exporter, conv *internal.Conversation, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := exporter.Export(conv, file); err != nil {
		_ = file.Close()
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}

	return file.Close()
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "md", "Export format (json, jsonl, md, html, yaml)")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", "./organized_chats", "Output directory")
	exportCmd.Flags().StringVar(&conversationID, "conversation-id", "", "Export a specific conversation by ID")
}
