package export

import (
	"testing"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
	}{
		{"jsonl", "jsonl"},
		{"md", "md"},
		{"markdown", "md"},
		{"html", "html"},
		{"yaml", "yaml"},
		{"json", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exp, err := NewExporter(tt.format)
			if err != nil {
				t.Fatalf("NewExporter(%q) error: %v", tt.format, err)
			}
			if exp.Extension() != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", exp.Extension(), tt.wantExt)
			}
		})
	}
}

func TestNewExporterUnsupported(t *testing.T) {
	if _, err := NewExporter("csv"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
