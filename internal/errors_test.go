package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestStorageError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := &StorageError{Path: "/tmp/state.vscdb", Op: "open", Err: cause}

	if !strings.Contains(err.Error(), "open") || !strings.Contains(err.Error(), "/tmp/state.vscdb") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &ParseError{Table: TableDiskKV, Key: "bubbleId:c:1", Err: cause}

	if !strings.Contains(err.Error(), "bubbleId:c:1") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestExportError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &ExportError{Format: "md", Path: "/out/conv.md", Err: cause}

	if !strings.Contains(err.Error(), "md") || !strings.Contains(err.Error(), "/out/conv.md") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}
