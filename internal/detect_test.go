package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "state.vscdb")
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatalf("failed to write stub store: %v", err)
	}
	return path
}

func TestResolveStorePathExplicit(t *testing.T) {
	path := writeTempStore(t)

	got, err := ResolveStorePath(path)
	if err != nil {
		t.Fatalf("ResolveStorePath() error: %v", err)
	}
	if got != path {
		t.Errorf("ResolveStorePath() = %q, want %q", got, path)
	}
}

func TestResolveStorePathDirShorthand(t *testing.T) {
	path := writeTempStore(t)
	dir := filepath.Dir(path)

	got, err := ResolveStorePath(dir)
	if err != nil {
		t.Fatalf("ResolveStorePath() error: %v", err)
	}
	if got != path {
		t.Errorf("ResolveStorePath(dir) = %q, want %q", got, path)
	}
}

func TestResolveStorePathDirWithoutStore(t *testing.T) {
	dir := t.TempDir()

	_, err := ResolveStorePath(dir)
	if err == nil {
		t.Fatal("expected error for directory without state.vscdb")
	}
}

func TestResolveStorePathEnv(t *testing.T) {
	path := writeTempStore(t)
	t.Setenv(StateDBEnvVar, path)

	got, err := ResolveStorePath("")
	if err != nil {
		t.Fatalf("ResolveStorePath() error: %v", err)
	}
	if got != path {
		t.Errorf("ResolveStorePath() = %q, want env path %q", got, path)
	}
}

func TestResolveStorePathExplicitBeatsEnv(t *testing.T) {
	explicit := writeTempStore(t)
	t.Setenv(StateDBEnvVar, filepath.Join(t.TempDir(), "does-not-exist.vscdb"))

	got, err := ResolveStorePath(explicit)
	if err != nil {
		t.Fatalf("ResolveStorePath() error: %v", err)
	}
	if got != explicit {
		t.Errorf("ResolveStorePath() = %q, want explicit %q", got, explicit)
	}
}

func TestResolveStorePathMissing(t *testing.T) {
	_, err := ResolveStorePath(filepath.Join(t.TempDir(), "nope.vscdb"))
	if err == nil {
		t.Fatal("expected error for missing explicit path")
	}
}
