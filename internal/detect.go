package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// StateDBEnvVar names the environment variable that points at the state
// database, matching what the viewer frontend has always used.
const StateDBEnvVar = "VSCODE_STATE_DB_PATH"

// ResolveStorePath determines the state database path. Precedence: explicit
// path, VSCODE_STATE_DB_PATH, then the per-OS default globalStorage
// locations of VSCode and Cursor. A missing or unreadable store is fatal to
// the caller; nothing is served until it is resolved.
func ResolveStorePath(explicit string) (string, error) {
	if explicit != "" {
		return verifyStorePath(explicit)
	}

	if env := os.Getenv(StateDBEnvVar); env != "" {
		return verifyStorePath(env)
	}

	candidates, err := defaultStorePaths()
	if err != nil {
		return "", err
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no state database found (set %s or pass --db); looked in %v", StateDBEnvVar, candidates)
}

func verifyStorePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &StorageError{Path: path, Op: "open", Err: err}
	}
	// A storage directory is accepted as shorthand for its state.vscdb.
	if info.IsDir() {
		nested := filepath.Join(path, "state.vscdb")
		if _, err := os.Stat(nested); err != nil {
			return "", &StorageError{Path: nested, Op: "open", Err: err}
		}
		return nested, nil
	}
	return path, nil
}

func defaultStorePaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	var bases []string
	switch runtime.GOOS {
	case "darwin":
		bases = []string{
			filepath.Join(home, "Library/Application Support/Code/User"),
			filepath.Join(home, "Library/Application Support/Cursor/User"),
		}
	case "linux":
		bases = []string{
			filepath.Join(home, ".config/Code/User"),
			filepath.Join(home, ".config/Cursor/User"),
		}
	default:
		return nil, fmt.Errorf("unsupported OS: %s (only macOS and Linux are supported)", runtime.GOOS)
	}

	paths := make([]string, 0, len(bases))
	for _, base := range bases {
		paths = append(paths, filepath.Join(base, "globalStorage", "state.vscdb"))
	}
	return paths, nil
}
