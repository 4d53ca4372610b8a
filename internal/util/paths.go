package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir resolves the per-user data directory for the app, honoring
// XDG_DATA_HOME and falling back to ~/.local/share.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is where exported reports land: a folder named after the app
// inside the user's documents directory.
func ReportsDir(app string) string {
	return filepath.Join(documentsDir(), strings.ToUpper(app))
}

func documentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	userDirs := filepath.Join(home, ".config", "user-dirs.dirs")
	if data, err := os.ReadFile(userDirs); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "XDG_DOCUMENTS_DIR=") {
				continue
			}
			dir := strings.Trim(strings.TrimPrefix(line, "XDG_DOCUMENTS_DIR="), "\"")
			if dir != "" {
				return expandHome(dir)
			}
		}
	}
	return filepath.Join(home, "Documents")
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return strings.ReplaceAll(path, "$HOME", "")
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
