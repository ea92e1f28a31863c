package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFilename is the database file name used when no path is configured.
const DefaultFilename = "db.sqlite3"

// ErrNoProjectRoot is returned by Locate when no enclosing git checkout exists.
var ErrNoProjectRoot = errors.New("cannot find project root (no .git directory)")

// Locate walks up from dir to the nearest directory containing .git and
// returns the path of DefaultFilename inside it.
func Locate(dir string) (string, error) {
	here, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(here, ".git")); err == nil {
			return filepath.Join(here, DefaultFilename), nil
		}
		parent := filepath.Dir(here)
		if parent == here {
			return "", ErrNoProjectRoot
		}
		here = parent
	}
}
