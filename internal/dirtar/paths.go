package dirtar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Expand resolves a user-supplied path to a normalized absolute path.
// A leading "~" (or "%USERPROFILE%" on Windows) refers to the user's home
// directory. No existence check is performed.
func Expand(path string) (string, error) {
	if path == "" {
		return "", errors.New("path is empty")
	}

	path, err := expandHome(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path for %q: %w", path, err)
	}

	return abs, nil
}

// expandHome replaces the platform's home-directory prefix, if present.
func expandHome(path string) (string, error) {
	if runtime.GOOS == "windows" {
		const envRef = "%USERPROFILE%"

		if len(path) >= len(envRef) && strings.EqualFold(path[:len(envRef)], envRef) {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolving home directory: %w", err)
			}

			return filepath.Join(home, path[len(envRef):]), nil
		}

		return path, nil
	}

	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	if path == "~" {
		return home, nil
	}

	return filepath.Join(home, path[2:]), nil
}
