package dirtar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// windowsTarPath is where bsdtar ships on Windows 10 and later.
const windowsTarPath = `C:\Windows\System32\tar.exe`

// Archiver creates one archive per subdirectory. Production code shells out
// to the system tar binary; tests substitute a fake.
type Archiver interface {
	// Create writes an uncompressed tar of source/entry to archive, with
	// paths inside the tar relative to source (so the tar's root is the
	// entry name itself). It blocks until the archiver process exits.
	Create(ctx context.Context, archive, source, entry string) error
}

// TarArchiver invokes an external tar-compatible executable synchronously.
type TarArchiver struct {
	// Path is the resolved location of the tar executable.
	Path string
}

// NewTarArchiver locates the system tar binary. On POSIX the lookup goes
// through PATH; on Windows a fixed system path is probed. An error here means
// no archiving can happen at all, so callers abort before touching anything.
func NewTarArchiver() (*TarArchiver, error) {
	path, err := toolPath()
	if err != nil {
		return nil, err
	}

	return &TarArchiver{Path: path}, nil
}

// Create runs `tar -cf <archive> -C <source> <entry>` and waits for it.
// The tool's output is discarded; only its exit status matters.
func (a *TarArchiver) Create(ctx context.Context, archive, source, entry string) error {
	cmd := exec.CommandContext(ctx, a.Path, "-cf", archive, "-C", source, entry)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("tar exited with status %d", exitErr.ExitCode())
		}

		return fmt.Errorf("launching tar: %w", err)
	}

	return nil
}

// toolPath returns the location of the tar executable for this platform.
func toolPath() (string, error) {
	if runtime.GOOS == "windows" {
		if _, err := os.Stat(windowsTarPath); err != nil {
			return "", fmt.Errorf("tar executable not found at %q: %w", windowsTarPath, err)
		}

		return windowsTarPath, nil
	}

	path, err := exec.LookPath("tar")
	if err != nil {
		return "", fmt.Errorf("tar executable not found in PATH: %w", err)
	}

	return path, nil
}
