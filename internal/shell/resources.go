package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Resource file names inside the resources directory
const (
	HelpResource = "help.txt"
	LogoResource = "logo.txt"
)

// ResourcesFS returns the resources directory as a file system.
func ResourcesFS(dir string) fs.FS {
	return os.DirFS(dir)
}

// readResource reads a text resource. A missing file, directory or
// resources FS fails with ErrResourceMissing.
func (s *Shell) readResource(name string) (string, error) {
	if s.resources == nil {
		return "", &Error{Code: CodeResourceMissing, Command: name}
	}

	data, err := fs.ReadFile(s.resources, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", &Error{Code: CodeResourceMissing, Command: name, Err: err}
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}
