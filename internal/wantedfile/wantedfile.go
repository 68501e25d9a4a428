// Package wantedfile reads and writes wanted-list payloads on disk and asks
// before overwriting them.
package wantedfile

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/brickline/pkg/constants"
	"github.com/agentstation/brickline/pkg/errors"
)

// Read returns the contents of the file at path.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.NewIOError("read", path, fmt.Errorf("%w: %w", errors.ErrNotFound, err))
		}
		return "", errors.WrapIO("read", path, err)
	}
	return string(data), nil
}

// Write stores text at path. The text goes to a temporary file in the same
// directory first and is renamed into place, so a failed write never leaves
// a truncated list behind.
func Write(path, text string) error {
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tempPath := tempFile.Name()

	if _, err := io.WriteString(tempFile, text); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", path, err)
	}
	if err := os.Chmod(tempPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("chmod", path, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("move", path, err)
	}
	return nil
}

// Exists reports whether something exists at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, errors.WrapIO("stat", path, err)
	}
}

// ConfirmOverwrite asks on out whether path may be overwritten and reads one
// line from in. Only "y" or "yes" (any case) confirm; end of input declines.
func ConfirmOverwrite(in io.Reader, out io.Writer, path string) (bool, error) {
	if _, err := fmt.Fprintf(out, "overwrite %s? [y/N] ", path); err != nil {
		return false, errors.WrapIO("prompt", path, err)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errors.WrapIO("prompt", path, err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
