// SPDX-License-Identifier: MPL-2.0

package zipcmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/vlp-tools/vlp/internal/archive"
	"github.com/vlp-tools/vlp/pkg/platform"
)

// ErrNotFound is returned by Resolve when no zip executable can be located.
var ErrNotFound = errors.New("zip executable not found")

// BinaryName is the file name of the zip executable on the current OS.
var BinaryName = platform.ExecutableName("zip")

// WithExecutable overrides how the running program's path is determined.
func WithExecutable(fn func() (string, error)) Option {
	return func(c *Command) {
		c.executable = fn
	}
}

// WithLookPath overrides the PATH search.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(c *Command) {
		c.lookPath = fn
	}
}

// Resolve locates the zip executable and returns a Command for it. It tries,
// in order: explicit (when set and present on disk), a zip binary next to the
// running program, then PATH.
func Resolve(explicit string, opts ...Option) (*Command, error) {
	c := New("", opts...)

	if explicit != "" {
		if isFile(explicit) {
			c.path = explicit
			c.logger.Debug("using configured zip", "path", explicit)
			return c, nil
		}
		c.logger.Warn("configured zip not found, probing defaults", "path", explicit)
	}

	if exe, err := c.executable(); err == nil {
		beside := filepath.Join(filepath.Dir(exe), BinaryName)
		if isFile(beside) {
			c.path = beside
			c.logger.Debug("using zip next to executable", "path", beside)
			return c, nil
		}
	}

	if found, err := c.lookPath("zip"); err == nil {
		c.path = found
		c.logger.Debug("using zip from PATH", "path", found)
		return c, nil
	}

	return nil, archive.NewIOError("resolve", BinaryName, ErrNotFound)
}

func defaultExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved, nil
	}
	return exe, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
