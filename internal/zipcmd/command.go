// SPDX-License-Identifier: MPL-2.0

package zipcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/syntax"

	"github.com/vlp-tools/vlp/internal/archive"
)

var errNoFileName = errors.New("file path has no name component")

// compile-time interface check
var _ archive.Backend = (*Command)(nil)

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// Option configures a Command.
	Option func(*Command)

	// Command runs an external zip executable. It implements archive.Backend.
	Command struct {
		path        string
		execCommand ExecCommandFunc
		logger      *log.Logger

		executable func() (string, error)
		lookPath   func(string) (string, error)
	}

	// ToolError reports a non-zero exit of the zip executable. Output holds
	// the tool's standard output verbatim; zip prints its diagnostics there.
	ToolError struct {
		Path   string
		Args   []string
		Code   int
		Output string
		Stderr string
	}
)

// WithExecCommand sets a custom exec command function for testing.
func WithExecCommand(fn ExecCommandFunc) Option {
	return func(c *Command) {
		c.execCommand = fn
	}
}

// WithLogger sets the logger used for debug tracing and resolution warnings.
func WithLogger(l *log.Logger) Option {
	return func(c *Command) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a Command running the executable at path.
func New(path string, opts ...Option) *Command {
	c := &Command{
		path:        path,
		execCommand: exec.CommandContext,
		logger:      log.New(io.Discard),
		executable:  defaultExecutable,
		lookPath:    exec.LookPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns the executable the command runs.
func (c *Command) Path() string { return c.path }

// ArchiveDirectory runs "zip -r <dest> ." inside root, so entry names are
// relative to root.
func (c *Command) ArchiveDirectory(ctx context.Context, dest, root string) error {
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return archive.NewIOError("resolve", dest, err)
	}
	return c.run(ctx, root, "-r", absDest, ".")
}

// ArchiveFile runs "zip <dest> <name>" inside the file's parent directory,
// producing one top-level entry.
func (c *Command) ArchiveFile(ctx context.Context, dest, file string) error {
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return archive.NewIOError("resolve", dest, err)
	}
	absFile, err := filepath.Abs(file)
	if err != nil {
		return archive.NewIOError("resolve", file, err)
	}

	name := filepath.Base(absFile)
	if name == string(filepath.Separator) || name == "." || filepath.Dir(absFile) == absFile {
		return archive.NewInvalidPathError("archive file", file, errNoFileName)
	}
	return c.run(ctx, filepath.Dir(absFile), absDest, name)
}

// run executes the tool in dir and normalizes failures to archive errors.
func (c *Command) run(ctx context.Context, dir string, args ...string) error {
	cmd := c.execCommand(ctx, c.path, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("running zip", "cmd", quoteCommand(c.path, args), "dir", dir)

	err := cmd.Run()
	if stderr.Len() > 0 {
		c.logger.Debug("zip stderr", "output", strings.TrimSpace(stderr.String()))
	}
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return archive.NewIOError("run zip", dir, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return archive.NewIOError("run zip", dir, &ToolError{
			Path:   c.path,
			Args:   args,
			Code:   exitErr.ExitCode(),
			Output: stdout.String(),
			Stderr: stderr.String(),
		})
	}
	return archive.NewIOError("start zip", c.path, err)
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	out := strings.TrimRight(e.Output, "\r\n")
	if out == "" {
		out = strings.TrimRight(e.Stderr, "\r\n")
	}
	if out == "" {
		return fmt.Sprintf("%s exited with status %d", filepath.Base(e.Path), e.Code)
	}
	return fmt.Sprintf("%s exited with status %d: %s", filepath.Base(e.Path), e.Code, out)
}

// quoteCommand renders a shell-safe command line for logs.
func quoteCommand(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, s := range append([]string{name}, args...) {
		q, err := syntax.Quote(s, syntax.LangBash)
		if err != nil {
			q = fmt.Sprintf("%q", s)
		}
		parts = append(parts, q)
	}
	return strings.Join(parts, " ")
}
