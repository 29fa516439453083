// SPDX-License-Identifier: MPL-2.0

package zipcmd

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/vlp-tools/vlp/internal/archive"
	"github.com/vlp-tools/vlp/internal/archive/archivetest"
)

func TestArchiveDirectoryArgs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out.zip")
	rec := &mockCommandRecorder{}
	c := New("/usr/bin/zip", WithExecCommand(rec.CommandFunc(t)))

	if err := c.ArchiveDirectory(context.Background(), dest, root); err != nil {
		t.Fatalf("ArchiveDirectory() failed: %v", err)
	}

	inv := rec.Last(t)
	if inv.Name != "/usr/bin/zip" {
		t.Errorf("name = %q, want /usr/bin/zip", inv.Name)
	}
	if want := []string{"-r", dest, "."}; !slices.Equal(inv.Args, want) {
		t.Errorf("args = %v, want %v", inv.Args, want)
	}
	if inv.Cmd.Dir != root {
		t.Errorf("dir = %q, want %q", inv.Cmd.Dir, root)
	}
}

func TestArchiveFileArgs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "lockscreen.itz")
	dest := filepath.Join(t.TempDir(), "lockscreen.zip")
	rec := &mockCommandRecorder{}
	c := New("zip", WithExecCommand(rec.CommandFunc(t)))

	if err := c.ArchiveFile(context.Background(), dest, file); err != nil {
		t.Fatalf("ArchiveFile() failed: %v", err)
	}

	inv := rec.Last(t)
	if want := []string{dest, "lockscreen.itz"}; !slices.Equal(inv.Args, want) {
		t.Errorf("args = %v, want %v", inv.Args, want)
	}
	if inv.Cmd.Dir != dir {
		t.Errorf("dir = %q, want %q", inv.Cmd.Dir, dir)
	}
}

func TestRelativeDestinationIsAbsolutized(t *testing.T) {
	t.Parallel()

	rec := &mockCommandRecorder{}
	c := New("zip", WithExecCommand(rec.CommandFunc(t)))

	if err := c.ArchiveDirectory(context.Background(), "rel.zip", t.TempDir()); err != nil {
		t.Fatalf("ArchiveDirectory() failed: %v", err)
	}
	if got := rec.Last(t).Args[1]; !filepath.IsAbs(got) {
		t.Errorf("dest arg = %q, want absolute path", got)
	}
}

func TestArchiveFileWithoutName(t *testing.T) {
	t.Parallel()

	rec := &mockCommandRecorder{}
	c := New("zip", WithExecCommand(rec.CommandFunc(t)))

	err := c.ArchiveFile(context.Background(), filepath.Join(t.TempDir(), "o.zip"), string(filepath.Separator))
	if !errors.Is(err, archive.ErrInvalidPath) {
		t.Fatalf("ArchiveFile() error = %v, want ErrInvalidPath", err)
	}
}

func TestNonZeroExitCarriesStdout(t *testing.T) {
	t.Parallel()

	rec := &mockCommandRecorder{
		ExitCode: 12,
		Stdout:   "\nzip error: Nothing to do! (out.zip)\n",
		Stderr:   "ignored diagnostics",
	}
	c := New("zip", WithExecCommand(rec.CommandFunc(t)))

	err := c.ArchiveDirectory(context.Background(), filepath.Join(t.TempDir(), "out.zip"), t.TempDir())
	if !errors.Is(err, archive.ErrIO) {
		t.Fatalf("error = %v, want ErrIO", err)
	}

	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("error = %v, want *ToolError in chain", err)
	}
	if toolErr.Code != 12 {
		t.Errorf("Code = %d, want 12", toolErr.Code)
	}
	if toolErr.Output != rec.Stdout {
		t.Errorf("Output = %q, want %q verbatim", toolErr.Output, rec.Stdout)
	}
	if !strings.Contains(err.Error(), "zip error: Nothing to do!") {
		t.Errorf("Error() = %q, want tool output included", err.Error())
	}
}

func TestStartFailure(t *testing.T) {
	t.Parallel()

	c := New(filepath.Join(t.TempDir(), "missing-zip"))
	err := c.ArchiveDirectory(context.Background(), filepath.Join(t.TempDir(), "out.zip"), t.TempDir())
	if !errors.Is(err, archive.ErrIO) {
		t.Fatalf("error = %v, want ErrIO", err)
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		t.Errorf("start failure reported as tool exit: %v", toolErr)
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &mockCommandRecorder{}
	c := New("zip", WithExecCommand(rec.CommandFunc(t)))

	err := c.ArchiveDirectory(ctx, filepath.Join(t.TempDir(), "out.zip"), t.TempDir())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestQuoteCommand(t *testing.T) {
	t.Parallel()

	got := quoteCommand("/opt/my zip/zip", []string{"-r", "/tmp/out.zip", "."})
	if !strings.Contains(got, "'/opt/my zip/zip'") {
		t.Errorf("quoteCommand() = %q, want the spaced path single-quoted", got)
	}
	if !strings.HasSuffix(got, "/tmp/out.zip .") {
		t.Errorf("quoteCommand() = %q, want plain arguments unquoted", got)
	}
}

func TestRealZip(t *testing.T) {
	t.Parallel()

	zipPath, err := exec.LookPath("zip")
	if err != nil {
		t.Skip("zip not installed")
	}

	root := t.TempDir()
	for _, rel := range []string{"a.txt", filepath.Join("sub", "b.txt")} {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(rel), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	c := New(zipPath)
	dest := filepath.Join(t.TempDir(), "dir.zip")
	if err := c.ArchiveDirectory(context.Background(), dest, root); err != nil {
		t.Fatalf("ArchiveDirectory() failed: %v", err)
	}
	names, err := archivetest.Names(dest)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a.txt", "sub/", "sub/b.txt"}; !slices.Equal(names, want) {
		t.Errorf("entries = %v, want %v", names, want)
	}

	single := filepath.Join(t.TempDir(), "file.zip")
	if err := c.ArchiveFile(context.Background(), single, filepath.Join(root, "sub", "b.txt")); err != nil {
		t.Fatalf("ArchiveFile() failed: %v", err)
	}
	names, err = archivetest.Names(single)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"b.txt"}; !slices.Equal(names, want) {
		t.Errorf("entries = %v, want %v", names, want)
	}
}
