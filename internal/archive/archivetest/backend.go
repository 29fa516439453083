// SPDX-License-Identifier: MPL-2.0

// Package archivetest provides an in-process archive.Backend for tests. It
// writes real zip files and records every call, so pipelines can be tested
// without an external zip executable.
package archivetest

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zip"
)

const (
	// MethodDirectory marks an ArchiveDirectory call.
	MethodDirectory Method = "directory"
	// MethodFile marks an ArchiveFile call.
	MethodFile Method = "file"
)

type (
	// Method names the backend operation recorded in a Call.
	Method string

	// Call is one recorded backend invocation.
	Call struct {
		Method Method
		Dest   string
		Source string
	}

	// Backend implements archive.Backend with klauspost/compress/zip.
	// The zero value is ready to use.
	Backend struct {
		// Fail, when set, is consulted before each call. A non-nil result is
		// returned instead of writing the archive.
		Fail func(Call) error
		// Partial makes failing calls leave a truncated file at Dest, the way
		// an interrupted archiver would.
		Partial bool

		mu    sync.Mutex
		calls []Call
	}
)

// Calls returns the recorded invocations in order.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Call, len(b.calls))
	copy(out, b.calls)
	return out
}

// ArchiveDirectory writes every file below root into dest, named relative to
// root. Directories get their own entries, as zip -r does.
func (b *Backend) ArchiveDirectory(ctx context.Context, dest, root string) error {
	if err := b.record(ctx, Call{Method: MethodDirectory, Dest: dest, Source: root}); err != nil {
		return err
	}
	return writeZip(dest, func(zw *zip.Writer) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == root {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			return addEntry(zw, path, filepath.ToSlash(rel))
		})
	})
}

// ArchiveFile writes file into dest as a single top-level entry.
func (b *Backend) ArchiveFile(ctx context.Context, dest, file string) error {
	if err := b.record(ctx, Call{Method: MethodFile, Dest: dest, Source: file}); err != nil {
		return err
	}
	return writeZip(dest, func(zw *zip.Writer) error {
		return addEntry(zw, file, filepath.Base(file))
	})
}

func (b *Backend) record(ctx context.Context, c Call) error {
	b.mu.Lock()
	b.calls = append(b.calls, c)
	fail := b.Fail
	b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if fail == nil {
		return nil
	}
	if err := fail(c); err != nil {
		if b.Partial {
			_ = os.WriteFile(c.Dest, []byte("PK\x03\x04"), 0o644)
		}
		return err
	}
	return nil
}

// writeZip creates dest and fills it through fill.
func writeZip(dest string, fill func(*zip.Writer) error) (err error) {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	zw := zip.NewWriter(f)
	if err := fill(zw); err != nil {
		return errors.Join(err, zw.Close())
	}
	return zw.Close()
}

// addEntry appends the file or directory at path under name.
func addEntry(zw *zip.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	if info.IsDir() {
		header.Name += "/"
		_, err := zw.CreateHeader(header)
		return err
	}
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()
	_, err = io.Copy(w, src)
	return err
}
