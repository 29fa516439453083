// SPDX-License-Identifier: MPL-2.0

// Package inspect lists the content of zip archives, optionally descending
// into archives stored inside them.
package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zip"
)

const (
	// NestedSeparator joins the path of a nested archive with the names
	// inside it: "lockscreen.itz!/preview/a.jpg".
	NestedSeparator = "!/"

	// DefaultMaxNestedSize caps how much of a nested archive is loaded into
	// memory for recursion.
	DefaultMaxNestedSize = 256 << 20
)

var (
	// ErrNotArchive is returned when the file is not a readable zip archive.
	ErrNotArchive = errors.New("not a zip archive")

	zipMagic = []byte("PK\x03\x04")
)

type (
	// Entry describes one member of an archive.
	Entry struct {
		// Path is the full name, nested archives joined by NestedSeparator.
		Path string
		// Name is the member name inside its own archive.
		Name string
		// Depth is 0 for members of the listed file, 1 for members of an
		// archive inside it, and so on.
		Depth    int
		Dir      bool
		Archive  bool
		Size     uint64
		Modified time.Time
	}

	// Options control List.
	Options struct {
		// Recursive descends into members that are zip archives.
		Recursive bool
		// MaxNestedSize skips recursion into larger members. Zero means
		// DefaultMaxNestedSize.
		MaxNestedSize uint64
	}
)

// List returns the members of the zip archive at path in archive order.
func List(path string, opts Options) ([]Entry, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrNotArchive, err)
	}
	defer func() { _ = r.Close() }()

	if opts.MaxNestedSize == 0 {
		opts.MaxNestedSize = DefaultMaxNestedSize
	}
	return walk(&r.Reader, "", 0, opts)
}

func walk(r *zip.Reader, prefix string, depth int, opts Options) ([]Entry, error) {
	var out []Entry
	for _, f := range r.File {
		e := Entry{
			Path:     prefix + f.Name,
			Name:     f.Name,
			Depth:    depth,
			Dir:      f.FileInfo().IsDir(),
			Size:     f.UncompressedSize64,
			Modified: f.Modified,
		}
		if e.Dir {
			out = append(out, e)
			continue
		}

		isArchive, nested, err := openNested(f, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Path, err)
		}
		e.Archive = isArchive
		out = append(out, e)

		if nested == nil {
			continue
		}
		children, err := walk(nested, e.Path+NestedSeparator, depth+1, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}

// openNested reports whether f is itself a zip archive and, when recursion
// is enabled and f is small enough, returns a reader over it.
func openNested(f *zip.File, opts Options) (bool, *zip.Reader, error) {
	if f.UncompressedSize64 < uint64(len(zipMagic)) {
		return false, nil, nil
	}

	rc, err := f.Open()
	if err != nil {
		return false, nil, err
	}
	defer func() { _ = rc.Close() }()

	head := make([]byte, len(zipMagic))
	if _, err := io.ReadFull(rc, head); err != nil {
		return false, nil, err
	}
	if !bytes.Equal(head, zipMagic) {
		return false, nil, nil
	}
	if !opts.Recursive || f.UncompressedSize64 > opts.MaxNestedSize {
		return true, nil, nil
	}

	rest, err := io.ReadAll(rc)
	if err != nil {
		return true, nil, err
	}
	data := append(head, rest...)
	nested, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return true, nil, fmt.Errorf("%w: %w", ErrNotArchive, err)
	}
	return true, nested, nil
}
