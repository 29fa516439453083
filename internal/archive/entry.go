// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/vlp-tools/vlp/pkg/platform"
)

var (
	errNoBasename      = errors.New("path has no file name component")
	errUnsupportedKind = errors.New("not a regular file or directory")
	errBadPosition     = errors.New("position must be a relative path inside the archive")
	errReservedName    = errors.New("position uses a reserved device name")
)

// Entry is a single file or directory destined for a position inside an
// archive. Create entries with NewEntry; the zero value is not usable.
type Entry struct {
	position  string
	source    string
	kind      Kind
	placement Placement
}

// NewEntry inspects source and returns an entry that will appear at position
// inside the archive. An empty position means "the basename of source".
// Symlinks are followed; the kind is fixed at construction time.
func NewEntry(position, source string) (*Entry, error) {
	abs, err := filepath.Abs(source)
	if err != nil {
		return nil, ioError("resolve", source, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, ioError("stat", abs, err)
	}

	e := &Entry{
		position: position,
		source:   abs,
		kind:     kindOf(info.Mode()),
	}
	if _, err := e.relativeTarget(); err != nil {
		return nil, err
	}
	return e, nil
}

// InPlace switches the entry to PackInPlace and returns it. The switch is
// one-way.
func (e *Entry) InPlace() *Entry {
	e.placement = PackInPlace
	return e
}

// Position returns the logical position, or "" when the basename is used.
func (e *Entry) Position() string { return e.position }

// Source returns the absolute source path.
func (e *Entry) Source() string { return e.source }

// Kind returns the file classification captured at construction.
func (e *Entry) Kind() Kind { return e.kind }

// Placement returns how the entry reaches its position.
func (e *Entry) Placement() Placement { return e.placement }

// TargetPath resolves where the entry lands under root.
func (e *Entry) TargetPath(root string) (string, error) {
	rel, err := e.relativeTarget()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, rel), nil
}

// relativeTarget returns the entry's position as a clean OS path relative to
// any root.
func (e *Entry) relativeTarget() (string, error) {
	if e.position == "" {
		base, ok := baseName(e.source)
		if !ok {
			return "", invalidPath("resolve position", e.source, errNoBasename)
		}
		return base, nil
	}

	pos := filepath.FromSlash(e.position)
	if filepath.IsAbs(pos) || filepath.VolumeName(pos) != "" || strings.HasPrefix(e.position, "/") {
		return "", invalidPath("resolve position", e.position, errBadPosition)
	}
	pos = filepath.Clean(pos)
	if pos == "." || pos == ".." || strings.HasPrefix(pos, ".."+string(filepath.Separator)) {
		return "", invalidPath("resolve position", e.position, errBadPosition)
	}
	if platform.IsWindows() {
		for _, seg := range strings.Split(pos, string(filepath.Separator)) {
			if platform.IsReservedName(seg) {
				return "", invalidPath("resolve position", e.position, errReservedName)
			}
		}
	}
	return pos, nil
}

// MaterializeInto copies the entry to its position under root. Directories
// contribute their contents, so a directory at position "x" yields "x/<child>".
// Files already present at the target are overwritten.
func (e *Entry) MaterializeInto(root string) error {
	target, err := e.TargetPath(root)
	if err != nil {
		return err
	}

	switch e.kind {
	case KindRegularFile:
		if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
			return ioError("create directory", filepath.Dir(target), err)
		}
		return copyFile(e.source, target)
	case KindDirectory:
		return copyDir(e.source, target)
	default:
		return invalidPath("materialize", e.source, errUnsupportedKind)
	}
}

// Build writes an archive containing only this entry to dest.
func (e *Entry) Build(ctx context.Context, backend Backend, dest string) (err error) {
	if e.kind == KindUnsupported {
		return invalidPath("build", e.source, errUnsupportedKind)
	}
	if err := ctx.Err(); err != nil {
		return ioError("build", dest, err)
	}

	if e.placement == PackInPlace {
		if e.kind == KindDirectory {
			err = backend.ArchiveDirectory(ctx, dest, e.source)
		} else {
			err = backend.ArchiveFile(ctx, dest, e.source)
		}
		if err != nil {
			return ioError("archive", dest, err)
		}
		return nil
	}

	area, err := NewStagingArea()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := area.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := e.MaterializeInto(area.Root()); err != nil {
		return err
	}
	if err := backend.ArchiveDirectory(ctx, dest, area.Root()); err != nil {
		return ioError("archive", dest, err)
	}
	return nil
}

// BuildAndRename builds into the working path of dest and renames the
// result to dest. No file remains at the working path when it returns.
func (e *Entry) BuildAndRename(ctx context.Context, backend Backend, dest string) error {
	return buildAndRename(ctx, dest, func(ctx context.Context, working string) error {
		return e.Build(ctx, backend, working)
	})
}

// baseName returns the final path component, reporting false for roots.
func baseName(p string) (string, bool) {
	b := filepath.Base(p)
	switch b {
	case ".", "..", string(filepath.Separator):
		return "", false
	}
	if filepath.VolumeName(p) == p {
		return "", false
	}
	return b, true
}

// joinUnder joins elem onto root.
func joinUnder(root string, elem ...string) string {
	return filepath.Join(append([]string{root}, elem...)...)
}
