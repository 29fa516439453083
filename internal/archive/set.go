// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"context"
	"errors"
	"slices"
)

var errEmptySet = errors.New("archive set has no entries")

// Set is an ordered group of entries that make up one archive. Order only
// fixes the processing sequence; entries whose positions collide overwrite
// each other in staging, the later one winning.
type Set struct {
	entries []*Entry
}

// NewSet returns a set of the given entries. Nil entries are dropped.
func NewSet(entries ...*Entry) *Set {
	s := &Set{entries: make([]*Entry, 0, len(entries))}
	for _, e := range entries {
		if e != nil {
			s.entries = append(s.entries, e)
		}
	}
	return s
}

// Entries returns a copy of the set's entries in order.
func (s *Set) Entries() []*Entry { return slices.Clone(s.entries) }

// Len returns the number of entries.
func (s *Set) Len() int { return len(s.entries) }

// Build materializes every entry into one shared staging area and archives
// the staging root into dest with a single backend call. Entries are always
// copied, whatever their placement.
func (s *Set) Build(ctx context.Context, backend Backend, dest string) (err error) {
	if len(s.entries) == 0 {
		return invalidPath("build", dest, errEmptySet)
	}
	if err := ctx.Err(); err != nil {
		return ioError("build", dest, err)
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

	for _, e := range s.entries {
		if err := e.MaterializeInto(area.Root()); err != nil {
			return err
		}
	}

	if err := backend.ArchiveDirectory(ctx, dest, area.Root()); err != nil {
		return ioError("archive", dest, err)
	}
	return nil
}

// BuildAndRename builds into the working path of dest and renames the
// result to dest, with the same cleanup guarantees as Entry.BuildAndRename.
func (s *Set) BuildAndRename(ctx context.Context, backend Backend, dest string) error {
	return buildAndRename(ctx, dest, func(ctx context.Context, working string) error {
		return s.Build(ctx, backend, working)
	})
}
