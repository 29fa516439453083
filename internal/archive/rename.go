// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// WorkingExt is the extension the archiving tool writes before the result
// is renamed to its final name.
const WorkingExt = ".zip"

// WorkingPath returns dest with its extension replaced by WorkingExt. A name
// made only of a leading dot and text (".hidden") has no extension.
func WorkingPath(dest string) string {
	ext := filepath.Ext(dest)
	if ext == filepath.Base(dest) {
		ext = ""
	}
	return strings.TrimSuffix(dest, ext) + WorkingExt
}

// buildAndRename runs build against the working path of dest and renames the
// result. The working file is removed before building, after a failed build
// and after a failed rename; removal errors on those paths are dropped.
func buildAndRename(ctx context.Context, dest string, build func(context.Context, string) error) error {
	working := WorkingPath(dest)

	// zip updates an existing archive instead of replacing it.
	if err := removeIfExists(working); err != nil {
		return ioError("remove stale archive", working, err)
	}

	if err := build(ctx, working); err != nil {
		_ = removeIfExists(working)
		return err
	}

	if working == dest {
		return nil
	}

	if err := os.Rename(working, dest); err != nil {
		_ = removeIfExists(working)
		return ioError("rename", dest, err)
	}
	return nil
}
