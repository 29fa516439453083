// SPDX-License-Identifier: MPL-2.0

package lockscreen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vlp-tools/vlp/internal/archive"
)

const (
	// PreviewDir holds the preview images shipped next to the theme.
	PreviewDir = "preview"
	// DescriptionFile is the metadata file stamped with the version number.
	DescriptionFile = "description.xml"
	// LockscreenDir is the theme payload packed into the inner archive.
	LockscreenDir = "lockscreen"
	// ManifestFile is the theme manifest inside LockscreenDir.
	ManifestFile = "lockscreen/manifest.xml"
)

var (
	// ErrMissingEntry is the sentinel wrapped by MissingEntryError.
	ErrMissingEntry = errors.New("missing required entry")

	errNotDirectory = errors.New("not a directory")
)

// RequiredEntries lists the entries an input directory must contain, in the
// order they are checked.
var RequiredEntries = []string{PreviewDir, DescriptionFile, LockscreenDir, ManifestFile}

// MissingEntryError reports the first required entry absent from an input
// directory. It matches both ErrMissingEntry and archive.ErrInvalidPath.
type MissingEntryError struct {
	Input string
	Entry string
}

// Error implements the error interface.
func (e *MissingEntryError) Error() string {
	return fmt.Sprintf("%s: missing required entry %q", e.Input, e.Entry)
}

// Unwrap returns the sentinels for errors.Is.
func (e *MissingEntryError) Unwrap() []error {
	return []error{ErrMissingEntry, archive.ErrInvalidPath}
}

// ValidateInput checks that dir is a directory holding every entry of
// RequiredEntries.
func ValidateInput(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return archive.NewInvalidPathError("validate input", dir, err)
		}
		return archive.NewIOError("validate input", dir, err)
	}
	if !info.IsDir() {
		return archive.NewInvalidPathError("validate input", dir, errNotDirectory)
	}

	for _, entry := range RequiredEntries {
		path := filepath.Join(dir, filepath.FromSlash(entry))
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return &MissingEntryError{Input: dir, Entry: entry}
			}
			return archive.NewIOError("validate input", path, err)
		}
	}
	return nil
}
