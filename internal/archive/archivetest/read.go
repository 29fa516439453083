// SPDX-License-Identifier: MPL-2.0

package archivetest

import (
	"fmt"
	"io"
	"slices"

	"github.com/klauspost/compress/zip"
)

// Names returns the sorted entry names of the zip file at path.
func Names(path string) ([]string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	slices.Sort(names)
	return names, nil
}

// ReadEntry returns the content of the named entry of the zip file at path.
func ReadEntry(path, name string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s: no entry %q", path, name)
}
