// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

const dirPerm = 0o755

// copyDir copies the contents of src into dst, creating dst if needed.
// Symlinks and other non-regular children are skipped.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return ioError("stat", src, err)
	}

	// Owner write is kept so children can be created inside.
	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()|0o700); err != nil {
		return ioError("create directory", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return ioError("read directory", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info, err := entry.Info()
		if err != nil {
			return ioError("stat", srcPath, err)
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			continue
		case info.IsDir():
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file, keeping its permission bits.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return ioError("open", src, err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return ioError("stat", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return ioError("create", dst, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = ioError("close", dst, closeErr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return ioError("copy", dst, err)
	}
	return nil
}

// CopyFile copies src to dst, creating the parent directory of dst.
func CopyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return ioError("create directory", filepath.Dir(dst), err)
	}
	return copyFile(src, dst)
}

// removeIfExists deletes path, treating a missing file as success.
func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
