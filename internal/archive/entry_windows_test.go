// SPDX-License-Identifier: MPL-2.0

//go:build windows

package archive

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vlp-tools/vlp/internal/testutil"
)

func TestNewEntryRejectsReservedNames(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "file.txt")
	testutil.MustWriteFile(t, src, "x")

	for _, pos := range []string{"CON", "sub/nul.txt", "aux/file.txt"} {
		if _, err := NewEntry(pos, src); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("NewEntry(%q) error = %v, want ErrInvalidPath", pos, err)
		}
	}
}
