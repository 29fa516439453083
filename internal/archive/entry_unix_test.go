// SPDX-License-Identifier: MPL-2.0

//go:build unix

package archive

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/vlp-tools/vlp/internal/archive/archivetest"
)

func TestNewEntryClassifiesFIFOAsUnsupported(t *testing.T) {
	t.Parallel()

	fifo := filepath.Join(t.TempDir(), "pipe")
	if err := unix.Mkfifo(fifo, 0o600); err != nil {
		t.Skipf("mkfifo unavailable: %v", err)
	}

	e := mustEntry(t, "", fifo)
	if e.Kind() != KindUnsupported {
		t.Fatalf("Kind() = %v, want %v", e.Kind(), KindUnsupported)
	}

	backend := &archivetest.Backend{}
	for _, entry := range []*Entry{e, mustEntry(t, "", fifo).InPlace()} {
		err := entry.Build(context.Background(), backend, filepath.Join(t.TempDir(), "out.zip"))
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Build(%v) error = %v, want ErrInvalidPath", entry.Placement(), err)
		}
	}
}
