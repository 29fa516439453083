// SPDX-License-Identifier: MPL-2.0

package lockscreen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vlp-tools/vlp/internal/archive"
	"github.com/vlp-tools/vlp/internal/testutil"
)

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		omit      []string
		wantEntry string
	}{
		{name: "complete package"},
		{name: "no preview", omit: []string{"preview"}, wantEntry: "preview"},
		{name: "no description", omit: []string{"description.xml"}, wantEntry: "description.xml"},
		{name: "no lockscreen", omit: []string{"lockscreen"}, wantEntry: "lockscreen"},
		{name: "no manifest", omit: []string{"lockscreen/manifest.xml"}, wantEntry: "lockscreen/manifest.xml"},
		{name: "first missing is reported", omit: []string{"lockscreen", "description.xml"}, wantEntry: "description.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := testutil.WriteLockscreenPackage(t, t.TempDir(), "theme", testutil.LockscreenPackage{Omit: tt.omit})

			err := ValidateInput(dir)
			if tt.wantEntry == "" {
				if err != nil {
					t.Fatalf("ValidateInput() = %v, want nil", err)
				}
				return
			}

			var missing *MissingEntryError
			if !errors.As(err, &missing) {
				t.Fatalf("ValidateInput() = %v, want *MissingEntryError", err)
			}
			if missing.Entry != tt.wantEntry {
				t.Errorf("Entry = %q, want %q", missing.Entry, tt.wantEntry)
			}
			if !errors.Is(err, ErrMissingEntry) || !errors.Is(err, archive.ErrInvalidPath) {
				t.Errorf("ValidateInput() = %v, want ErrMissingEntry and ErrInvalidPath", err)
			}
		})
	}
}

func TestValidateInputNotADirectory(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	file := filepath.Join(tmp, "theme.zip")
	testutil.MustWriteFile(t, file, "zip")

	for _, path := range []string{file, filepath.Join(tmp, "absent")} {
		if err := ValidateInput(path); !errors.Is(err, archive.ErrInvalidPath) {
			t.Errorf("ValidateInput(%q) = %v, want ErrInvalidPath", path, err)
		}
	}
}

func TestResolveOutputDir(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	input := filepath.Join(tmp, "themes", "night")
	testutil.MustMkdirAll(t, input)

	t.Run("defaults to parent of input", func(t *testing.T) {
		t.Parallel()
		got, err := ResolveOutputDir(input, "")
		if err != nil {
			t.Fatalf("ResolveOutputDir() failed: %v", err)
		}
		if want := filepath.Join(tmp, "themes"); got != want {
			t.Errorf("ResolveOutputDir() = %q, want %q", got, want)
		}
	})

	t.Run("explicit output is created", func(t *testing.T) {
		t.Parallel()
		out := filepath.Join(tmp, "dist", "nested")
		got, err := ResolveOutputDir(input, out)
		if err != nil {
			t.Fatalf("ResolveOutputDir() failed: %v", err)
		}
		if got != out {
			t.Errorf("ResolveOutputDir() = %q, want %q", got, out)
		}
		if info, err := os.Stat(out); err != nil || !info.IsDir() {
			t.Errorf("output directory not created: %v", err)
		}
	})

	t.Run("root input has no parent", func(t *testing.T) {
		t.Parallel()
		root := filepath.VolumeName(tmp) + string(filepath.Separator)
		if _, err := ResolveOutputDir(root, ""); !errors.Is(err, archive.ErrInvalidPath) {
			t.Errorf("ResolveOutputDir(%q) = %v, want ErrInvalidPath", root, err)
		}
	})

	t.Run("artifact path", func(t *testing.T) {
		t.Parallel()
		if got, want := ArtifactPath(tmp), filepath.Join(tmp, "lockscreen"); got != want {
			t.Errorf("ArtifactPath() = %q, want %q", got, want)
		}
	})
}
