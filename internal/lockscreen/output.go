// SPDX-License-Identifier: MPL-2.0

package lockscreen

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/vlp-tools/vlp/internal/archive"
)

// ArtifactName is the file name of the published archive.
const ArtifactName = "lockscreen"

var errNoParent = errors.New("input has no parent directory")

// ResolveOutputDir returns the absolute directory the artifact is written to:
// output when set, otherwise the parent of input. The directory is created
// when missing.
func ResolveOutputDir(input, output string) (string, error) {
	dir := output
	if dir == "" {
		absInput, err := filepath.Abs(input)
		if err != nil {
			return "", archive.NewIOError("resolve output", input, err)
		}
		dir = filepath.Dir(absInput)
		if dir == absInput {
			return "", archive.NewInvalidPathError("resolve output", input, errNoParent)
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", archive.NewIOError("resolve output", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", archive.NewIOError("create output directory", abs, err)
	}
	return abs, nil
}

// ArtifactPath returns the published artifact path inside outputDir.
func ArtifactPath(outputDir string) string {
	return filepath.Join(outputDir, ArtifactName)
}
