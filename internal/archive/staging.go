// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"os"
)

const stagingPattern = "vlp-staging-*"

// StagingArea is a temporary directory owned by a single build. Callers must
// defer Close right after a successful NewStagingArea.
type StagingArea struct {
	root string
}

// NewStagingArea creates a fresh, empty staging directory under the system
// temp dir.
func NewStagingArea() (*StagingArea, error) {
	root, err := os.MkdirTemp("", stagingPattern)
	if err != nil {
		return nil, ioError("create staging area", os.TempDir(), err)
	}
	return &StagingArea{root: root}, nil
}

// Root returns the absolute path of the staging directory.
func (a *StagingArea) Root() string { return a.root }

// Path joins elem onto the staging root.
func (a *StagingArea) Path(elem ...string) string {
	return joinUnder(a.root, elem...)
}

// Close removes the staging directory and everything in it. It is safe to
// call more than once.
func (a *StagingArea) Close() error {
	if a == nil || a.root == "" {
		return nil
	}
	root := a.root
	a.root = ""
	if err := os.RemoveAll(root); err != nil {
		return ioError("remove staging area", root, err)
	}
	return nil
}
