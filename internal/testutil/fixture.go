// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"testing"
)

// SampleDescription is a description.xml carrying both stampable elements.
const SampleDescription = `<?xml version="1.0" encoding="UTF-8"?>
<theme>
    <id>OLD</id>
    <title locale="zh_CN"><![CDATA[OLD]]></title>
    <title locale="en_US"><![CDATA[Sample]]></title>
    <author>vlp</author>
</theme>
`

// LockscreenPackage describes an input directory to lay out on disk. Empty
// fields fall back to a complete, valid package.
type LockscreenPackage struct {
	Description string
	// Omit names required entries to leave out ("preview", "description.xml",
	// "lockscreen", "lockscreen/manifest.xml").
	Omit []string
}

// WriteLockscreenPackage creates a lockscreen package under parent/name and
// returns its path.
func WriteLockscreenPackage(t testing.TB, parent, name string, pkg LockscreenPackage) string {
	t.Helper()

	dir := filepath.Join(parent, name)
	MustMkdirAll(t, dir)

	omitted := make(map[string]bool, len(pkg.Omit))
	for _, o := range pkg.Omit {
		omitted[o] = true
	}

	if !omitted["preview"] {
		MustWriteFile(t, filepath.Join(dir, "preview", "preview_0.jpg"), "jpeg-0")
		MustWriteFile(t, filepath.Join(dir, "preview", "preview_1.jpg"), "jpeg-1")
	}
	if !omitted["description.xml"] {
		desc := pkg.Description
		if desc == "" {
			desc = SampleDescription
		}
		MustWriteFile(t, filepath.Join(dir, "description.xml"), desc)
	}
	if !omitted["lockscreen"] {
		MustMkdirAll(t, filepath.Join(dir, "lockscreen"))
		MustWriteFile(t, filepath.Join(dir, "lockscreen", "res", "bg.png"), "png")
		if !omitted["lockscreen/manifest.xml"] {
			MustWriteFile(t, filepath.Join(dir, "lockscreen", "manifest.xml"), "<Lockscreen/>")
		}
	}
	return dir
}
