// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"fmt"
	"io/fs"
)

const (
	// KindUnsupported covers everything that is neither a regular file nor a
	// directory: devices, sockets, named pipes.
	KindUnsupported Kind = iota
	// KindRegularFile is a plain file.
	KindRegularFile
	// KindDirectory is a directory.
	KindDirectory
)

const (
	// CopyIntoStaging duplicates the entry into a staging area at its
	// position before archiving. It is the default.
	CopyIntoStaging Placement = iota
	// PackInPlace hands the source path straight to the backend. Only valid
	// when the entry is the sole content of the archive.
	PackInPlace
)

type (
	// Kind is the file classification of an entry's source.
	Kind int

	// Placement controls how an entry reaches its position in the archive.
	Placement int
)

// kindOf classifies file metadata.
func kindOf(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindRegularFile
	case mode.IsDir():
		return KindDirectory
	default:
		return KindUnsupported
	}
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindRegularFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// String returns the placement name.
func (p Placement) String() string {
	switch p {
	case CopyIntoStaging:
		return "copy"
	case PackInPlace:
		return "in-place"
	default:
		return fmt.Sprintf("Placement(%d)", int(p))
	}
}
