// SPDX-License-Identifier: MPL-2.0

package archive

import "context"

// Backend turns on-disk content into archive files.
//
// ArchiveDirectory archives the contents of root into dest, with entry names
// relative to root. ArchiveFile archives a single file into dest as one
// top-level entry named after the file. Both block until the archive is fully
// written or the operation failed.
type Backend interface {
	ArchiveDirectory(ctx context.Context, dest, root string) error
	ArchiveFile(ctx context.Context, dest, file string) error
}
