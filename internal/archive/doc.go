// SPDX-License-Identifier: MPL-2.0

// Package archive models the content of an archive before it is built.
//
// An Entry is one file or directory destined for a position inside an
// archive; a Set groups entries that land in the same archive. Building
// either one lays the entries out inside a private StagingArea and then
// hands the staging root to a Backend, which turns a directory (or a single
// file) into an archive file. The package never encodes archives itself.
//
// Every failure leaving this package is an *Error wrapping exactly one of
// ErrInvalidPath or ErrIO.
package archive
