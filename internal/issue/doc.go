// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown guides
// for the failures a vlp user can fix on their own.
//
// An ActionableError names the operation and resource that failed and carries
// suggestions. When it also references an Issue, the CLI renders that guide
// with glamour below the error.
package issue
