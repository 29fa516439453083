// SPDX-License-Identifier: MPL-2.0

// Package zipcmd adapts the external Info-ZIP "zip" executable to
// archive.Backend and locates that executable on the host.
package zipcmd
