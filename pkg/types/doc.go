// SPDX-License-Identifier: MPL-2.0

// Package types holds small value types shared by the vlp command and its
// internal packages.
package types
