// SPDX-License-Identifier: MPL-2.0

// Package platform holds small helpers for OS-specific naming.
package platform
