// SPDX-License-Identifier: MPL-2.0

// Package shellreg adds and removes the "pack with vlp" entry of the Windows
// Explorer folder context menu. Other platforms report ErrUnsupported.
package shellreg
