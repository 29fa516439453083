// SPDX-License-Identifier: MPL-2.0

// Package pipeline turns a validated lockscreen package directory into the
// published nested archive.
//
// The transformation is fixed: pack the lockscreen/ tree in place, stamp a
// copy of description.xml with a fresh version number, assemble the .itz
// container from the inner archive, the previews and the stamped metadata,
// then wrap the container once more under the extensionless artifact name.
// All intermediates live in two staging areas that are removed before Run
// returns.
package pipeline
