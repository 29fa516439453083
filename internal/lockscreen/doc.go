// SPDX-License-Identifier: MPL-2.0

// Package lockscreen knows the shape of a lockscreen theme package: which
// entries an input directory must contain, where the published artifact goes,
// how version numbers look and how description.xml is stamped with one.
package lockscreen
