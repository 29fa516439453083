// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for tests: environment and working
// directory overrides that restore themselves, a controllable clock, and
// builders for lockscreen package fixtures on disk.
package testutil
