// SPDX-License-Identifier: MPL-2.0

// Package tui draws the progress spinner shown while a lockscreen is packed.
//
// The spinner is a Bubble Tea program wrapping a bubbles spinner. It only
// renders; the work runs in its own goroutine and reports status lines back
// through a callback.
package tui
