// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"runtime"
	"strings"
)

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// IsWindows reports whether the program runs on Windows.
func IsWindows() bool { return runtime.GOOS == Windows }

// ExecutableName returns name with the executable suffix of the current OS.
func ExecutableName(name string) string {
	return executableNameFor(runtime.GOOS, name)
}

func executableNameFor(goos, name string) string {
	if goos == Windows {
		return name + ".exe"
	}
	return name
}

var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// IsReservedName reports whether name is a device name Windows refuses as a
// file name, with or without an extension.
func IsReservedName(name string) bool {
	upper := strings.ToUpper(name)
	if idx := strings.IndexByte(upper, '.'); idx != -1 {
		upper = upper[:idx]
	}
	return reservedNames[upper]
}
