// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package shellreg

// Register reports ErrUnsupported.
func Register(string) error {
	return ErrUnsupported
}

// Unregister reports ErrUnsupported.
func Unregister() error {
	return ErrUnsupported
}
