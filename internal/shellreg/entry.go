// SPDX-License-Identifier: MPL-2.0

package shellreg

import (
	"errors"
	"fmt"
)

const (
	// KeyName is the subkey created under HKCR\Directory\shell.
	KeyName = "vlp"
	// MenuLabel is the context menu text.
	MenuLabel = "打包vivo锁屏包"
	// ParentKey is the registry path, relative to HKEY_CLASSES_ROOT, holding folder verbs.
	ParentKey = `Directory\shell`
)

// ErrUnsupported is returned on platforms without an Explorer context menu.
var ErrUnsupported = errors.New("shell registration is not supported on this platform")

// Entry is the registry content written for the menu item.
type Entry struct {
	// Label is the default value of the verb key.
	Label string
	// Icon is the "Icon" value, the executable itself.
	Icon string
	// Command is the default value of the "command" subkey.
	Command string
}

// NewEntry describes the menu item launching exe on the clicked folder. The
// command asks vlp to pause before exiting so its console window stays open.
func NewEntry(exe string) Entry {
	return Entry{
		Label:   MenuLabel,
		Icon:    exe,
		Command: fmt.Sprintf(`"%s" --pause "%%1"`, exe),
	}
}
