// SPDX-License-Identifier: MPL-2.0

//go:build windows

package shellreg

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// Register writes the folder context menu entry for exe.
func Register(exe string) error {
	entry := NewEntry(exe)

	parent, err := registry.OpenKey(registry.CLASSES_ROOT, ParentKey, registry.CREATE_SUB_KEY)
	if err != nil {
		return fmt.Errorf("open HKCR\\%s: %w", ParentKey, err)
	}
	defer parent.Close()

	verb, _, err := registry.CreateKey(parent, KeyName, registry.SET_VALUE|registry.CREATE_SUB_KEY)
	if err != nil {
		return fmt.Errorf("create %s key: %w", KeyName, err)
	}
	defer verb.Close()

	if err := verb.SetStringValue("", entry.Label); err != nil {
		return fmt.Errorf("set label: %w", err)
	}
	if err := verb.SetStringValue("Icon", entry.Icon); err != nil {
		return fmt.Errorf("set icon: %w", err)
	}

	command, _, err := registry.CreateKey(verb, "command", registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create command key: %w", err)
	}
	defer command.Close()

	if err := command.SetStringValue("", entry.Command); err != nil {
		return fmt.Errorf("set command: %w", err)
	}
	return nil
}

// Unregister removes the entry. A missing entry is not an error.
func Unregister() error {
	parent, err := registry.OpenKey(registry.CLASSES_ROOT, ParentKey, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return fmt.Errorf("open HKCR\\%s: %w", ParentKey, err)
	}
	defer parent.Close()

	// DeleteKey refuses keys that still have subkeys.
	for _, path := range []string{KeyName + `\command`, KeyName} {
		if err := registry.DeleteKey(parent, path); err != nil && !errors.Is(err, registry.ErrNotExist) {
			return fmt.Errorf("delete %s: %w", path, err)
		}
	}
	return nil
}
