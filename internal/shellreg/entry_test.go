// SPDX-License-Identifier: MPL-2.0

package shellreg

import "testing"

func TestNewEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		exe     string
		command string
	}{
		{`C:\Tools\vlp.exe`, `"C:\Tools\vlp.exe" --pause "%1"`},
		{`C:\Program Files\vlp\vlp.exe`, `"C:\Program Files\vlp\vlp.exe" --pause "%1"`},
	}

	for _, tt := range tests {
		entry := NewEntry(tt.exe)
		if entry.Command != tt.command {
			t.Errorf("NewEntry(%q).Command = %q, want %q", tt.exe, entry.Command, tt.command)
		}
		if entry.Icon != tt.exe {
			t.Errorf("NewEntry(%q).Icon = %q", tt.exe, entry.Icon)
		}
		if entry.Label != MenuLabel {
			t.Errorf("NewEntry(%q).Label = %q", tt.exe, entry.Label)
		}
	}
}
