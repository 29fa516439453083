// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// maxFileSize bounds config.cue before it reaches the CUE compiler.
const maxFileSize = 1 << 20

// checkFileSize rejects config files larger than limit.
func checkFileSize(data []byte, limit int, path string) error {
	if len(data) > limit {
		return fmt.Errorf("%s: file size %d bytes exceeds limit of %d bytes", path, len(data), limit)
	}
	return nil
}

// formatCUEError flattens CUE errors into "<file>: <field.path>: <message>"
// lines. Errors that carry no CUE detail are prefixed with the file only.
func formatCUEError(err error, path string) error {
	if err == nil {
		return nil
	}

	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", path, err)
	}

	lines := make([]string, 0, len(cueErrs))
	for _, e := range cueErrs {
		field := strings.Join(cueerrors.Path(e), ".")
		msg := e.Error()
		if field != "" {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, field), ":"))
			lines = append(lines, field+": "+msg)
			continue
		}
		lines = append(lines, msg)
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", path, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", path, strings.Join(lines, "\n  "))
}
