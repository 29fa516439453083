// SPDX-License-Identifier: MPL-2.0

package lockscreen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	idOpen     = "<id>"
	idClose    = "</id>"
	titleOpen  = `<title locale="zh_CN"><![CDATA[`
	titleClose = "]]></title>"
)

// ErrTagNotFound is the sentinel wrapped by TagNotFoundError.
var ErrTagNotFound = errors.New("tag not found")

// TagNotFoundError names the element that could not be located.
type TagNotFoundError struct {
	Path string
	Tag  string
}

// Error implements the error interface.
func (e *TagNotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("element %s not found", e.Tag)
	}
	return fmt.Sprintf("%s: element %s not found", e.Path, e.Tag)
}

// Unwrap returns ErrTagNotFound for errors.Is.
func (e *TagNotFoundError) Unwrap() error { return ErrTagNotFound }

// StampDescription replaces the payload of the first <id> element and of the
// first zh_CN CDATA title with number. Both must be present.
func StampDescription(content, number string) (string, error) {
	out, ok := replaceFirst(content, idOpen, idClose, number)
	if !ok {
		return "", &TagNotFoundError{Tag: idOpen + idClose}
	}
	out, ok = replaceFirst(out, titleOpen, titleClose, number)
	if !ok {
		return "", &TagNotFoundError{Tag: titleOpen + titleClose}
	}
	return out, nil
}

// replaceFirst swaps the text between the first open tag and the close tag
// that follows it.
func replaceFirst(content, open, closing, value string) (string, bool) {
	start := strings.Index(content, open)
	if start < 0 {
		return "", false
	}
	payload := start + len(open)
	end := strings.Index(content[payload:], closing)
	if end < 0 {
		return "", false
	}
	return content[:payload] + value + content[payload+end:], true
}

// PatchDescription stamps the description file at path with number. The file
// is replaced atomically and left untouched on any error.
func PatchDescription(path, number string) (err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	updated, err := StampDescription(string(data), number)
	if err != nil {
		var tagErr *TagNotFoundError
		if errors.As(err, &tagErr) {
			tagErr.Path = path
		}
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(updated); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), info.Mode().Perm()); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
