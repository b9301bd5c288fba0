package result

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError reports a qualified-name lookup miss. It is a normal
// negative result, not a fatal condition.
type NotFoundError struct {
	// Name is the qualified name that did not resolve.
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no result named %q", e.Name)
}

// IsNotFound reports whether err is a NotFoundError.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Resolve looks up an entity by qualified name against the indexes built by
// the last Tally.
//
// The grammar is "file" or "file[browser]". An empty name, or the set's own
// name, resolves to the set itself. A bare file name resolves to that
// TestFile. The bracketed form resolves to the first run with that browser
// name within the file. Any miss returns a NotFoundError.
func (s *Set) Resolve(name string) (Result, error) {
	if name == "" || name == s.Name {
		return s, nil
	}

	fileName := name
	browser := ""
	hasBrowser := false
	if i := strings.IndexByte(name, '['); i >= 0 {
		fileName = name[:i]
		browser = strings.TrimSuffix(name[i+1:], "]")
		hasBrowser = true
	}

	file, ok := s.File(fileName)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	if !hasBrowser {
		return file, nil
	}
	run, ok := file.Run(browser)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return run, nil
}
