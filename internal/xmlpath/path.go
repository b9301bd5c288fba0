// Package xmlpath tracks the element nesting of a streaming XML parse.
//
// A Path is a stack of element names mirroring the decoder's position in the
// document. Callers push on every start element and pop on every end element
// (or early, after consuming a leaf element's text). Template queries compare
// against paths written in the familiar slash form, e.g. "/wet/testcase",
// and always match on whole segments, never on raw substrings.
package xmlpath

import "strings"

// Path is the current element nesting, outermost element first.
//
// Path is not safe for concurrent use; each parse owns its own Path.
type Path struct {
	segments []string
}

// Push appends an element name to the path.
func (p *Path) Push(name string) {
	p.segments = append(p.segments, name)
}

// Pop removes and returns the innermost element name.
//
// Popping an empty path is a programming error in the caller's push/pop
// pairing and panics rather than returning a recoverable error.
func (p *Path) Pop() string {
	if len(p.segments) == 0 {
		panic("xmlpath: pop on empty path")
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	return last
}

// Len returns the current nesting depth.
func (p *Path) Len() int {
	return len(p.segments)
}

// Matches reports whether the whole path equals the template.
func (p *Path) Matches(template string) bool {
	want := split(template)
	if len(want) != len(p.segments) {
		return false
	}
	return equalTail(p.segments, want)
}

// StartsWith reports whether the path begins with the template's segments.
func (p *Path) StartsWith(template string) bool {
	want := split(template)
	if len(want) > len(p.segments) {
		return false
	}
	for i, s := range want {
		if p.segments[i] != s {
			return false
		}
	}
	return true
}

// EndsWith reports whether the path ends with the template's segments.
func (p *Path) EndsWith(template string) bool {
	want := split(template)
	if len(want) > len(p.segments) {
		return false
	}
	return equalTail(p.segments, want)
}

// String renders the path in slash form, e.g. "/wet/testcase/testrun".
func (p *Path) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	return "/" + strings.Join(p.segments, "/")
}

func split(template string) []string {
	return strings.Split(strings.TrimPrefix(template, "/"), "/")
}

// equalTail compares want against the last len(want) segments of got.
func equalTail(got, want []string) bool {
	offset := len(got) - len(want)
	for i, s := range want {
		if got[offset+i] != s {
			return false
		}
	}
	return true
}
