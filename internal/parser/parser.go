package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/wetator/wetreport/internal/result"
	"github.com/wetator/wetreport/internal/xmlpath"
)

// Path templates driving the state machine. Templates below the test run
// are matched by prefix and suffix because testfile elements nest
// recursively to arbitrary depth.
const (
	pathRoot     = "/wet"
	pathTestCase = pathRoot + "/testcase"
	pathTestRun  = pathTestCase + "/testrun"
	pathTestFile = pathTestRun + "/testfile"
)

// maxParams is the number of positional parameter slots per command.
const maxParams = 4

// Parse consumes one well-formed report stream and returns a tallied Set
// containing the single parsed Suite. Malformed XML and missing required
// attributes are fatal; no partial tree is returned.
func Parse(r io.Reader) (*result.Set, error) {
	p := &parser{
		dec:  xml.NewDecoder(r),
		path: &xmlpath.Path{},
		set:  result.NewSet(""),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	p.set.Tally()
	return p.set, nil
}

// ParseFile parses one report file. The file is closed on every exit path,
// including parse failure.
func ParseFile(path string) (*result.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// parser holds the state of one stream's parse. The entity fields track
// whatever is currently open at each level of the tree; the command fields
// capture the most recently opened command so a failing step can be
// reconstructed when its error element is reached.
type parser struct {
	dec  *xml.Decoder
	path *xmlpath.Path

	set   *result.Set
	suite *result.Suite
	file  *result.TestFile
	runs  []*result.BrowserRun
	run   *result.BrowserRun

	// openFiles is the stack of currently open test file names, innermost
	// last. Pushed on every testfile start, popped on the matching end.
	openFiles []string

	duration time.Duration
	line     int
	command  string
	params   [maxParams]string

	sawElement bool
}

func (p *parser) parse() error {
	for {
		tok, err := p.dec.Token()
		if errors.Is(err, io.EOF) {
			if !p.sawElement {
				return &SyntaxError{Err: io.ErrUnexpectedEOF}
			}
			return nil
		}
		if err != nil {
			return &SyntaxError{Err: err}
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			p.sawElement = true
			if err := p.startElement(tok); err != nil {
				return err
			}
		case xml.EndElement:
			p.endElement()
		}
	}
}

func (p *parser) startElement(el xml.StartElement) error {
	name := el.Name.Local
	p.path.Push(name)

	switch {
	case p.path.Matches(pathRoot):
		p.suite = result.NewSuite()

	case p.path.Matches(pathRoot + "/startTime"):
		text, err := p.text()
		if err != nil {
			return err
		}
		p.suite.Name = text
		p.path.Pop()

	case p.path.Matches(pathRoot + "/executionTime"):
		d, err := p.millis()
		if err != nil {
			return err
		}
		p.suite.Duration = d
		p.path.Pop()

	case p.path.Matches(pathTestCase):
		caseName, err := requireAttr(el, "name")
		if err != nil {
			return err
		}
		fullName := attr(el, "file")
		if fullName == "" {
			fullName = caseName
		}
		p.file = &result.TestFile{Name: caseName, FullName: fullName}
		p.runs = nil

	case p.path.Matches(pathTestRun):
		browser, err := requireAttr(el, "browser")
		if err != nil {
			return err
		}
		p.run = &result.BrowserRun{
			Name:     browser,
			FullName: p.file.Name + "[" + browser + "]",
		}
		p.duration = 0

	case p.path.Matches(pathTestRun + "/error/message"):
		msg, err := p.text()
		if err != nil {
			return err
		}
		if p.run.Failure == nil {
			p.run.Failure = &result.RunError{File: p.file.FullName, Message: msg}
		}
		p.path.Pop()

	case p.path.Matches(pathTestRun + "/ignored"):
		p.run.Skipped = true

	case p.path.EndsWith("/testfile"):
		fileName, err := requireAttr(el, "file")
		if err != nil {
			return err
		}
		p.openFiles = append(p.openFiles, fileName)
		if p.path.Matches(pathTestFile) {
			p.file.FullName = fileName
		}

	case p.path.StartsWith(pathTestRun) && p.path.EndsWith("/testfile/error/message"):
		msg, err := p.text()
		if err != nil {
			return err
		}
		if p.run.Failure == nil {
			p.run.Failure = &result.RunError{File: p.openFile(), Message: msg}
		}
		p.path.Pop()

	case p.path.StartsWith(pathTestFile) && p.path.EndsWith("/command"):
		lineAttr, err := requireAttr(el, "line")
		if err != nil {
			return err
		}
		line, err := strconv.Atoi(lineAttr)
		if err != nil {
			return fmt.Errorf("invalid line attribute %q on <command>: %w", lineAttr, err)
		}
		command, err := requireAttr(el, "name")
		if err != nil {
			return err
		}
		p.line = line
		p.command = command
		p.params = [maxParams]string{}

	case p.path.StartsWith(pathTestFile) && isParam(name) && p.path.EndsWith("/command/"+name):
		text, err := p.text()
		if err != nil {
			return err
		}
		p.params[name[len(name)-1]-'0'] = text
		p.path.Pop()

	case p.path.StartsWith(pathTestFile) && p.path.EndsWith("/command/executionTime"):
		d, err := p.millis()
		if err != nil {
			return err
		}
		p.duration += d
		p.path.Pop()

	case p.path.StartsWith(pathTestFile) && p.path.EndsWith("/command/error/message"):
		return p.stepFailure(result.CauseError)

	case p.path.StartsWith(pathTestFile) && p.path.EndsWith("/command/failure/message"):
		return p.stepFailure(result.CauseFailure)
	}

	return nil
}

// stepFailure reads a command-scoped error or failure message and attaches
// a StepError built from the captured command state. Only the first failure
// encountered per browser run is kept; later ones are read and discarded.
func (p *parser) stepFailure(cause result.Cause) error {
	msg, err := p.text()
	if err != nil {
		return err
	}
	if p.run.Failure == nil {
		var params []string
		for _, param := range p.params {
			if param != "" {
				params = append(params, param)
			}
		}
		p.run.Failure = &result.StepError{
			File:       p.openFile(),
			Line:       p.line,
			Command:    p.command,
			Parameters: params,
			Cause:      cause,
			Message:    msg,
		}
	}
	p.path.Pop()
	return nil
}

func (p *parser) endElement() {
	switch {
	case p.path.EndsWith("/testfile"):
		p.openFiles = p.openFiles[:len(p.openFiles)-1]

	case p.path.Matches(pathTestRun):
		p.run.Duration = p.duration
		p.runs = append(p.runs, p.run)
		p.set.AddRun(p.run)
		p.run = nil

	case p.path.Matches(pathTestCase):
		p.file.Runs = p.runs
		p.suite.Files = append(p.suite.Files, p.file)
		p.runs = nil
		p.file = nil

	case p.path.Matches(pathRoot):
		p.set.Suites = append(p.set.Suites, p.suite)
		p.suite = nil
	}

	p.path.Pop()
}

// text consumes the current element's text content through its end
// element. Callers must pop the path afterwards, since the element is
// logically closed once its text is read. Nested markup inside a text
// element is malformed for this format.
func (p *parser) text() (string, error) {
	var b strings.Builder
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return "", &SyntaxError{Err: err}
		}
		switch tok := tok.(type) {
		case xml.CharData:
			b.Write(tok)
		case xml.EndElement:
			return b.String(), nil
		case xml.StartElement:
			return "", &SyntaxError{
				Err: fmt.Errorf("unexpected element <%s> inside text content of <%s>", tok.Name.Local, p.path),
			}
		}
	}
}

// millis reads the current element's text as a millisecond count.
func (p *parser) millis() (time.Duration, error) {
	text, err := p.text()
	if err != nil {
		return 0, err
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid millisecond value %q in <%s>: %w", text, p.path, err)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// openFile returns the innermost currently open test file name.
func (p *parser) openFile() string {
	if len(p.openFiles) == 0 {
		return ""
	}
	return p.openFiles[len(p.openFiles)-1]
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func requireAttr(el xml.StartElement, name string) (string, error) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, nil
		}
	}
	return "", &MissingAttrError{Element: el.Name.Local, Attr: name}
}

func isParam(name string) bool {
	return len(name) == len("param0") &&
		strings.HasPrefix(name, "param") &&
		name[len(name)-1] >= '0' && name[len(name)-1] <= '3'
}
