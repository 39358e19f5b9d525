package api

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// DefaultIssueFormat used to print an issue.
const DefaultIssueFormat = "{{.Path}}:{{.Line}}: {{.Message}}"

// Severity of a reported issue.
type Severity string

// Issue severity levels.
const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// Issue is a single over-length line in a checked file.
type Issue struct {
	Severity Severity `json:"severity"`
	Path     string   `json:"path"`
	Line     int      `json:"line"`
	Length   int      `json:"length"`
	Message  string   `json:"message"`
}

// NewIssue returns a new issue. Returns an error if formatTmpl is not a
// valid template for an Issue.
func NewIssue(formatTmpl *template.Template) (*Issue, error) {
	issue := &Issue{
		Line:     1,
		Severity: Warning,
	}
	if formatTmpl == nil {
		return issue, nil
	}
	err := formatTmpl.Execute(io.Discard, issue)
	return issue, err
}

func (i *Issue) String() string {
	return fmt.Sprintf("%s:%d: %s", strings.TrimSpace(i.Path), i.Line, strings.TrimSpace(i.Message))
}

// CompareIssue two Issues and return true if left should sort before right
func CompareIssue(l, r Issue, order []string) bool {
	for _, key := range order {
		switch {
		case key == "path" && l.Path != r.Path:
			return l.Path < r.Path
		case key == "line" && l.Line != r.Line:
			return l.Line < r.Line
		case key == "length" && l.Length != r.Length:
			return l.Length < r.Length
		case key == "severity" && l.Severity != r.Severity:
			return l.Severity < r.Severity
		case key == "message" && l.Message != r.Message:
			return l.Message < r.Message
		}
	}
	return true
}
