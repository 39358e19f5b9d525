// Package checker scans files matched by a glob pattern and reports
// lines that are longer than a maximum number of bytes.
package checker

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/eZanmoto/linelint/api"
	"github.com/eZanmoto/linelint/util"
)

// Checker reports lines longer than MaxLen bytes.
type Checker struct {
	// MaxLen is the maximum allowed line length in bytes.
	MaxLen int
	// Skip lists path components that exclude a match.
	Skip []string
}

// Check expands pattern and scans every matching file.
//
// The pattern may use ** to match nested directories. Issues and scan
// failures are streamed on the returned channels; both are closed once
// all matches have been processed. A pattern with no matches produces
// no issues and no errors.
func (c *Checker) Check(pattern string) (chan *api.Issue, chan error) {
	issues := make(chan *api.Issue, 1)
	paths, err := c.expand(pattern)
	errch := make(chan error, len(paths)+1)
	if err != nil {
		errch <- err
		close(issues)
		close(errch)
		return issues, errch
	}
	go func() {
		defer close(issues)
		defer close(errch)
		for _, path := range paths {
			if err := c.checkFile(path, issues); err != nil {
				errch <- err
			}
		}
	}()
	return issues, errch
}

// Expand the pattern to the regular files it matches, dropping
// directories and skipped paths.
func (c *Checker) expand(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %s", pattern, err)
	}
	skip := newPathFilter(c.Skip)
	paths := []string{}
	for _, match := range matches {
		if skip(match) {
			continue
		}
		if info, err := os.Stat(match); err == nil && info.IsDir() {
			continue
		}
		paths = append(paths, match)
	}
	for _, path := range paths {
		util.Debug("checking path %s", path)
	}
	return paths, nil
}

// checkFile emits one issue per line of path longer than MaxLen.
//
// Lengths are raw byte counts: a carriage return before the newline
// counts towards the length, the newline itself does not.
func (c *Checker) checkFile(path string, issues chan *api.Issue) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for i, line := range bytes.Split(data, []byte{'\n'}) {
		if len(line) > c.MaxLen {
			issues <- &api.Issue{
				Severity: api.Warning,
				Path:     path,
				Line:     i + 1,
				Length:   len(line),
				Message:  fmt.Sprintf("Length %d", len(line)),
			}
		}
	}
	return nil
}

func newPathFilter(skip []string) func(string) bool {
	filter := map[string]bool{}
	for _, name := range skip {
		filter[name] = true
	}

	return func(path string) bool {
		if filter[path] {
			return true
		}
		for _, part := range strings.Split(filepath.ToSlash(path), "/") {
			if filter[part] {
				return true
			}
		}
		return false
	}
}
