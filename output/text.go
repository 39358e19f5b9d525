// Package output renders line-length issues as text, JSON or
// checkstyle XML.
package output

import (
	"fmt"
	"io"
	"text/template"

	"github.com/eZanmoto/linelint/api"
)

// Text writes one line per issue to w. A nil template renders the
// default "<path>:<line>: Length <n>" form; a non-nil template should
// already have been validated with api.NewIssue.
func Text(w io.Writer, template *template.Template, issues chan *api.Issue) error {
	for issue := range issues {
		if template == nil {
			fmt.Fprintln(w, issue.String())
		} else {
			err := template.Execute(w, issue)
			if err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}
