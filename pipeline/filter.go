// Package pipeline transforms streams of line-length issues between
// the checker and the output writers.
package pipeline

import "github.com/eZanmoto/linelint/api"

// Filter re-emits only the issues for which keep returns true. The
// CLI uses it to apply the exclude/include expressions to rendered
// issues.
func Filter(issues chan *api.Issue, keep func(issue *api.Issue) bool) chan *api.Issue {
	out := make(chan *api.Issue, 1)
	go func() {
		defer close(out)
		for issue := range issues {
			if keep(issue) {
				out <- issue
			}
		}
	}()
	return out
}
