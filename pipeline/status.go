package pipeline

import (
	"github.com/eZanmoto/linelint/api"
)

// Status re-emits issues and reports an exit code on the returned
// channel: 1 if any issue passed through, 0 otherwise. The code is
// sent once the issue channel is drained.
func Status(issues chan *api.Issue) (chan int, chan *api.Issue) {
	status := make(chan int, 1)
	out := make(chan *api.Issue, 1)
	go func() {
		defer close(out)
		defer close(status)
		code := 0
		for issue := range issues {
			code |= 1
			out <- issue
		}
		status <- code
	}()
	return status, out
}
