package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eZanmoto/linelint/api"
)

func TestSort(t *testing.T) {
	in := emit(
		&api.Issue{Path: "b.go", Line: 5},
		&api.Issue{Path: "a.go", Line: 3},
		&api.Issue{Path: "b.go", Line: 1},
		&api.Issue{Path: "a.go", Line: 1},
	)
	expected := []*api.Issue{
		{Path: "a.go", Line: 1},
		{Path: "a.go", Line: 3},
		{Path: "b.go", Line: 1},
		{Path: "b.go", Line: 5},
	}
	actual := drain(Sort(in, []string{"path", "line"}))
	assert.Empty(t, cmp.Diff(expected, actual))
}

func TestFilter(t *testing.T) {
	in := emit(
		&api.Issue{Path: "a.go", Length: 90},
		&api.Issue{Path: "b.go", Length: 120},
	)
	actual := drain(Filter(in, func(issue *api.Issue) bool {
		return issue.Length > 100
	}))
	require.Len(t, actual, 1)
	assert.Equal(t, "b.go", actual[0].Path)
}

func TestStatusWithIssues(t *testing.T) {
	status, out := Status(emit(&api.Issue{Path: "a.go"}))
	issues := drain(out)
	assert.Len(t, issues, 1)
	assert.Equal(t, 1, <-status)
}

func TestStatusWithoutIssues(t *testing.T) {
	status, out := Status(emit())
	assert.Empty(t, drain(out))
	assert.Equal(t, 0, <-status)
}

func emit(issues ...*api.Issue) chan *api.Issue {
	out := make(chan *api.Issue, len(issues))
	for _, issue := range issues {
		out <- issue
	}
	close(out)
	return out
}

func drain(issues chan *api.Issue) []*api.Issue {
	out := []*api.Issue{}
	for issue := range issues {
		out = append(out, issue)
	}
	return out
}
