package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eZanmoto/linelint/api"
	"github.com/eZanmoto/linelint/config"
)

func TestJoinRegexps(t *testing.T) {
	re, err := joinRegexps(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, re)

	re, err = joinRegexps(nil, []string{"foo", "bar"})
	require.NoError(t, err)
	assert.True(t, re.MatchString("foo"))
	assert.True(t, re.MatchString("bar"))
	assert.False(t, re.MatchString("baz"))

	_, err = joinRegexps(nil, []string{"*"})
	assert.Error(t, err)
}

func TestMaybeSortIssuesNone(t *testing.T) {
	issues := make(chan *api.Issue)
	conf := config.Default()
	assert.Equal(t, issues, maybeSortIssues(conf, issues))
}

func TestMaybeSortIssuesSorted(t *testing.T) {
	issues := make(chan *api.Issue, 2)
	issues <- &api.Issue{Path: "b.txt", Line: 1}
	issues <- &api.Issue{Path: "a.txt", Line: 1}
	close(issues)

	conf := config.Default()
	conf.Sort = []string{"path"}
	sorted := maybeSortIssues(conf, issues)
	first := <-sorted
	assert.Equal(t, "a.txt", first.Path)
}

func TestProcessIssuesExclude(t *testing.T) {
	*excludeFlag = []string{`b\.txt`}
	defer func() { *excludeFlag = nil }()

	issues := make(chan *api.Issue, 2)
	issues <- &api.Issue{Path: "a.txt", Line: 1, Message: "Length 81"}
	issues <- &api.Issue{Path: "b.txt", Line: 2, Message: "Length 90"}
	close(issues)

	processed, err := processIssues(config.Default(), issues)
	require.NoError(t, err)
	kept := []*api.Issue{}
	for issue := range processed {
		kept = append(kept, issue)
	}
	require.Len(t, kept, 1)
	assert.Equal(t, "a.txt", kept[0].Path)
}

func TestProcessIssuesInclude(t *testing.T) {
	*includeFlag = []string{`b\.txt`}
	defer func() { *includeFlag = nil }()

	issues := make(chan *api.Issue, 2)
	issues <- &api.Issue{Path: "a.txt", Line: 1, Message: "Length 81"}
	issues <- &api.Issue{Path: "b.txt", Line: 2, Message: "Length 90"}
	close(issues)

	processed, err := processIssues(config.Default(), issues)
	require.NoError(t, err)
	kept := []*api.Issue{}
	for issue := range processed {
		kept = append(kept, issue)
	}
	require.Len(t, kept, 1)
	assert.Equal(t, "b.txt", kept[0].Path)
}

func TestLoadConfigOutputFlags(t *testing.T) {
	*jsonFlag = true
	defer func() { *jsonFlag = false }()

	conf, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.OutputJSON, conf.Output)
}

func TestLoadConfigRejectsUnknownTemplateField(t *testing.T) {
	*formatFlag = "{{.Col}}"
	defer func() { *formatFlag = "" }()

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Col")
}

func TestLoadConfigCheckstyleForcesPathSort(t *testing.T) {
	*checkstyleFlag = true
	defer func() { *checkstyleFlag = false }()

	conf, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.OutputCheckstyle, conf.Output)
	assert.Equal(t, []string{"path", "line"}, conf.Sort)
}
