// linelint reports lines longer than a maximum number of bytes in files
// matching a glob pattern.
package main

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"
	"text/template"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/eZanmoto/linelint/api"
	"github.com/eZanmoto/linelint/checker"
	"github.com/eZanmoto/linelint/config"
	"github.com/eZanmoto/linelint/output"
	"github.com/eZanmoto/linelint/pipeline"
	"github.com/eZanmoto/linelint/util"
)

var (
	configFlag     = kingpin.Flag("config", "Load configuration from a TOML file.").PlaceHolder("FILE").String()
	excludeFlag    = kingpin.Flag("exclude", "Exclude issues matching these regular expressions.").Short('e').PlaceHolder("REGEXP").Strings()
	includeFlag    = kingpin.Flag("include", "Include only issues matching these regular expressions.").Short('I').PlaceHolder("REGEXP").Strings()
	skipFlag       = kingpin.Flag("skip", "Skip matches containing a path component with this name.").Short('s').PlaceHolder("DIR").Strings()
	sortFlag       = kingpin.Flag("sort", fmt.Sprintf("Sort output by any of %s.", strings.Join(config.SortKeys, ", "))).Enums(config.SortKeys...)
	jsonFlag       = kingpin.Flag("json", "Generate structured JSON rather than standard line-based output.").Bool()
	checkstyleFlag = kingpin.Flag("checkstyle", "Generate checkstyle XML rather than standard line-based output.").Bool()
	formatFlag     = kingpin.Flag("format", "Template for text output.").PlaceHolder("TEMPLATE").String()
	debugFlag      = kingpin.Flag("debug", "Display messages for skipped paths, etc.").Short('d').Bool()

	patternArg = kingpin.Arg("pattern", "Glob matching the files to check. ** matches nested directories.").Required().String()
	maxLenArg  = kingpin.Arg("max-len", "Maximum allowed line length in bytes.").Required().Int()
)

func main() {
	kingpin.CommandLine.Help = `Report lines longer than a maximum number of bytes in files matching a glob pattern.

Lengths are measured in raw bytes: multi-byte characters count once per byte
and carriage returns count towards the length of the line they end.`
	kingpin.Parse()
	util.Debugging(*debugFlag)

	conf, err := loadConfig()
	kingpin.FatalIfError(err, "invalid configuration")

	chk := &checker.Checker{MaxLen: *maxLenArg, Skip: conf.Skip}
	issues, errch := chk.Check(*patternArg)

	processed, err := processIssues(conf, issues)
	kingpin.FatalIfError(err, "invalid configuration")
	statusch, processed := pipeline.Status(processed)

	switch conf.Output {
	case config.OutputJSON:
		err = output.JSON(os.Stdout, processed)
	case config.OutputCheckstyle:
		err = output.Checkstyle(os.Stdout, processed)
	default:
		err = output.Text(os.Stdout, conf.Format.Template, processed)
	}
	kingpin.FatalIfError(err, "failed to write output")

	status := <-statusch
	for err := range errch {
		util.Warning("%s", err)
		status |= 2
	}
	os.Exit(status)
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	conf := config.Default()
	if *configFlag != "" {
		var err error
		conf, err = config.ReadFile(*configFlag)
		if err != nil {
			return nil, err
		}
	}
	conf.Skip = append(conf.Skip, *skipFlag...)
	if len(*sortFlag) > 0 {
		conf.Sort = *sortFlag
	}
	if *jsonFlag {
		conf.Output = config.OutputJSON
	} else if *checkstyleFlag {
		conf.Output = config.OutputCheckstyle
	}
	if *formatFlag != "" {
		tmpl, err := template.New("output").Parse(*formatFlag)
		if err != nil {
			return nil, err
		}
		conf.Format = &config.Template{Template: tmpl}
	}
	// Reject templates that reference fields an Issue does not have
	// before any file is scanned.
	if _, err := api.NewIssue(conf.Format.Template); err != nil {
		return nil, err
	}
	// Checkstyle output groups issues by file, so force sorting by path.
	if conf.Output == config.OutputCheckstyle {
		conf.Sort = []string{"path", "line"}
	}
	return conf, nil
}

func processIssues(conf *config.Config, issues chan *api.Issue) (chan *api.Issue, error) {
	exclude, err := joinRegexps(conf.Exclude, *excludeFlag)
	if err != nil {
		return nil, err
	}
	include, err := joinRegexps(conf.Include, *includeFlag)
	if err != nil {
		return nil, err
	}
	if exclude != nil || include != nil {
		issues = pipeline.Filter(issues, func(issue *api.Issue) bool {
			text := issue.String()
			if exclude != nil && exclude.MatchString(text) {
				return false
			}
			if include != nil && !include.MatchString(text) {
				return false
			}
			return true
		})
	}
	return maybeSortIssues(conf, issues), nil
}

func maybeSortIssues(conf *config.Config, issues chan *api.Issue) chan *api.Issue {
	if len(conf.Sort) == 0 || reflect.DeepEqual([]string{"none"}, conf.Sort) {
		return issues
	}
	return pipeline.Sort(issues, conf.Sort)
}

func joinRegexps(fromConfig []config.Regexp, fromFlags []string) (*regexp.Regexp, error) {
	patterns := []string{}
	for _, re := range fromConfig {
		patterns = append(patterns, re.String())
	}
	patterns = append(patterns, fromFlags...)
	if len(patterns) == 0 {
		return nil, nil
	}
	return regexp.Compile(strings.Join(patterns, "|"))
}
