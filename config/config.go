package config

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"

	"github.com/eZanmoto/linelint/api"
)

// DefaultIssueFormat used to print an issue.
var DefaultIssueFormat = &Template{template.Must(template.New("output").
	Parse(api.DefaultIssueFormat))}

// SortKeys that may be given to --sort or the "sort" config key.
var SortKeys = []string{"none", "path", "line", "length", "message"}

type Regexp struct {
	*regexp.Regexp
}

func (r *Regexp) UnmarshalText(data []byte) (err error) {
	r.Regexp, err = regexp.Compile(string(data))
	return
}

type Template struct {
	*template.Template
}

func (t *Template) UnmarshalText(text []byte) (err error) {
	t.Template, err = template.New("output").Parse(string(text))
	return err
}

type OutputFormat int

const (
	OutputText OutputFormat = iota
	OutputJSON
	OutputCheckstyle
)

func (o *OutputFormat) UnmarshalText(text []byte) error {
	switch string(text) {
	case "text":
		*o = OutputText
	case "json":
		*o = OutputJSON
	case "checkstyle":
		*o = OutputCheckstyle
	default:
		return fmt.Errorf("invalid output format %q", string(text))
	}
	return nil
}

// Config for linelint.
//
// This can be loaded from a TOML file with --config.
type Config struct {
	// Formatting template for text output.
	Format *Template `toml:"format"`
	// Regex matching issues to exclude from output.
	Exclude []Regexp `toml:"exclude"`
	// Override excludes.
	Include []Regexp `toml:"include"`
	// Skip matches containing a path component with one of these names.
	Skip []string `toml:"skip"`
	// Sort order (defaults to no sorting): path, line, length, message
	Sort []string `toml:"sort"`
	// Type of output to generate: text (default), json, checkstyle
	Output OutputFormat `toml:"output"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Format: DefaultIssueFormat,
		Sort:   []string{"none"},
	}
}

// Read configuration from a reader.
func Read(r io.Reader) (*Config, error) {
	config := Default()
	md, err := toml.NewDecoder(r).Decode(config)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := []string{}
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("unknown keys %s", strings.Join(keys, ","))
	}
	for _, key := range config.Sort {
		if !validSortKey(key) {
			return nil, fmt.Errorf("invalid sort key %q", key)
		}
	}
	return config, nil
}

// ReadString reads configuration from a string.
func ReadString(s string) (*Config, error) {
	return Read(strings.NewReader(s))
}

// ReadFile reads configuration from a filename.
func ReadFile(filename string) (*Config, error) {
	r, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Read(r)
}

func validSortKey(key string) bool {
	for _, valid := range SortKeys {
		if key == valid {
			return true
		}
	}
	return false
}
