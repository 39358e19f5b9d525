package output

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/eZanmoto/linelint/api"
)

// Source reported for each checkstyle error.
const checkstyleSource = "linelint"

type checkstyleOutput struct {
	XMLName xml.Name          `xml:"checkstyle"`
	Version string            `xml:"version,attr"`
	Files   []*checkstyleFile `xml:"file"`
}

type checkstyleFile struct {
	Name   string             `xml:"name,attr"`
	Errors []*checkstyleError `xml:"error"`
}

type checkstyleError struct {
	Line     int    `xml:"line,attr"`
	Message  string `xml:"message,attr"`
	Severity string `xml:"severity,attr"`
	Source   string `xml:"source,attr"`
}

// Checkstyle writes issues in checkstyle XML format.
//
// Issues are grouped by file, so the input should be sorted by path.
func Checkstyle(w io.Writer, issues chan *api.Issue) error {
	var lastFile *checkstyleFile
	out := checkstyleOutput{
		Version: "5.0",
	}
	for issue := range issues {
		if lastFile != nil && lastFile.Name != issue.Path {
			out.Files = append(out.Files, lastFile)
			lastFile = nil
		}
		if lastFile == nil {
			lastFile = &checkstyleFile{
				Name: issue.Path,
			}
		}

		lastFile.Errors = append(lastFile.Errors, &checkstyleError{
			Line:     issue.Line,
			Message:  issue.Message,
			Severity: string(issue.Severity),
			Source:   checkstyleSource,
		})
	}
	if lastFile != nil {
		out.Files = append(out.Files, lastFile)
	}
	fmt.Fprint(w, xml.Header)
	err := xml.NewEncoder(w).Encode(&out)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}
