package reporting

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/quickbench/quickbench/bench"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one benchmark run.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Skipped    int             `xml:"skipped,attr"`
	Time       float64         `xml:"time,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one model.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
}

// JUnitFailure marks a model below the score gate.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ConvertToJUnit converts a Report to JUnit XML form: one test case per
// model, failed when the model is below the score gate.
func ConvertToJUnit(r *Report) *JUnitTestSuites {
	name := r.Suite
	if name == "" {
		name = "quickbench"
	}

	suite := JUnitTestSuite{
		Name:      name,
		Tests:     r.Table.Len(),
		Timestamp: r.Timestamp.UTC().Format(time.RFC3339),
		Properties: []JUnitProperty{
			{Name: "problem_type", Value: r.Table.Problem.String()},
			{Name: "dataset", Value: r.Dataset},
			{Name: "samples", Value: strconv.Itoa(r.Samples)},
		},
	}
	if r.MinScore != nil {
		suite.Properties = append(suite.Properties,
			JUnitProperty{Name: "min_score", Value: fmt.Sprintf("%.4f", *r.MinScore)})
	}

	for _, row := range r.Table.Rows {
		tc := JUnitTestCase{
			Name:      row.Name,
			Classname: name,
			Time:      row.Latency,
		}
		if r.Failed(row) {
			tc.Failure = buildFailure(r, row)
			suite.Failures++
		}
		suite.Time += row.Latency
		suite.TestCases = append(suite.TestCases, tc)
	}

	return &JUnitTestSuites{
		Tests:      suite.Tests,
		Failures:   suite.Failures,
		Time:       suite.Time,
		TestSuites: []JUnitTestSuite{suite},
	}
}

func buildFailure(r *Report, row bench.Row) *JUnitFailure {
	return &JUnitFailure{
		Message: fmt.Sprintf("%s: primary score %.4f below %.4f", row.Name, row.PrimaryScore, *r.MinScore),
		Type:    "ScoreGate",
		Body:    formatRow(r.Table.Columns(), row.Cells()),
	}
}

func formatRow(columns, cells []string) string {
	var out string
	for i, c := range columns {
		out += fmt.Sprintf("%s: %s\n", c, cells[i])
	}
	return out
}

// WriteJUnit writes the report as JUnit XML, including the XML header.
func WriteJUnit(w io.Writer, r *Report) error {
	data, err := xml.MarshalIndent(ConvertToJUnit(r), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}

	output := append([]byte(xml.Header), data...)
	_, err = w.Write(append(output, '\n'))
	return err
}

// WriteJUnitXML writes JUnit XML to the specified file path.
func WriteJUnitXML(r *Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJUnit(f, r); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	return f.Close()
}
