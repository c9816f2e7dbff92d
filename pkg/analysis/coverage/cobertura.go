package coverage

import (
	"encoding/xml"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/agentkit-io/agentkit/pkg/shared/errors"
)

type coberturaDocument struct {
	XMLName  xml.Name           `xml:"coverage"`
	Packages []coberturaPackage `xml:"packages>package"`
}

type coberturaPackage struct {
	Classes []coberturaClass `xml:"classes>class"`
}

type coberturaClass struct {
	Filename string            `xml:"filename,attr"`
	Methods  []coberturaMethod `xml:"methods>method"`
	Lines    []coberturaLine   `xml:"lines>line"`
}

type coberturaMethod struct {
	Name  string          `xml:"name,attr"`
	Lines []coberturaLine `xml:"lines>line"`
}

type coberturaLine struct {
	Number            int    `xml:"number,attr"`
	Hits              int    `xml:"hits,attr"`
	Branch            bool   `xml:"branch,attr"`
	ConditionCoverage string `xml:"condition-coverage,attr"`
}

// conditionRe extracts "(covered/total)" from e.g. "50% (1/2)".
var conditionRe = regexp.MustCompile(`\((\d+)/(\d+)\)`)

// ParseCobertura reads a Cobertura XML report from path into a normalized
// Report. Classes sharing a filename are merged into one FileCoverage, in
// first-seen order.
func ParseCobertura(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read Cobertura file: %w", err)
	}

	var doc coberturaDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewParseError(path, 0, "coverage", fmt.Sprintf("invalid XML: %v", err))
	}
	if len(doc.Packages) == 0 {
		return nil, errors.NewParseError(path, 0, "packages", "no package elements found")
	}

	report := &Report{}
	byFile := make(map[string]*coberturaAccumulator)
	var order []string

	for _, pkg := range doc.Packages {
		for _, class := range pkg.Classes {
			if class.Filename == "" {
				return nil, errors.NewParseError(path, 0, "class", "class element is missing a filename")
			}
			acc, ok := byFile[class.Filename]
			if !ok {
				acc = newCoberturaAccumulator(class.Filename)
				byFile[class.Filename] = acc
				order = append(order, class.Filename)
			}
			if err := acc.addClass(path, class); err != nil {
				return nil, err
			}
		}
	}

	for _, filename := range order {
		report.add(byFile[filename].finish())
	}
	return report, nil
}

type coberturaAccumulator struct {
	file      *FileCoverage
	hitByLine map[int]bool
}

func newCoberturaAccumulator(filename string) *coberturaAccumulator {
	return &coberturaAccumulator{
		file:      &FileCoverage{Path: filename},
		hitByLine: make(map[int]bool),
	}
}

func (a *coberturaAccumulator) addClass(path string, class coberturaClass) error {
	for _, line := range class.Lines {
		if line.Number <= 0 {
			return errors.NewParseError(path, 0, "line", fmt.Sprintf("invalid line number %d in %q", line.Number, class.Filename))
		}
		if _, declared := a.hitByLine[line.Number]; !declared {
			a.hitByLine[line.Number] = false
		}
		if line.Hits > 0 {
			a.hitByLine[line.Number] = true
		}

		if line.Branch && line.ConditionCoverage != "" {
			m := conditionRe.FindStringSubmatch(line.ConditionCoverage)
			if m == nil {
				return errors.NewParseError(path, 0, "condition-coverage", fmt.Sprintf("unparseable value %q", line.ConditionCoverage))
			}
			covered, _ := strconv.Atoi(m[1])
			total, _ := strconv.Atoi(m[2])
			a.file.BranchesFound += total
			a.file.BranchesHit += covered
		}
	}

	for _, method := range class.Methods {
		a.file.FunctionsFound++
		for _, line := range method.Lines {
			if line.Hits > 0 {
				a.file.FunctionsHit++
				break
			}
		}
	}
	return nil
}

func (a *coberturaAccumulator) finish() *FileCoverage {
	a.file.LinesFound = len(a.hitByLine)
	for ln, hit := range a.hitByLine {
		if hit {
			a.file.LinesHit++
		} else {
			a.file.UncoveredLines = append(a.file.UncoveredLines, ln)
		}
	}
	sort.Ints(a.file.UncoveredLines)
	return a.file
}
