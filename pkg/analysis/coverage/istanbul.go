package coverage

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/agentkit-io/agentkit/pkg/shared/errors"
)

// Istanbul coverage-final.json: one object per instrumented file, keyed by
// path, with statement/branch/function maps and parallel hit counters.
type istanbulFile struct {
	Path         string                   `json:"path"`
	StatementMap map[string]istanbulRange `json:"statementMap"`
	S            map[string]int           `json:"s"`
	B            map[string][]int         `json:"b"`
	F            map[string]int           `json:"f"`
}

type istanbulRange struct {
	Start istanbulPosition `json:"start"`
}

type istanbulPosition struct {
	Line int `json:"line"`
}

// ParseIstanbul reads an Istanbul JSON coverage report from path into a
// normalized Report. Files are emitted in sorted key order so the result is
// deterministic regardless of JSON object ordering.
func ParseIstanbul(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read Istanbul file: %w", err)
	}

	var doc map[string]istanbulFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewParseError(path, 0, "document", fmt.Sprintf("invalid JSON: %v", err))
	}
	if len(doc) == 0 {
		return nil, errors.NewParseError(path, 0, "document", "no file entries found")
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	report := &Report{}
	for _, key := range keys {
		entry := doc[key]
		filePath := entry.Path
		if filePath == "" {
			filePath = key
		}

		fc, err := istanbulFileCoverage(path, filePath, entry)
		if err != nil {
			return nil, err
		}
		report.add(fc)
	}
	return report, nil
}

func istanbulFileCoverage(reportPath, filePath string, entry istanbulFile) (*FileCoverage, error) {
	fc := &FileCoverage{Path: filePath}

	// Line coverage derives from statements: a line is found if any statement
	// starts on it, and hit if any of those statements executed.
	hitByLine := make(map[int]bool)
	for id, count := range entry.S {
		rng, ok := entry.StatementMap[id]
		if !ok {
			return nil, errors.NewParseError(reportPath, 0, "s", fmt.Sprintf("statement %q of %q has no statementMap entry", id, filePath))
		}
		if rng.Start.Line <= 0 {
			return nil, errors.NewParseError(reportPath, 0, "statementMap", fmt.Sprintf("statement %q of %q has invalid start line", id, filePath))
		}
		if _, declared := hitByLine[rng.Start.Line]; !declared {
			hitByLine[rng.Start.Line] = false
		}
		if count > 0 {
			hitByLine[rng.Start.Line] = true
		}
	}
	fc.LinesFound = len(hitByLine)
	for ln, hit := range hitByLine {
		if hit {
			fc.LinesHit++
		} else {
			fc.UncoveredLines = append(fc.UncoveredLines, ln)
		}
	}
	sort.Ints(fc.UncoveredLines)

	for _, arms := range entry.B {
		for _, count := range arms {
			fc.BranchesFound++
			if count > 0 {
				fc.BranchesHit++
			}
		}
	}

	for _, count := range entry.F {
		fc.FunctionsFound++
		if count > 0 {
			fc.FunctionsHit++
		}
	}

	return fc, nil
}
