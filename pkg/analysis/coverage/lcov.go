package coverage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/agentkit-io/agentkit/pkg/shared/errors"
)

// lcovSection accumulates counts for one SF..end_of_record block.
type lcovSection struct {
	file      *FileCoverage
	hitByLine map[int]bool
	funcsSeen map[string]bool
	funcsHit  map[string]bool
	startLine int
}

// ParseLCOV reads an LCOV tracefile from path into a normalized Report.
func ParseLCOV(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open LCOV file: %w", err)
	}
	defer f.Close()

	return parseLCOV(f, path)
}

func parseLCOV(r io.Reader, name string) (*Report, error) {
	report := &Report{}
	var section *lcovSection
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "SF:"):
			if section != nil {
				return nil, errors.NewParseError(name, lineNo, line, "new section before end_of_record")
			}
			path := strings.TrimPrefix(line, "SF:")
			if path == "" {
				return nil, errors.NewParseError(name, lineNo, line, "empty source file path")
			}
			section = &lcovSection{
				file:      &FileCoverage{Path: path},
				hitByLine: make(map[int]bool),
				funcsSeen: make(map[string]bool),
				funcsHit:  make(map[string]bool),
				startLine: lineNo,
			}

		case strings.HasPrefix(line, "DA:"):
			if section == nil {
				return nil, errors.NewParseError(name, lineNo, line, "line record outside a section")
			}
			fields := strings.Split(strings.TrimPrefix(line, "DA:"), ",")
			if len(fields) < 2 {
				return nil, errors.NewParseError(name, lineNo, line, "malformed DA record")
			}
			ln, err1 := strconv.Atoi(fields[0])
			count, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil || ln <= 0 {
				return nil, errors.NewParseError(name, lineNo, line, "malformed DA record")
			}
			if _, declared := section.hitByLine[ln]; !declared {
				section.file.LinesFound++
			}
			if count > 0 {
				section.hitByLine[ln] = true
			} else if !section.hitByLine[ln] {
				section.hitByLine[ln] = false
			}

		case strings.HasPrefix(line, "BRDA:"):
			if section == nil {
				return nil, errors.NewParseError(name, lineNo, line, "branch record outside a section")
			}
			fields := strings.Split(strings.TrimPrefix(line, "BRDA:"), ",")
			if len(fields) != 4 {
				return nil, errors.NewParseError(name, lineNo, line, "malformed BRDA record")
			}
			section.file.BranchesFound++
			// taken is "-" when the branch block was never executed
			if fields[3] != "-" {
				taken, err := strconv.Atoi(fields[3])
				if err != nil {
					return nil, errors.NewParseError(name, lineNo, line, "malformed BRDA record")
				}
				if taken > 0 {
					section.file.BranchesHit++
				}
			}

		case strings.HasPrefix(line, "FN:"):
			if section == nil {
				return nil, errors.NewParseError(name, lineNo, line, "function record outside a section")
			}
			fields := strings.SplitN(strings.TrimPrefix(line, "FN:"), ",", 2)
			if len(fields) != 2 || fields[1] == "" {
				return nil, errors.NewParseError(name, lineNo, line, "malformed FN record")
			}
			section.funcsSeen[fields[1]] = true

		case strings.HasPrefix(line, "FNDA:"):
			if section == nil {
				return nil, errors.NewParseError(name, lineNo, line, "function record outside a section")
			}
			fields := strings.SplitN(strings.TrimPrefix(line, "FNDA:"), ",", 2)
			if len(fields) != 2 {
				return nil, errors.NewParseError(name, lineNo, line, "malformed FNDA record")
			}
			count, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, errors.NewParseError(name, lineNo, line, "malformed FNDA record")
			}
			if count > 0 {
				section.funcsHit[fields[1]] = true
			}

		case line == "end_of_record":
			if section == nil {
				return nil, errors.NewParseError(name, lineNo, line, "end_of_record outside a section")
			}
			report.add(finishLCOVSection(section))
			section = nil

		default:
			// TN:, LF:, LH: and other summary records carry nothing the
			// per-record counts do not already provide.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read LCOV input: %w", err)
	}

	if section != nil {
		return nil, errors.NewParseError(name, section.startLine, "SF:"+section.file.Path, "section is missing end_of_record")
	}

	return report, nil
}

func finishLCOVSection(s *lcovSection) *FileCoverage {
	for ln, hit := range s.hitByLine {
		if hit {
			s.file.LinesHit++
		} else {
			s.file.UncoveredLines = append(s.file.UncoveredLines, ln)
		}
	}
	sort.Ints(s.file.UncoveredLines)

	s.file.FunctionsFound = len(s.funcsSeen)
	for fn := range s.funcsHit {
		if s.funcsSeen[fn] {
			s.file.FunctionsHit++
		}
	}
	return s.file
}
