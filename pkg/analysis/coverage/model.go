package coverage

// FileCoverage holds the raw per-file counts from one coverage report.
// Percentages are derived on read; a metric with zero found units reports
// 100% (vacuous full coverage), never NaN, because gating logic elsewhere
// treats the percentage as authoritative.
type FileCoverage struct {
	Path           string `json:"path"`
	LinesFound     int    `json:"lines_found"`
	LinesHit       int    `json:"lines_hit"`
	BranchesFound  int    `json:"branches_found"`
	BranchesHit    int    `json:"branches_hit"`
	FunctionsFound int    `json:"functions_found"`
	FunctionsHit   int    `json:"functions_hit"`
	// UncoveredLines are the line numbers found but not hit, ascending.
	UncoveredLines []int `json:"uncovered_lines,omitempty"`
}

func percentage(hit, found int) float64 {
	if found == 0 {
		return 100.0
	}
	return float64(hit) * 100.0 / float64(found)
}

// LineCoverage returns the line-coverage percentage for the file.
func (f *FileCoverage) LineCoverage() float64 {
	return percentage(f.LinesHit, f.LinesFound)
}

// BranchCoverage returns the branch-coverage percentage for the file.
func (f *FileCoverage) BranchCoverage() float64 {
	return percentage(f.BranchesHit, f.BranchesFound)
}

// FunctionCoverage returns the function-coverage percentage for the file.
func (f *FileCoverage) FunctionCoverage() float64 {
	return percentage(f.FunctionsHit, f.FunctionsFound)
}

// Report is the normalized, format-agnostic aggregate. Built by one parse
// call and immutable afterward; file order follows the source report.
type Report struct {
	Files          []*FileCoverage `json:"files"`
	LinesFound     int             `json:"lines_found"`
	LinesHit       int             `json:"lines_hit"`
	BranchesFound  int             `json:"branches_found"`
	BranchesHit    int             `json:"branches_hit"`
	FunctionsFound int             `json:"functions_found"`
	FunctionsHit   int             `json:"functions_hit"`
}

func (r *Report) add(f *FileCoverage) {
	r.Files = append(r.Files, f)
	r.LinesFound += f.LinesFound
	r.LinesHit += f.LinesHit
	r.BranchesFound += f.BranchesFound
	r.BranchesHit += f.BranchesHit
	r.FunctionsFound += f.FunctionsFound
	r.FunctionsHit += f.FunctionsHit
}

// LineCoverage returns the overall line-coverage percentage.
func (r *Report) LineCoverage() float64 {
	return percentage(r.LinesHit, r.LinesFound)
}

// BranchCoverage returns the overall branch-coverage percentage.
func (r *Report) BranchCoverage() float64 {
	return percentage(r.BranchesHit, r.BranchesFound)
}

// FunctionCoverage returns the overall function-coverage percentage.
func (r *Report) FunctionCoverage() float64 {
	return percentage(r.FunctionsHit, r.FunctionsFound)
}

// DefaultThreshold is the line-coverage gate used when the caller does not
// configure one.
const DefaultThreshold = 80.0

// UncoveredFiles returns the files whose line coverage is strictly below
// threshold, preserving report order. A file sitting exactly on the
// threshold passes.
func UncoveredFiles(r *Report, threshold float64) []*FileCoverage {
	var out []*FileCoverage
	for _, f := range r.Files {
		if f.LineCoverage() < threshold {
			out = append(out, f)
		}
	}
	return out
}
