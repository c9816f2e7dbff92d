package coverage

import (
	"fmt"
	"strings"
)

// FormatSummary renders the report as deterministic human-readable text:
// one line per file in report order, one decimal place on percentages,
// exact hit/found counts, then the aggregate totals.
func FormatSummary(r *Report) string {
	var b strings.Builder

	b.WriteString("Coverage summary\n")
	for _, f := range r.Files {
		fmt.Fprintf(&b, "  %s: lines %d/%d (%.1f%%), branches %d/%d (%.1f%%), functions %d/%d (%.1f%%)\n",
			f.Path,
			f.LinesHit, f.LinesFound, f.LineCoverage(),
			f.BranchesHit, f.BranchesFound, f.BranchCoverage(),
			f.FunctionsHit, f.FunctionsFound, f.FunctionCoverage(),
		)
	}
	fmt.Fprintf(&b, "Total: lines %d/%d (%.1f%%), branches %d/%d (%.1f%%), functions %d/%d (%.1f%%)\n",
		r.LinesHit, r.LinesFound, r.LineCoverage(),
		r.BranchesHit, r.BranchesFound, r.BranchCoverage(),
		r.FunctionsHit, r.FunctionsFound, r.FunctionCoverage(),
	)

	return b.String()
}
