package coverage

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/agentkit-io/agentkit/pkg/analysis/coverage"
)

func formatRatio(hit, found int, pct float64) string {
	return fmt.Sprintf("%d/%d (%.1f%%)", hit, found, pct)
}

// renderReportTable prints the per-file counts as an aligned table with a
// trailing totals row.
func renderReportTable(w io.Writer, report *coverage.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Lines", "Branches", "Functions"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, f := range report.Files {
		table.Append([]string{
			f.Path,
			formatRatio(f.LinesHit, f.LinesFound, f.LineCoverage()),
			formatRatio(f.BranchesHit, f.BranchesFound, f.BranchCoverage()),
			formatRatio(f.FunctionsHit, f.FunctionsFound, f.FunctionCoverage()),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		formatRatio(report.LinesHit, report.LinesFound, report.LineCoverage()),
		formatRatio(report.BranchesHit, report.BranchesFound, report.BranchCoverage()),
		formatRatio(report.FunctionsHit, report.FunctionsFound, report.FunctionCoverage()),
	})
	table.Render()
}

// renderUncovered lists the files failing the threshold gate.
func renderUncovered(w io.Writer, uncovered []*coverage.FileCoverage, threshold float64) {
	fmt.Fprintf(w, "\nFiles below %.1f%% line coverage:\n", threshold)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Line coverage", "Uncovered lines"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, f := range uncovered {
		table.Append([]string{
			f.Path,
			fmt.Sprintf("%.1f%%", f.LineCoverage()),
			strconv.Itoa(len(f.UncoveredLines)),
		})
	}
	table.Render()
}
