package detect

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/agentkit-io/agentkit/pkg/analysis/techstack"
)

// renderStackTable prints one row per category with the detected
// technologies joined by comma.
func renderStackTable(w io.Writer, stack *techstack.Stack) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Technologies"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, cat := range techstack.Categories {
		techs := stack.Technologies(cat)
		if len(techs) == 0 {
			table.Append([]string{string(cat), "-"})
			continue
		}
		table.Append([]string{string(cat), strings.Join(techs, ", ")})
	}
	table.Render()
}

// renderReviewContext prints the reviewer focus areas per technology.
func renderReviewContext(w io.Writer, stack *techstack.Stack) {
	context := techstack.ReviewContext(stack)
	if len(context) == 0 {
		return
	}

	techs := make([]string, 0, len(context))
	for tech := range context {
		techs = append(techs, tech)
	}
	sort.Strings(techs)

	fmt.Fprintln(w, "\nReview focus areas:")
	for _, tech := range techs {
		for _, guideline := range context[tech] {
			fmt.Fprintf(w, "  %s: %s\n", tech, guideline)
		}
	}
}
