package patterns

import (
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"
)

const (
	toolName = "agentkit"
	toolURI  = "https://github.com/agentkit-io/agentkit"
)

// sarifLevel maps a rule severity to the SARIF result level vocabulary.
func sarifLevel(s Severity) string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

// ToSARIF converts pattern matches for a single artifact into a SARIF report,
// so scan results plug into the same pipelines as any other SAST tool.
func ToSARIF(matches []Match, artifactPath string) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	seenRules := make(map[string]struct{})

	for _, match := range matches {
		if _, ok := seenRules[match.Rule]; !ok {
			run.AddRule(match.Rule).WithDescription(match.Message)
			seenRules[match.Rule] = struct{}{}
		}

		region := sarif.NewSimpleRegion(match.Line, match.Line).
			WithStartColumn(match.Column).
			WithSnippet(sarif.NewArtifactContent().WithText(match.Text))

		run.CreateResultForRule(match.Rule).
			WithLevel(sarifLevel(match.Severity)).
			WithMessage(sarif.NewTextMessage(match.Message)).
			AddLocation(
				sarif.NewLocationWithPhysicalLocation(
					sarif.NewPhysicalLocation().
						WithArtifactLocation(sarif.NewSimpleArtifactLocation(artifactPath)).
						WithRegion(region),
				),
			)
	}

	report.AddRun(run)
	return report, nil
}
