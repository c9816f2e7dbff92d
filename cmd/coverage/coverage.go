package coverage

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentkit-io/agentkit/pkg/analysis/coverage"
	"github.com/agentkit-io/agentkit/pkg/shared"
	"github.com/agentkit-io/agentkit/pkg/shared/config"
	"github.com/agentkit-io/agentkit/pkg/shared/logger"
)

// RunOptionsCoverage holds the arguments for the coverage command.
type RunOptionsCoverage struct {
	InputFile  string
	Format     string
	Threshold  float64
	Summary    bool
	OutputPath string
}

// Global variables for configuration and command arguments
var (
	AppConfig            *config.Config
	coverageOptions      RunOptionsCoverage
	exampleCoverageUsage = `  # Parsing an LCOV tracefile and printing the per-file table
  agentkit coverage /path/to/lcov.info

  # Parsing a Cobertura report with an explicit format
  agentkit coverage --format cobertura /path/to/coverage.xml

  # Listing files below a custom threshold
  agentkit coverage --threshold 90 /path/to/lcov.info

  # Writing the normalized report to a result file
  agentkit coverage --output /path/to/report.json /path/to/coverage-final.json`
)

// CoverageCmd represents the coverage command.
var CoverageCmd = &cobra.Command{
	Use:                   "coverage [--format lcov|cobertura|istanbul] [--threshold PCT] [--summary] [--output PATH] PATH",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleCoverageUsage,
	Short:                 "Parses a coverage report into the normalized model and gates on a threshold",
	RunE:                  runCoverageCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runCoverageCommand executes the coverage command.
func runCoverageCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-coverage")

	if err := validateCoverageArgs(&coverageOptions, args, AppConfig); err != nil {
		logger.Error("invalid coverage arguments", "error", err)
		return err
	}

	report, err := parseReport(&coverageOptions)
	if err != nil {
		logger.Error("failed to parse coverage report", "path", coverageOptions.InputFile, "error", err)
		return err
	}
	logger.Info("coverage report parsed",
		"path", coverageOptions.InputFile,
		"files", len(report.Files),
		"line_coverage", fmt.Sprintf("%.1f", report.LineCoverage()),
	)

	if coverageOptions.OutputPath != "" {
		result := shared.NewResult("coverage", coverageOptions, report, nil)
		if err := shared.WriteResult(logger, coverageOptions.OutputPath, result); err != nil {
			return err
		}
	}

	if coverageOptions.Summary {
		fmt.Fprint(cmd.OutOrStdout(), coverage.FormatSummary(report))
	} else {
		renderReportTable(cmd.OutOrStdout(), report)
	}

	uncovered := coverage.UncoveredFiles(report, coverageOptions.Threshold)
	if len(uncovered) > 0 {
		renderUncovered(cmd.OutOrStdout(), uncovered, coverageOptions.Threshold)
		return fmt.Errorf("%d file(s) below %.1f%% line coverage", len(uncovered), coverageOptions.Threshold)
	}

	return nil
}

// parseReport dispatches on the resolved report format.
func parseReport(opts *RunOptionsCoverage) (*coverage.Report, error) {
	switch opts.Format {
	case formatLCOV:
		return coverage.ParseLCOV(opts.InputFile)
	case formatCobertura:
		return coverage.ParseCobertura(opts.InputFile)
	case formatIstanbul:
		return coverage.ParseIstanbul(opts.InputFile)
	default:
		return nil, fmt.Errorf("unknown coverage format %q", opts.Format)
	}
}

func init() {
	CoverageCmd.Flags().StringVarP(&coverageOptions.Format, "format", "f", "", "report format: lcov, cobertura or istanbul (default: inferred from the file name)")
	CoverageCmd.Flags().Float64VarP(&coverageOptions.Threshold, "threshold", "t", 0, "line-coverage percentage below which a file fails the gate")
	CoverageCmd.Flags().BoolVar(&coverageOptions.Summary, "summary", false, "print the plain-text summary instead of the table")
	CoverageCmd.Flags().StringVarP(&coverageOptions.OutputPath, "output", "o", "", "path for the normalized report file")
}
