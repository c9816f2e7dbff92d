package scan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentkit-io/agentkit/pkg/analysis/patterns"
	"github.com/agentkit-io/agentkit/pkg/shared"
	"github.com/agentkit-io/agentkit/pkg/shared/config"
	"github.com/agentkit-io/agentkit/pkg/shared/logger"
)

// RunOptionsScan holds the arguments for the scan command.
type RunOptionsScan struct {
	InputFile  string
	Rules      []string
	Preset     string
	Format     string
	OutputPath string
}

// Global variables for configuration and command arguments
var (
	AppConfig        *config.Config
	scanOptions      RunOptionsScan
	exampleScanUsage = `  # Scanning a source file with every rule
  agentkit scan /path/to/handler.js

  # Scanning with a named rule subset
  agentkit scan --rules hardcoded_secret,eval_usage /path/to/handler.js

  # Scanning with a convenience preset
  agentkit scan --preset security /path/to/handler.js

  # Emitting SARIF for downstream tooling
  agentkit scan --format sarif --output /path/to/results.sarif /path/to/handler.js`
)

// ScanCmd represents the scan command.
var ScanCmd = &cobra.Command{
	Use:                   "scan [--rules RULE,...] [--preset security|todos|debug] [--format plain|json|sarif] [--output PATH] {--input-file PATH | PATH}",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleScanUsage,
	Short:                 "Scans source text against the named pattern rules",
	RunE:                  runScanCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runScanCommand executes the scan command.
func runScanCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-scan")

	if err := validateScanArgs(&scanOptions, args); err != nil {
		logger.Error("invalid scan arguments", "error", err)
		return err
	}

	code, err := os.ReadFile(scanOptions.InputFile)
	if err != nil {
		logger.Error("failed to read input file", "path", scanOptions.InputFile, "error", err)
		return fmt.Errorf("failed to read %q: %w", scanOptions.InputFile, err)
	}

	matcher, err := newMatcherFromConfig(AppConfig)
	if err != nil {
		logger.Error("failed to build pattern matcher", "error", err)
		return err
	}

	matches, err := findMatches(matcher, string(code), &scanOptions)
	if err != nil {
		logger.Error("scan failed", "error", err)
		return err
	}
	logger.Info("scan completed", "file", scanOptions.InputFile, "matches", len(matches))

	if scanOptions.OutputPath != "" && scanOptions.Format == "json" {
		result := shared.NewResult("scan", scanOptions, matches, nil)
		return shared.WriteResult(logger, scanOptions.OutputPath, result)
	}

	return renderMatches(cmd, matches, &scanOptions)
}

// findMatches dispatches to the preset filters or the generic rule selection.
func findMatches(matcher *patterns.Matcher, code string, opts *RunOptionsScan) ([]patterns.Match, error) {
	switch opts.Preset {
	case presetSecurity:
		return matcher.FindSecurityIssues(code)
	case presetTodos:
		return matcher.FindTODOs(code)
	case presetDebug:
		return matcher.FindDebugStatements(code)
	default:
		return matcher.FindMatches(code, opts.Rules...)
	}
}

func init() {
	ScanCmd.Flags().StringVarP(&scanOptions.InputFile, "input-file", "i", "", "path to the source file to scan")
	ScanCmd.Flags().StringSliceVarP(&scanOptions.Rules, "rules", "r", nil, "rule names to apply (default: all rules)")
	ScanCmd.Flags().StringVarP(&scanOptions.Preset, "preset", "p", "", "convenience rule subset: security, todos or debug")
	ScanCmd.Flags().StringVarP(&scanOptions.Format, "format", "f", "plain", "output format: plain, json or sarif")
	ScanCmd.Flags().StringVarP(&scanOptions.OutputPath, "output", "o", "", "path for the result file")
}
