package coverage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agentkit-io/agentkit/pkg/analysis/coverage"
	"github.com/agentkit-io/agentkit/pkg/shared/config"
	"github.com/agentkit-io/agentkit/pkg/shared/files"
)

const (
	formatLCOV      = "lcov"
	formatCobertura = "cobertura"
	formatIstanbul  = "istanbul"
)

// validateCoverageArgs checks flags and positional arguments, resolves the
// report format and applies config-level defaults.
func validateCoverageArgs(opts *RunOptionsCoverage, args []string, cfg *config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one coverage report path is required")
	}
	opts.InputFile = args[0]

	if err := files.ValidatePath(opts.InputFile); err != nil {
		return fmt.Errorf("coverage report is not readable: %w", err)
	}

	if opts.Format == "" {
		opts.Format = inferFormat(opts.InputFile)
		if opts.Format == "" {
			return fmt.Errorf("cannot infer coverage format from %q, use --format", opts.InputFile)
		}
	}
	switch opts.Format {
	case formatLCOV, formatCobertura, formatIstanbul:
	default:
		return fmt.Errorf("unknown format %q, expected lcov, cobertura or istanbul", opts.Format)
	}

	if opts.Threshold == 0 {
		if cfg != nil && cfg.Analysis.CoverageThreshold > 0 {
			opts.Threshold = cfg.Analysis.CoverageThreshold
		} else {
			opts.Threshold = coverage.DefaultThreshold
		}
	}
	if opts.Threshold < 0 || opts.Threshold > 100 {
		return fmt.Errorf("threshold %v is outside [0, 100]", opts.Threshold)
	}

	return nil
}

// inferFormat guesses the report format from the file name.
func inferFormat(path string) string {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(base, ".info") || strings.HasSuffix(base, ".lcov") || base == "lcov.info":
		return formatLCOV
	case strings.HasSuffix(base, ".xml"):
		return formatCobertura
	case strings.HasSuffix(base, ".json"):
		return formatIstanbul
	default:
		return ""
	}
}
