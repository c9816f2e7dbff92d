package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"

	"github.com/agentkit-io/agentkit/pkg/analysis/patterns"
	"github.com/agentkit-io/agentkit/pkg/shared/config"
	"github.com/agentkit-io/agentkit/pkg/shared/files"
)

// newMatcherFromConfig overlays the config's custom patterns on the base
// table. Custom entries come out of YAML as loose maps and are firmed up
// into rules with mapstructure.
func newMatcherFromConfig(cfg *config.Config) (*patterns.Matcher, error) {
	var custom []patterns.Rule
	for i, raw := range cfg.Analysis.CustomPatterns {
		var rule patterns.Rule
		if err := mapstructure.Decode(raw, &rule); err != nil {
			return nil, fmt.Errorf("custom pattern %d does not decode: %w", i, err)
		}
		custom = append(custom, rule)
	}
	return patterns.NewMatcher(custom...)
}

// renderMatches writes matches to stdout or the output path in the
// requested format.
func renderMatches(cmd *cobra.Command, matches []patterns.Match, opts *RunOptionsScan) error {
	switch opts.Format {
	case "sarif":
		report, err := patterns.ToSARIF(matches, opts.InputFile)
		if err != nil {
			return err
		}
		if opts.OutputPath != "" {
			return report.WriteFile(opts.OutputPath)
		}
		return report.PrettyWrite(cmd.OutOrStdout())

	case "json":
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal matches: %w", err)
		}
		if opts.OutputPath != "" {
			return files.WriteJsonFile(opts.OutputPath, data)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil

	default:
		var b strings.Builder
		for _, m := range matches {
			fmt.Fprintf(&b, "%s:%d:%d: [%s] %s: %s\n",
				opts.InputFile, m.Line, m.Column, m.Severity, m.Rule, m.Message)
		}
		fmt.Fprintf(&b, "%d issue(s) found\n", len(matches))
		if opts.OutputPath != "" {
			if err := os.WriteFile(opts.OutputPath, []byte(b.String()), 0644); err != nil {
				return fmt.Errorf("failed to write scan output: %w", err)
			}
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), b.String())
		return nil
	}
}
