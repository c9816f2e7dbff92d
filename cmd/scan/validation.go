package scan

import (
	"fmt"

	"github.com/agentkit-io/agentkit/pkg/shared/files"
)

const (
	presetSecurity = "security"
	presetTodos    = "todos"
	presetDebug    = "debug"
)

var validFormats = map[string]struct{}{
	"plain": {},
	"json":  {},
	"sarif": {},
}

// validateScanArgs checks flags and positional arguments for the scan command.
func validateScanArgs(opts *RunOptionsScan, args []string) error {
	if opts.InputFile == "" {
		if len(args) != 1 {
			return fmt.Errorf("either --input-file or exactly one source path argument is required")
		}
		opts.InputFile = args[0]
	} else if len(args) > 0 {
		return fmt.Errorf("--input-file and a positional path are mutually exclusive")
	}

	if err := files.ValidatePath(opts.InputFile); err != nil {
		return fmt.Errorf("input file is not readable: %w", err)
	}

	if _, ok := validFormats[opts.Format]; !ok {
		return fmt.Errorf("unknown format %q, expected plain, json or sarif", opts.Format)
	}

	switch opts.Preset {
	case "", presetSecurity, presetTodos, presetDebug:
	default:
		return fmt.Errorf("unknown preset %q, expected security, todos or debug", opts.Preset)
	}

	if opts.Preset != "" && len(opts.Rules) > 0 {
		return fmt.Errorf("--preset and --rules are mutually exclusive")
	}

	return nil
}
