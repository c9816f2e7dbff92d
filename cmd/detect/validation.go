package detect

import (
	"fmt"
	"os"
)

// validateDetectArgs checks flags and positional arguments for the detect command.
func validateDetectArgs(opts *RunOptionsDetect, args []string) error {
	if opts.InputFile != "" {
		if len(args) > 0 {
			return fmt.Errorf("--input-file and a repository path are mutually exclusive")
		}
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("either --input-file or exactly one repository path is required")
	}
	opts.RepoPath = args[0]

	info, err := os.Stat(opts.RepoPath)
	if err != nil {
		return fmt.Errorf("repository path is not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("repository path %q is not a directory", opts.RepoPath)
	}
	return nil
}
