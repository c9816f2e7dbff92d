package detect

import (
	"github.com/spf13/cobra"

	"github.com/agentkit-io/agentkit/pkg/analysis/techstack"
	"github.com/agentkit-io/agentkit/pkg/shared"
	"github.com/agentkit-io/agentkit/pkg/shared/config"
	"github.com/agentkit-io/agentkit/pkg/shared/files"
	"github.com/agentkit-io/agentkit/pkg/shared/logger"
)

// RunOptionsDetect holds the arguments for the detect command.
type RunOptionsDetect struct {
	RepoPath      string
	InputFile     string
	ReviewContext bool
	OutputPath    string
}

// Global variables for configuration and command arguments
var (
	AppConfig          *config.Config
	detectOptions      RunOptionsDetect
	exampleDetectUsage = `  # Detecting the tech stack of a checked-out repository
  agentkit detect /path/to/repo

  # Detecting from an already-enumerated file list (one path per line)
  agentkit detect --input-file /path/to/changed_files.txt

  # Including reviewer focus areas for the detected stack
  agentkit detect --review-context /path/to/repo`
)

// DetectCmd represents the detect command.
var DetectCmd = &cobra.Command{
	Use:                   "detect [--review-context] [--output PATH] {--input-file PATH | REPO_PATH}",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleDetectUsage,
	Short:                 "Infers the languages, frameworks and tooling of a repository",
	RunE:                  runDetectCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runDetectCommand executes the detect command.
func runDetectCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-detect")

	if err := validateDetectArgs(&detectOptions, args); err != nil {
		logger.Error("invalid detect arguments", "error", err)
		return err
	}

	detector := techstack.New(logger)

	var stack *techstack.Stack
	if detectOptions.InputFile != "" {
		paths, err := files.ReadLines(detectOptions.InputFile)
		if err != nil {
			logger.Error("failed to read file list", "path", detectOptions.InputFile, "error", err)
			return err
		}
		stack = detector.DetectFromFiles(paths)
	} else {
		var err error
		stack, err = detector.Detect(cmd.Context(), detectOptions.RepoPath)
		if err != nil {
			logger.Error("repository scan failed", "path", detectOptions.RepoPath, "error", err)
			return err
		}
	}
	logger.Info("tech stack detected", "technologies", len(stack.All()))

	if detectOptions.OutputPath != "" {
		result := shared.NewResult("detect", detectOptions, stack.ToMap(), nil)
		if err := shared.WriteResult(logger, detectOptions.OutputPath, result); err != nil {
			return err
		}
	}

	renderStackTable(cmd.OutOrStdout(), stack)
	if detectOptions.ReviewContext {
		renderReviewContext(cmd.OutOrStdout(), stack)
	}
	return nil
}

func init() {
	DetectCmd.Flags().StringVarP(&detectOptions.InputFile, "input-file", "i", "", "path to a file listing repository paths, one per line")
	DetectCmd.Flags().BoolVar(&detectOptions.ReviewContext, "review-context", false, "print reviewer focus areas for the detected stack")
	DetectCmd.Flags().StringVarP(&detectOptions.OutputPath, "output", "o", "", "path for the result file")
}
