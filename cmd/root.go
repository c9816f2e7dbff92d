package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	coveragecmd "github.com/agentkit-io/agentkit/cmd/coverage"
	detectcmd "github.com/agentkit-io/agentkit/cmd/detect"
	scancmd "github.com/agentkit-io/agentkit/cmd/scan"
	"github.com/agentkit-io/agentkit/cmd/version"
	"github.com/agentkit-io/agentkit/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "agentkit [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Agentkit is a toolbox of code-analysis helpers for review agents.",
		Long: `Agentkit bundles the shared analysis helpers used by the review, test-generation
and analytics agents: source pattern scanning, coverage report parsing, and
repository tech-stack detection.
`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(scancmd.ScanCmd)
	rootCmd.AddCommand(coveragecmd.CoverageCmd)
	rootCmd.AddCommand(detectcmd.DetectCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	version.Init(AppConfig)
	scancmd.Init(AppConfig)
	coveragecmd.Init(AppConfig)
	detectcmd.Init(AppConfig)
}
