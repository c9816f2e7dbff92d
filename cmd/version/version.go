package version

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentkit-io/agentkit/pkg/shared/config"
)

var (
	AppConfig     *config.Config
	CoreVersion   = "unknown"
	GolangVersion = "unknown"
	BuildTime     = "unknown"
)

// Versions holds the build metadata reported by the version command.
type Versions struct {
	CoreVersion   string `json:"core_version"`
	GolangVersion string `json:"golang_version"`
	BuildTime     string `json:"build_time"`
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// NewVersionCmd returns the version subcommand.
func NewVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:          "version",
		Short:        "Print build version information",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := Versions{
				CoreVersion:   CoreVersion,
				GolangVersion: golangVersion(),
				BuildTime:     BuildTime,
			}
			if asJSON {
				data, err := json.MarshalIndent(v, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "agentkit %s (go %s, built %s)\n", v.CoreVersion, v.GolangVersion, v.BuildTime)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}

func golangVersion() string {
	if GolangVersion != "unknown" {
		return GolangVersion
	}
	return runtime.Version()
}
