// Command resumectl saves, lists and fetches resumes against the configured stores.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-viewer/internal/bootstrap"
	"resume-viewer/internal/shared/config"
	"resume-viewer/internal/shared/telemetry"
)

var newApp = func() (*bootstrap.App, error) {
	return bootstrap.Build(config.Load())
}

var rootCmd = &cobra.Command{
	Use:           "resumectl",
	Short:         "Manage stored resumes",
	Long:          "resumectl saves resume files with their analysis, lists saved resumes, fetches them and repairs partially saved ones.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	defer telemetry.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
