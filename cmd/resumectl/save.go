package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-viewer/internal/extract"
	"resume-viewer/internal/resumes"
)

var saveAnalysisFile string

var saveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Save a resume file",
	Long:  "Saves a resume file. The analysis comes from --analysis when given, otherwise from the configured LLM provider.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSave,
}

func init() {
	saveCmd.Flags().StringVarP(&saveAnalysisFile, "analysis", "a", "", "Path to an analysis JSON object (skips extraction)")
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var rawAnalysis []byte
	if saveAnalysisFile != "" {
		rawAnalysis, err = os.ReadFile(saveAnalysisFile)
		if err != nil {
			return fmt.Errorf("read analysis: %w", err)
		}
	}

	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	name := filepath.Base(path)
	up := resumes.Upload{
		Name: name,
		Type: extract.NormalizeMimeType("", name, data),
		Data: data,
	}
	rec, err := app.Service.Upload(cmd.Context(), up, rawAnalysis)
	if err != nil {
		if id, ok := resumes.IsPartialSave(err); ok {
			return fmt.Errorf("%w (run: resumectl repair %s %s)", err, id, path)
		}
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
