package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-viewer/internal/resumes"
)

var getOut string

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a saved resume",
	Long:  "Prints the record and its display summary as JSON. With --out the file content is written to that path.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringVarP(&getOut, "out", "o", "", "Write the stored file to this path")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	res, err := app.Service.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if getOut != "" {
		if err := os.WriteFile(getOut, res.File, 0o644); err != nil {
			return fmt.Errorf("write file: %w", err)
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		resumes.Record
		Summary resumes.Summary `json:"summary"`
	}{res.Record, res.Record.Analysis.Summary()})
}
