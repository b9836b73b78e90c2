package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var repairCmd = &cobra.Command{
	Use:   "repair <id> <file>",
	Short: "Store the file of a partially saved resume",
	Args:  cobra.ExactArgs(2),
	RunE:  runRepair,
}

func init() {
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Service.RepairFile(cmd.Context(), args[0], data); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "repaired %s (%d bytes)\n", args[0], len(data))
	return nil
}
