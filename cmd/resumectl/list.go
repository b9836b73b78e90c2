package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved resumes, oldest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILE\tTYPE\tSIZE\tUPLOADED")
	for _, rec := range app.Service.List(cmd.Context()) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", rec.ID, rec.FileName, rec.FileType, rec.FileSize, rec.UploadDate.Format(time.RFC3339))
	}
	return w.Flush()
}
