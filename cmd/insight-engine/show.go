// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/insight-engine/internal/pipeline"
)

var showCmd = &cobra.Command{
	Use:   "show <rank-file>",
	Short: "Display a previously saved rank file",
	Long: `Show reads a rank file written by rank --save and prints the ranked
items without re-running the pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	rf, err := pipeline.ReadRankFile(args[0])
	if err != nil {
		return err
	}

	out := pipeline.Output{
		RunID: rf.Summary.RunID,
		Items: rf.Items,
	}
	out.Stats.DupsRemoved = rf.Summary.DupsRemoved

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return pipeline.FormatJSON(out, cmd.OutOrStdout())
	}

	pipeline.FormatTable(out, cmd.OutOrStdout())
	fmt.Printf("run %s at %s\n", rf.Summary.RunID, rf.Summary.Timestamp.Format("2006-01-02 15:04:05"))
	return nil
}

func init() {
	showCmd.Flags().Bool("json", false, "output items as JSON")

	rootCmd.AddCommand(showCmd)
}
