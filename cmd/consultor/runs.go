// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuhammadDevX/ngen-consultor/internal/runledger"
	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded report-generation runs, newest first",
	RunE:  runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	ledger, err := runledger.Open(consultorConfig().Ledger)
	if err != nil {
		return err
	}
	defer ledger.Close()

	runs, err := ledger.List(context.Background(), limit)
	if err != nil {
		return err
	}

	for _, run := range runs {
		line := fmt.Sprintf("%s  %-8s %-6s session=%s",
			run.CreatedAt.Format("2006-01-02 15:04:05"), run.Model, run.Status, run.SessionID)
		if run.Status == types.RunError {
			line += "  error=" + run.Err
		} else {
			line += "  " + run.TechnicalReport
		}
		fmt.Println(line)
	}
	return nil
}

func init() {
	runsCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(runsCmd)
}
