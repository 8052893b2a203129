// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/MuhammadDevX/ngen-consultor/internal/agent"
	"github.com/MuhammadDevX/ngen-consultor/internal/consultor"
	"github.com/MuhammadDevX/ngen-consultor/internal/questioner"
	"github.com/MuhammadDevX/ngen-consultor/internal/report"
	"github.com/MuhammadDevX/ngen-consultor/internal/runledger"
	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate technical and financial reports from a transcript",
	Long: `Report loads a speaker-tagged conversation transcript (YAML list of
{role, content} entries), fans it out to every configured analyst model, and
writes a technical and a financial report document per model, each with a
derived PDF. One model failing does not stop the others; per-model outcomes
are printed and recorded in the run ledger.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	transcriptPath, _ := cmd.Flags().GetString("transcript")
	if transcriptPath == "" {
		return fmt.Errorf("--transcript is required")
	}

	messages, err := loadTranscript(transcriptPath)
	if err != nil {
		return err
	}

	cfg := consultorConfig()
	opts := backendOptions(cfg)

	var analysts []consultor.Analyst
	var order []string
	for _, model := range cfg.Agent.AnalystModels {
		backend, err := agent.New(model, opts)
		if err != nil {
			return err
		}
		analysts = append(analysts, consultor.Analyst{Name: model.Name, Backend: backend})
		order = append(order, model.Name)
	}
	if len(analysts) == 0 {
		return fmt.Errorf("no analyst models configured")
	}

	c := &consultor.Consultor{
		QuestionerPath: cfg.Questioner.QuestionerPath,
		Persona:        questioner.LoadPersona(cfg.Questioner.PersonaPath),
		Analysts:       analysts,
		Assembler:      report.Assembler{ReportsDir: cfg.Report.ReportsDir},
		Progress:       os.Stderr,
	}

	ledger, err := runledger.Open(cfg.Ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run ledger unavailable: %v\n", err)
	} else {
		c.Ledger = ledger
		defer ledger.Close()
	}

	sess := consultor.NewSession()
	sess.Messages = messages

	results := c.GenerateReports(context.Background(), sess)
	fmt.Print(consultor.FormatResults(results, order))
	return nil
}

// loadTranscript reads a YAML transcript file.
func loadTranscript(path string) ([]types.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript %s: %w", path, err)
	}

	var messages []types.Message
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("parsing transcript %s: %w", path, err)
	}
	return messages, nil
}

func init() {
	reportCmd.Flags().String("transcript", "", "YAML transcript file of {role, content} entries")

	rootCmd.AddCommand(reportCmd)
}
