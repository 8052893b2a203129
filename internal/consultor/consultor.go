// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package consultor orchestrates the scripted interview and the multi-model
// report fan-out. All natural-language behavior is delegated to external chat
// backends; this package supplies the script, assembles context, and files
// the resulting reports.
package consultor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/MuhammadDevX/ngen-consultor/internal/agent"
	"github.com/MuhammadDevX/ngen-consultor/internal/questioner"
	"github.com/MuhammadDevX/ngen-consultor/internal/report"
	"github.com/MuhammadDevX/ngen-consultor/internal/runledger"
	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

// Analyst pairs a model name with its delegate backend. Fan-out processes
// analysts in slice order.
type Analyst struct {
	Name    string
	Backend agent.Backend
}

// Consultor drives an interview session against the chat backend and fans a
// finished transcript out to the analyst backends.
type Consultor struct {
	// QuestionerPath is the Markdown interview script.
	QuestionerPath string

	// Persona is the consultor persona text woven into the chat system prompt.
	Persona string

	// Chat is the conversational delegate for the interview.
	Chat agent.Backend

	// Analysts are the report-generation delegates, processed in order.
	Analysts []Analyst

	// Assembler writes the report documents.
	Assembler report.Assembler

	// Ledger records run outcomes; nil disables recording.
	Ledger *runledger.Ledger

	// Progress receives per-model progress lines; nil discards them.
	Progress io.Writer
}

// StartConversation runs one interview turn: it loads the interview script,
// frames the numbered section list around the user's message, and delegates
// to the chat backend. A script retrieval failure is returned as a plain
// "Error: ..." string with a nil error, per the degrade-to-text contract;
// delegate failures surface as errors. The user turn and the reply are
// appended to the session transcript, and the session's project data is
// refreshed from the classified script sections.
func (c *Consultor) StartConversation(ctx context.Context, sess *Session, userMessage string) (string, error) {
	content, err := questioner.ExtractContent(c.QuestionerPath)
	if err != nil {
		return "Error: " + err.Error(), nil
	}

	reqs := questioner.Classify(content.Sections)
	sess.Project.Overview = reqs.Overview
	sess.Project.TechnicalRequirements = reqs.Technical
	sess.Project.FinancialRequirements = reqs.Financial

	system, err := renderChatSystem(c.Persona)
	if err != nil {
		return "", err
	}
	turn, err := renderChatContext(questioner.SectionTitles(content), userMessage)
	if err != nil {
		return "", err
	}

	messages := []types.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: turn},
	}
	reply, err := c.Chat.Complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("chat delegation: %w", err)
	}

	sess.append("user", userMessage)
	sess.append("assistant", reply)
	return reply, nil
}

// GenerateReports fans the session transcript out to every analyst backend
// and writes a technical and a financial report per model. Report generation
// is a side query: it does not change the session state. Each model's
// computation is independent; a failure becomes that model's result value and
// the remaining models still proceed. Outcomes are recorded in the run
// ledger when one is attached.
func (c *Consultor) GenerateReports(ctx context.Context, sess *Session) map[string]types.ModelResult {
	contextBlock := transcriptBlock(sess.Messages)

	results := make(map[string]types.ModelResult, len(c.Analysts))
	for _, analyst := range c.Analysts {
		result, err := c.generateModelReports(ctx, analyst, contextBlock)
		if err != nil {
			result = types.ModelResult{Err: err.Error()}
		}
		results[analyst.Name] = result
		c.recordRun(ctx, sess.ID, analyst.Name, result)
	}

	return results
}

// generateModelReports runs one analyst delegate and files its two reports.
// A cancelled delegation must not partially write report files, so the
// context is checked again before any write.
func (c *Consultor) generateModelReports(ctx context.Context, analyst Analyst, contextBlock string) (types.ModelResult, error) {
	c.progressf("generating %s reports\n", analyst.Name)

	messages := []types.Message{
		{Role: "system", Content: analystSystemPrompt},
		{Role: "user", Content: contextBlock + reportInstructions},
	}
	reply, err := analyst.Backend.Complete(ctx, messages)
	if err != nil {
		return types.ModelResult{}, fmt.Errorf("delegating to %s: %w", analyst.Name, err)
	}
	if err := ctx.Err(); err != nil {
		return types.ModelResult{}, err
	}

	analysis := agent.ParseAnalysis(reply)
	result := types.ModelResult{Analysis: analysis}

	result.TechnicalReport, err = c.Assembler.Create(analyst.Name, report.Technical, analysis.Technical)
	if err != nil {
		return types.ModelResult{}, err
	}
	result.TechnicalPDF, err = report.RenderPDF(result.TechnicalReport)
	if err != nil {
		return types.ModelResult{}, err
	}

	result.FinancialReport, err = c.Assembler.Create(analyst.Name, report.Financial, analysis.Financial)
	if err != nil {
		return types.ModelResult{}, err
	}
	result.FinancialPDF, err = report.RenderPDF(result.FinancialReport)
	if err != nil {
		return types.ModelResult{}, err
	}

	c.progressf("wrote %s and %s\n", result.TechnicalReport, result.FinancialReport)
	return result, nil
}

// recordRun files one model outcome in the ledger. Ledger failures degrade
// to a progress warning; they never affect the result map.
func (c *Consultor) recordRun(ctx context.Context, sessionID, model string, result types.ModelResult) {
	if c.Ledger == nil {
		return
	}

	run := types.Run{
		ID:              uuid.NewString(),
		SessionID:       sessionID,
		Model:           model,
		Status:          types.RunOK,
		TechnicalReport: result.TechnicalReport,
		FinancialReport: result.FinancialReport,
		Err:             result.Err,
	}
	if result.Failed() {
		run.Status = types.RunError
	}

	if err := c.Ledger.Record(ctx, run); err != nil {
		c.progressf("warning: ledger record failed: %v\n", err)
	}
}

func (c *Consultor) progressf(format string, args ...any) {
	if c.Progress != nil {
		fmt.Fprintf(c.Progress, format, args...)
	}
}

// FormatResults renders the per-model outcome lines for display.
func FormatResults(results map[string]types.ModelResult, order []string) string {
	var b strings.Builder
	for _, name := range order {
		result, ok := results[name]
		if !ok {
			continue
		}
		if result.Failed() {
			fmt.Fprintf(&b, "failed  %s: %s\n", name, result.Err)
			continue
		}
		fmt.Fprintf(&b, "wrote   %s: %s, %s\n", name, result.TechnicalReport, result.FinancialReport)
	}
	return b.String()
}
