// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/MuhammadDevX/ngen-consultor/internal/cost"
	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Price project tasks against the hourly rate table",
	Long: `Cost prices tasks against the plain-text rate table (one "<role> <rate>"
per line). A missing or unparsable table degrades to the built-in default
rates; unknown roles yield zero-cost error-tagged line items.`,
}

// --- task subcommand ---

var costTaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Price a single task",
	RunE:  runCostTask,
}

func runCostTask(cmd *cobra.Command, args []string) error {
	role, _ := cmd.Flags().GetString("role")
	hours, _ := cmd.Flags().GetFloat64("hours")
	if role == "" {
		return fmt.Errorf("--role is required")
	}

	estimator := cost.Estimator{RatesPath: consultorConfig().Cost.RatesPath}
	item := estimator.TaskCost(role, hours)
	if !item.Priced() {
		fmt.Println(item.Err)
		return nil
	}

	fmt.Printf("%s: %.1f hours x $%g/hr = $%.2f\n", item.Role, item.Hours, item.Rate, item.TotalCost)
	return nil
}

// --- project subcommand ---

var costProjectCmd = &cobra.Command{
	Use:   "project [tasks.yaml]",
	Short: "Price a task list and print the aggregated breakdown",
	Long: `Project reads a YAML list of {role, hours, description} tasks. Tasks with
zero hours and a description get a heuristic hour estimate before pricing.
Unpriceable tasks are excluded from the totals.`,
	Args: cobra.ExactArgs(1),
	RunE: runCostProject,
}

func runCostProject(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading tasks %s: %w", args[0], err)
	}

	var tasks []types.Task
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return fmt.Errorf("parsing tasks %s: %w", args[0], err)
	}

	for i, task := range tasks {
		if task.Hours == 0 && task.Description != "" {
			tasks[i].Hours = cost.EstimateHours(task.Description, task.Role)
		}
	}

	estimator := cost.Estimator{RatesPath: consultorConfig().Cost.RatesPath}
	summary := estimator.ProjectCost(tasks)

	fmt.Println(cost.FormatBreakdown(summary.Breakdown))
	fmt.Printf("\nTotal: %s over %s\n", summary.TotalCostFormatted, summary.TotalHoursFormatted)
	return nil
}

// --- estimate subcommand ---

var costEstimateCmd = &cobra.Command{
	Use:   "estimate [description...]",
	Short: "Estimate hours for a task description",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCostEstimate,
}

func runCostEstimate(cmd *cobra.Command, args []string) error {
	role, _ := cmd.Flags().GetString("role")
	description := strings.Join(args, " ")

	hours := cost.EstimateHours(description, role)
	fmt.Printf("%.1f hours\n", hours)
	return nil
}

// --- roles subcommand ---

var costRolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles of the current rate table",
	RunE: func(cmd *cobra.Command, args []string) error {
		estimator := cost.Estimator{RatesPath: consultorConfig().Cost.RatesPath}
		for _, role := range estimator.AvailableRoles() {
			fmt.Println(role)
		}
		return nil
	},
}

func init() {
	costTaskCmd.Flags().String("role", "", "engineering role to price")
	costTaskCmd.Flags().Float64("hours", 0, "hours to price")

	costEstimateCmd.Flags().String("role", "", "role name used for category matching")

	costCmd.AddCommand(costTaskCmd)
	costCmd.AddCommand(costProjectCmd)
	costCmd.AddCommand(costEstimateCmd)
	costCmd.AddCommand(costRolesCmd)

	rootCmd.AddCommand(costCmd)
}
