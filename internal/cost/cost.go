// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cost prices project tasks against the hourly rate table and
// estimates hours for free-text task descriptions.
package cost

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MuhammadDevX/ngen-consultor/internal/rates"
	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

// Estimator prices tasks against the rate table at RatesPath. The table is
// re-read on every lookup; there is no memoization, so external edits to the
// rate file take effect immediately.
type Estimator struct {
	RatesPath string
}

// currencyPrinter renders dollar amounts with thousands separators.
var currencyPrinter = message.NewPrinter(language.English)

// TaskCost prices a single task. An unknown role returns an error-tagged item
// with zero rate and cost, never an error value. Hours are not validated:
// fractional, zero, and negative hours pass through arithmetically.
func (e Estimator) TaskCost(role string, hours float64) types.LineItem {
	table := rates.Load(e.RatesPath)

	rate, ok := table[role]
	if !ok {
		return types.LineItem{
			Role:  role,
			Hours: hours,
			Err:   fmt.Sprintf("role %q not found in hourly rates", role),
		}
	}

	return types.LineItem{
		Role:      role,
		Hours:     hours,
		Rate:      rate,
		TotalCost: rate * hours,
	}
}

// ProjectCost aggregates a task list. Tasks with an empty role or non-positive
// hours are skipped, as are tasks whose role lookup fails; totals cover only
// the successfully priced subset.
func (e Estimator) ProjectCost(tasks []types.Task) types.CostSummary {
	var summary types.CostSummary

	for _, task := range tasks {
		if task.Role == "" || task.Hours <= 0 {
			continue
		}

		item := e.TaskCost(task.Role, task.Hours)
		if !item.Priced() {
			continue
		}

		summary.TotalCost += item.TotalCost
		summary.TotalHours += item.Hours
		summary.Breakdown = append(summary.Breakdown, item)
	}

	summary.TotalCostFormatted = currencyPrinter.Sprintf("$%.2f", summary.TotalCost)
	summary.TotalHoursFormatted = fmt.Sprintf("%.1f hours", summary.TotalHours)
	return summary
}

// AvailableRoles returns the sorted role names of the current rate table.
func (e Estimator) AvailableRoles() []string {
	table := rates.Load(e.RatesPath)

	roles := make([]string, 0, len(table))
	for role := range table {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// FormatBreakdown renders a line-item list for display: one bullet per task
// and a trailing total.
func FormatBreakdown(breakdown []types.LineItem) string {
	if len(breakdown) == 0 {
		return "No tasks to calculate"
	}

	var b strings.Builder
	b.WriteString("Cost Breakdown:\n\n")

	var total float64
	for _, item := range breakdown {
		fmt.Fprintf(&b, "- %s: %.1f hours x $%g/hr = $%.2f\n",
			item.Role, item.Hours, item.Rate, item.TotalCost)
		total += item.TotalCost
	}

	fmt.Fprintf(&b, "\nTotal Cost: $%.2f", total)
	return b.String()
}
