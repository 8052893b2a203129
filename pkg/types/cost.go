// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Task is one unit of estimation input: a role and an hour count, optionally
// with a free-text description for heuristic hour estimation.
type Task struct {
	Role        string  `json:"role" yaml:"role"`
	Hours       float64 `json:"hours" yaml:"hours"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// LineItem is one priced task inside a cost summary. TotalCost is always the
// exact product Rate × Hours; an unknown role yields Err set, Rate and
// TotalCost zero, with Role and Hours echoed back.
type LineItem struct {
	Role      string  `json:"role" yaml:"role"`
	Hours     float64 `json:"hours" yaml:"hours"`
	Rate      float64 `json:"rate" yaml:"rate"`
	TotalCost float64 `json:"total_cost" yaml:"total_cost"`

	// Err is the lookup failure message for an unknown role. Unpriced items
	// are excluded from summary totals but remain visible to the caller.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Priced reports whether the item carries a real rate.
func (li LineItem) Priced() bool {
	return li.Err == ""
}

// CostSummary aggregates the successfully priced subset of a task list.
type CostSummary struct {
	// TotalCost and TotalHours sum only items without an error tag.
	TotalCost  float64 `json:"total_cost" yaml:"total_cost"`
	TotalHours float64 `json:"total_hours" yaml:"total_hours"`

	// Breakdown lists the priced items in input order.
	Breakdown []LineItem `json:"breakdown" yaml:"breakdown"`

	// TotalCostFormatted is the currency rendering with thousands separators
	// and two decimals (e.g. "$1,234.50").
	TotalCostFormatted string `json:"total_cost_formatted" yaml:"total_cost_formatted"`

	// TotalHoursFormatted is the hour rendering with one decimal
	// (e.g. "10.0 hours").
	TotalHoursFormatted string `json:"total_hours_formatted" yaml:"total_hours_formatted"`
}
