// Package report renders decoded salary results for the console.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/schroedermarius/salaryscope/internal/prompts/salary"
)

// Sort orders entries by department name ascending, case-insensitively.
// Exact-case comparison breaks ties so the order is deterministic.
func Sort(items []salary.DepartmentSalary) {
	sort.Slice(items, func(i, j int) bool {
		a := strings.ToLower(items[i].Department)
		b := strings.ToLower(items[j].Department)
		if a != b {
			return a < b
		}
		return items[i].Department < items[j].Department
	})
}

// FormatSalary renders an average salary with two decimal places.
func FormatSalary(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// RenderTable writes the entries as a sorted table.
func RenderTable(w io.Writer, items []salary.DepartmentSalary) {
	sorted := make([]salary.DepartmentSalary, len(items))
	copy(sorted, items)
	Sort(sorted)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Department", "Average Salary"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, item := range sorted {
		table.Append([]string{item.Department, FormatSalary(item.AverageSalary)})
	}
	table.Render()
}

// RenderMetrics writes the token and duration summary for a call.
func RenderMetrics(w io.Writer, promptTokens, completionTokens, totalTokens int, latencyMs int) {
	fmt.Fprintf(w, "Tokens: %d prompt + %d completion = %d total | Duration: %dms\n",
		promptTokens, completionTokens, totalTokens, latencyMs)
}
