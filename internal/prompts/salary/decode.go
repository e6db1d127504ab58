package salary

import (
	"encoding/json"
	"strings"

	"github.com/schroedermarius/salaryscope/internal/structured"
)

// ParseReport converts raw model text into a Report.
//
// The text is first passed through structured.CleanModelOutput, then parsed
// as JSON and mapped onto the Report shape. Field names bind
// case-insensitively ("department" and "Department" are equivalent), which
// is more lenient than the wire schema demands. Blank input, malformed JSON,
// and shape mismatches (missing fields, non-numeric AverageSalary, blank
// department names) all return (nil, false); no error crosses this boundary.
//
// A successful decode always carries a non-nil Items slice, so callers can
// distinguish "no usable result" (ok == false) from "zero entries".
func ParseReport(raw string) (*Report, bool) {
	cleaned := structured.CleanModelOutput(raw)
	if cleaned == "" {
		return nil, false
	}

	var wire reportWire
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return nil, false
	}

	report := &Report{Items: make([]DepartmentSalary, 0, len(wire.Items))}
	for _, item := range wire.Items {
		if item.Department == nil || item.AverageSalary == nil {
			return nil, false
		}
		if strings.TrimSpace(*item.Department) == "" {
			return nil, false
		}
		report.Items = append(report.Items, DepartmentSalary{
			Department:    *item.Department,
			AverageSalary: *item.AverageSalary,
		})
	}
	return report, true
}

// Wire shapes use pointers so that absent fields are distinguishable from
// zero values during decoding.
type reportWire struct {
	Items []itemWire `json:"Items"`
}

type itemWire struct {
	Department    *string  `json:"Department"`
	AverageSalary *float64 `json:"AverageSalary"`
}
