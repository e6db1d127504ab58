package salary

import "encoding/json"

// Stable identifiers sent to the provider as part of the response format.
const (
	SchemaName        = "SalaryByDepartmentResponse"
	SchemaDescription = "Schema for average salary grouped by department"
)

// ResponseSchema is the JSON schema for the salary aggregation output.
// Strict response formats require every object node to declare both
// "required" and "additionalProperties": false, including nested array
// item schemas; the provider rejects the schema otherwise.
var ResponseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"Items": map[string]any{
			"type":        "array",
			"description": "One entry per department",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"Department": map[string]any{
						"type":        "string",
						"description": "Department name",
					},
					"AverageSalary": map[string]any{
						"type":        "number",
						"description": "Average salary across the department's employees",
					},
				},
				"required":             []string{"Department", "AverageSalary"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []string{"Items"},
	"additionalProperties": false,
}

// SchemaJSON returns the schema document serialized for the wire.
func SchemaJSON() json.RawMessage {
	data, err := json.Marshal(ResponseSchema)
	if err != nil {
		// ResponseSchema is a static value of marshalable types.
		panic(err)
	}
	return data
}

// DepartmentSalary is one aggregated entry of the model's answer.
type DepartmentSalary struct {
	Department    string  `json:"Department"`
	AverageSalary float64 `json:"AverageSalary"`
}

// Report is the typed result of a successful decode. Items is never nil,
// though it may be empty.
type Report struct {
	Items []DepartmentSalary `json:"Items"`
}
