// Package salary defines the prompt, schema, and decoding for the
// average-salary-by-department analysis.
package salary

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed system.tmpl
var systemPrompt string

//go:embed user.tmpl
var userPromptTmpl string

var userTemplate = template.Must(template.New("user").Parse(userPromptTmpl))

// SystemPrompt returns the system instruction for the analysis call.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt builds the user prompt. The employee data is embedded verbatim;
// only the model interprets it.
func UserPrompt(employeeData string) string {
	var buf bytes.Buffer
	data := struct{ EmployeeData string }{EmployeeData: employeeData}
	if err := userTemplate.Execute(&buf, data); err != nil {
		return userPromptTmpl
	}
	return buf.String()
}
