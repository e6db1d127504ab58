package salary

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func TestSchemaJSONIsValidJSON(t *testing.T) {
	raw := SchemaJSON()

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("schema does not serialize to valid JSON: %v", err)
	}
}

func TestSchemaEveryObjectNodeIsStrict(t *testing.T) {
	var doc any
	if err := json.Unmarshal(SchemaJSON(), &doc); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}

	var check func(node any)
	check = func(node any) {
		switch n := node.(type) {
		case map[string]any:
			if n["type"] == "object" {
				if _, ok := n["required"]; !ok {
					t.Fatalf("object node missing required: %#v", n)
				}
				if ap, ok := n["additionalProperties"]; !ok || ap != false {
					t.Fatalf("object node missing additionalProperties:false: %#v", n)
				}
			}
			for _, v := range n {
				check(v)
			}
		case []any:
			for _, v := range n {
				check(v)
			}
		}
	}
	check(doc)
}

func compileSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(SchemaJSON())); err != nil {
		t.Fatalf("load schema: %v", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	return schema
}

func TestSchemaAcceptsCanonicalPayload(t *testing.T) {
	schema := compileSchema(t)

	payload := `{"Items":[{"Department":"Engineering","AverageSalary":95000.5}]}`
	var doc any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if err := schema.Validate(doc); err != nil {
		t.Fatalf("canonical payload rejected: %v", err)
	}
}

func TestSchemaRejectsDeviantPayloads(t *testing.T) {
	schema := compileSchema(t)

	payloads := map[string]string{
		"missing Items":         `{}`,
		"missing Department":    `{"Items":[{"AverageSalary":1.0}]}`,
		"non-numeric salary":    `{"Items":[{"Department":"Eng","AverageSalary":"high"}]}`,
		"additional top field":  `{"Items":[],"Extra":1}`,
		"additional item field": `{"Items":[{"Department":"Eng","AverageSalary":1.0,"Extra":true}]}`,
	}

	for name, payload := range payloads {
		var doc any
		if err := json.Unmarshal([]byte(payload), &doc); err != nil {
			t.Fatalf("%s: unmarshal payload: %v", name, err)
		}
		if err := schema.Validate(doc); err == nil {
			t.Fatalf("%s: expected validation error, got nil", name)
		}
	}
}

func TestSchemaIdentifiersAreStable(t *testing.T) {
	if SchemaName != "SalaryByDepartmentResponse" {
		t.Fatalf("unexpected schema name: %q", SchemaName)
	}
	if SchemaDescription != "Schema for average salary grouped by department" {
		t.Fatalf("unexpected schema description: %q", SchemaDescription)
	}
}
