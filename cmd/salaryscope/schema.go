package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/cobra"

	"github.com/schroedermarius/salaryscope/internal/prompts/salary"
)

var schemaCheck bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema sent as the response format",
	RunE:  runSchema,
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaCheck, "check", false, "compile the schema and verify strictness rules")
}

func runSchema(cmd *cobra.Command, args []string) error {
	raw := salary.SchemaJSON()

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format schema: %w", err)
	}
	fmt.Fprintln(os.Stdout, pretty.String())

	if !schemaCheck {
		return nil
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}
	if _, err := compiler.Compile("schema.json"); err != nil {
		return fmt.Errorf("schema does not compile: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("schema is not valid JSON: %w", err)
	}
	if err := checkStrictness(doc); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "schema OK")
	return nil
}

// checkStrictness verifies that every object-level schema node declares both
// "required" and "additionalProperties": false, as strict response formats
// demand.
func checkStrictness(node any) error {
	switch n := node.(type) {
	case map[string]any:
		if n["type"] == "object" {
			if _, ok := n["required"]; !ok {
				return fmt.Errorf("object schema node missing \"required\"")
			}
			if ap, ok := n["additionalProperties"]; !ok || ap != false {
				return fmt.Errorf("object schema node missing \"additionalProperties\": false")
			}
		}
		for _, v := range n {
			if err := checkStrictness(v); err != nil {
				return err
			}
		}
	case []any:
		for _, v := range n {
			if err := checkStrictness(v); err != nil {
				return err
			}
		}
	}
	return nil
}
