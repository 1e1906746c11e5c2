package rules

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/docshelf/docshelf/constants"
)

// actionParamSchemas constrains the params payload per action type.
var actionParamSchemas = map[string]string{
	constants.ActionAddTag: `{
		"type": "object",
		"properties": {"tag": {"type": "string", "minLength": 1}},
		"required": ["tag"],
		"additionalProperties": false
	}`,
	constants.ActionSetCategory: `{
		"type": "object",
		"properties": {"category": {"type": "string", "minLength": 1}},
		"required": ["category"],
		"additionalProperties": false
	}`,
	constants.ActionSetCorrespondent: `{
		"type": "object",
		"properties": {"correspondent": {"type": "string", "minLength": 1}},
		"required": ["correspondent"],
		"additionalProperties": false
	}`,
}

var compiledSchemas = compileActionSchemas()

func compileActionSchemas() map[string]*jsonschema.Schema {
	out := make(map[string]*jsonschema.Schema, len(actionParamSchemas))
	for actionType, src := range actionParamSchemas {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("schema.json", bytes.NewReader([]byte(src))); err != nil {
			panic(fmt.Sprintf("rules: add schema for %s: %v", actionType, err))
		}
		schema, err := compiler.Compile("schema.json")
		if err != nil {
			panic(fmt.Sprintf("rules: compile schema for %s: %v", actionType, err))
		}
		out[actionType] = schema
	}
	return out
}

// validateActionParams checks an action's params against the schema for
// its type.
func validateActionParams(actionType string, params json.RawMessage) error {
	schema, ok := compiledSchemas[actionType]
	if !ok {
		return fmt.Errorf("unknown action type: %s", actionType)
	}
	var v any
	if err := json.Unmarshal(params, &v); err != nil {
		return fmt.Errorf("unmarshal params: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("params do not match schema: %w", err)
	}
	return nil
}
