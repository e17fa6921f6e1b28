// Package llmjson decodes JSON replies from language models.
package llmjson

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonschema"

	"hr-assistant/internal/model"
)

// Schema is a compiled JSON Schema.
type Schema = jsonschema.Schema

// Compile compiles a JSON Schema document.
func Compile(schemaJSON string) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile([]byte(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// MustCompile is Compile for package-level schemas.
func MustCompile(schemaJSON string) *Schema {
	s, err := Compile(schemaJSON)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode extracts the JSON value from reply and unmarshals it into T.
func Decode[T any](reply string) (T, error) {
	return DecodeWithSchema[T](reply, nil)
}

// DecodeWithSchema is Decode with validation against schema first. A nil schema skips validation.
func DecodeWithSchema[T any](reply string, schema *Schema) (T, error) {
	var out T
	raw, err := Extract(reply)
	if err != nil {
		return out, err
	}
	if schema != nil {
		if res := schema.ValidateJSON(raw); !res.IsValid() {
			return out, fmt.Errorf("%w: schema validation failed: %v", model.ErrMalformedModelOutput, res.Errors)
		}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", model.ErrMalformedModelOutput, err)
	}
	return out, nil
}

// Extract returns the outermost JSON object or array in reply, with code fences removed.
func Extract(reply string) ([]byte, error) {
	s := stripFences(reply)
	if json.Valid([]byte(s)) {
		return []byte(s), nil
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return nil, fmt.Errorf("%w: no JSON value in reply", model.ErrMalformedModelOutput)
	}
	closer := byte('}')
	if s[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(s, closer)
	if end <= start {
		return nil, fmt.Errorf("%w: unterminated JSON value", model.ErrMalformedModelOutput)
	}
	candidate := []byte(s[start : end+1])
	if !json.Valid(candidate) {
		return nil, fmt.Errorf("%w: invalid JSON", model.ErrMalformedModelOutput)
	}
	return candidate, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		// Drop the language tag line.
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		}
		if j := strings.LastIndex(rest, "```"); j >= 0 {
			rest = rest[:j]
		}
		s = rest
	}
	return strings.TrimSpace(s)
}
