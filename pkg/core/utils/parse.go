// Package utils provides lenient parsing for configuration and request
// payloads. Criteria files and analysis requests are often hand-written;
// the helpers here accept strict JSON first and progressively fall back
// to repaired JSON and Hjson.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON errors in hand-written input:
// single quotes, unquoted keys, trailing commas, unclosed brackets.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// ParseHJSON parses Human-friendly JSON (comments, unquoted keys,
// optional commas) and returns standard JSON.
func ParseHJSON(input string) (string, error) {
	var result interface{}
	if err := hjson.Unmarshal([]byte(input), &result); err != nil {
		return "", fmt.Errorf("hjson parse: %w", err)
	}
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(jsonBytes), nil
}

// ParseHJSONToStruct parses Hjson directly into a Go struct. Preferred
// when the schema is known.
func ParseHJSONToStruct(input string, schema interface{}) error {
	if err := hjson.Unmarshal([]byte(input), schema); err != nil {
		return fmt.Errorf("hjson unmarshal: %w", err)
	}
	return nil
}

// SmartParse tries multiple strategies to decode input into schema.
// Order of attempts:
//  1. Standard JSON
//  2. JSON repair
//  3. Hjson (most lenient)
//
// Returns the normalized JSON that decoded successfully.
func SmartParse(input string, schema interface{}) (string, error) {
	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return input, nil
	}

	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return repaired, nil
		}
	}

	if converted, err := ParseHJSON(input); err == nil {
		if err := json.Unmarshal([]byte(converted), schema); err == nil {
			return converted, nil
		}
	}

	return "", fmt.Errorf("all parsing strategies failed for input")
}
