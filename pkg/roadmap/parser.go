package roadmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	fenceOpen  = "```json"
	fenceClose = "```"
)

// StripFences removes a leading ```json and a trailing ``` marker, together
// with surrounding whitespace. Text without fences is only trimmed.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, fenceOpen)
	s = strings.TrimSuffix(s, fenceClose)
	return strings.TrimSpace(s)
}

// Parse decodes sanitized completion content and validates it.
// It returns *ParseError for invalid JSON and *SchemaError for a wrong shape.
func Parse(content string) (Roadmap, error) {
	var raw any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return Roadmap{}, &ParseError{Msg: err.Error(), Cause: err}
	}
	return decode([]byte(content))
}

func decode(data []byte) (Roadmap, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Roadmap{}, &SchemaError{Reason: "expected a JSON object"}
	}

	var rm Roadmap
	if err := decodeField(fields, "prerequisites", &rm.Prerequisites); err != nil {
		return Roadmap{}, err
	}
	if err := decodeField(fields, "mainSteps", &rm.MainSteps); err != nil {
		return Roadmap{}, err
	}
	if err := decodeField(fields, "resources", &rm.Resources); err != nil {
		return Roadmap{}, err
	}
	if err := Validate(rm); err != nil {
		return Roadmap{}, err
	}
	return rm, nil
}

func decodeField(fields map[string]json.RawMessage, key string, dst any) error {
	v, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return &SchemaError{Field: key, Reason: "missing"}
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return &SchemaError{Field: key, Reason: fmt.Sprintf("expected an array of objects: %v", err)}
	}
	return nil
}

// Validate checks the exact item counts of rm.
func Validate(rm Roadmap) error {
	if rm.Prerequisites == nil {
		return &SchemaError{Field: "prerequisites", Reason: "missing"}
	}
	if rm.MainSteps == nil {
		return &SchemaError{Field: "mainSteps", Reason: "missing"}
	}
	if rm.Resources == nil {
		return &SchemaError{Field: "resources", Reason: "missing"}
	}
	if err := checkCount("prerequisites", len(rm.Prerequisites), PrerequisitesCount); err != nil {
		return err
	}
	if err := checkCount("mainSteps", len(rm.MainSteps), MainStepsCount); err != nil {
		return err
	}
	return checkCount("resources", len(rm.Resources), ResourcesCount)
}

func checkCount(field string, got, want int) error {
	if got != want {
		return &SchemaError{Field: field, Reason: fmt.Sprintf("expected %d items, got %d", want, got)}
	}
	return nil
}
