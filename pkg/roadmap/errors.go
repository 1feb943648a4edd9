package roadmap

import (
	"errors"
	"fmt"
)

// Error kinds as reported to API clients.
const (
	KindRequest = "request"
	KindParse   = "parse"
	KindSchema  = "schema"
)

// RequestError means the completion endpoint could not be reached or did
// not produce a completion.
type RequestError struct {
	Cause error
}

func (e *RequestError) Error() string {
	if e.Cause == nil {
		return "roadmap request failed"
	}
	return "roadmap request failed: " + e.Cause.Error()
}

func (e *RequestError) Unwrap() error { return e.Cause }

// ParseError means the completion content is not valid JSON after fence stripping.
type ParseError struct {
	Msg   string
	Cause error
}

func (e *ParseError) Error() string {
	return "roadmap response is not valid JSON: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.Cause }

// SchemaError means the content is valid JSON but not a roadmap of the required shape.
// Field is empty when the top-level value itself is wrong.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return "invalid roadmap format: " + e.Reason
	}
	return fmt.Sprintf("invalid roadmap format: %s: %s", e.Field, e.Reason)
}

// Kind classifies err as KindRequest, KindParse or KindSchema, or "" for anything else.
func Kind(err error) string {
	var reqErr *RequestError
	var parseErr *ParseError
	var schemaErr *SchemaError
	switch {
	case errors.As(err, &reqErr):
		return KindRequest
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &schemaErr):
		return KindSchema
	default:
		return ""
	}
}

// DisplayMessage is the summary shown to end users for a failed generation.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	if Kind(err) == "" {
		return "An error occurred"
	}
	return "Failed to generate roadmap: " + err.Error()
}
