package jsonx

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports that a model response contained no parsable JSON
// object. Raw holds the response text for diagnosis.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse model output: %v (response was: %s)", e.Err, truncate(e.Raw, 200))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// ExtractObject locates the first well-formed JSON object in a model
// response, tolerating markdown code fences and stray prose around it.
func ExtractObject(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", &ParseError{Raw: raw, Err: fmt.Errorf("no JSON object found")}
	}
	s = s[start : end+1]

	if !json.Valid([]byte(s)) {
		return "", &ParseError{Raw: raw, Err: fmt.Errorf("candidate object is not valid JSON")}
	}
	return s, nil
}

// Unmarshal extracts the first JSON object from raw and decodes it into v.
func Unmarshal(raw string, v any) error {
	obj, err := ExtractObject(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return &ParseError{Raw: raw, Err: err}
	}
	return nil
}
