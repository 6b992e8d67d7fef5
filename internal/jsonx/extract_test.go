package jsonx

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractObjectPlain(t *testing.T) {
	obj, err := ExtractObject(`{"symptoms": []}`)
	if err != nil {
		t.Fatalf("ExtractObject: %v", err)
	}
	if obj != `{"symptoms": []}` {
		t.Fatalf("unexpected object: %s", obj)
	}
}

func TestExtractObjectCodeFence(t *testing.T) {
	raw := "```json\n{\"questions\": [\"How long?\"]}\n```"
	obj, err := ExtractObject(raw)
	if err != nil {
		t.Fatalf("ExtractObject: %v", err)
	}
	if obj != `{"questions": ["How long?"]}` {
		t.Fatalf("unexpected object: %s", obj)
	}
}

func TestExtractObjectStrayProse(t *testing.T) {
	raw := "Here is the structured output you asked for:\n{\"score\": 8}\nLet me know if you need anything else."
	obj, err := ExtractObject(raw)
	if err != nil {
		t.Fatalf("ExtractObject: %v", err)
	}
	if obj != `{"score": 8}` {
		t.Fatalf("unexpected object: %s", obj)
	}
}

func TestExtractObjectNoObject(t *testing.T) {
	_, err := ExtractObject("I'm sorry, I can't help with that.")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Raw == "" {
		t.Fatalf("ParseError should carry the raw response")
	}
}

func TestExtractObjectInvalidJSON(t *testing.T) {
	_, err := ExtractObject(`{"score": }`)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestUnmarshal(t *testing.T) {
	var out struct {
		Questions []string `json:"questions"`
	}
	raw := "```\n{\"questions\": [\"Since when?\", \"How often?\"]}\n```"
	if err := Unmarshal(raw, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out.Questions) != 2 || out.Questions[0] != "Since when?" {
		t.Fatalf("unexpected questions: %v", out.Questions)
	}
}

func TestUnmarshalTypeMismatch(t *testing.T) {
	var out struct {
		Score int `json:"score"`
	}
	err := Unmarshal(`{"score": "high"}`, &out)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParseErrorTruncatesRaw(t *testing.T) {
	raw := strings.Repeat("x", 1000)
	_, err := ExtractObject(raw)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(err.Error()) > 300 {
		t.Fatalf("error message should truncate the raw response, got %d bytes", len(err.Error()))
	}
}
