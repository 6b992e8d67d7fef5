package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"

	"github.com/mihikajadhav02/NiraCare/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		LLMProvider:  "gemini",
		Model:        "gemini-2.5-flash",
		BackendURL:   baseURL,
		MaxTokens:    1024,
		TimeoutSecs:  5,
		GoogleAPIKey: "test-key",
	}
}

func TestGeminiGenerate(t *testing.T) {
	var gotPath string
	var gotBody geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if key := r.Header.Get("x-goog-api-key"); key != "test-key" {
			t.Errorf("api key header = %q", key)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"symptoms\": []}"}]}, "finishReason": "STOP"}]}`))
	}))
	defer srv.Close()

	m := NewGeminiModel(testConfig(srv.URL))
	msg, err := m.Generate(context.Background(), []*schema.Message{
		schema.SystemMessage("You are a medical intake assistant."),
		schema.UserMessage("I have headaches."),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.HasSuffix(gotPath, "/models/gemini-2.5-flash:generateContent") {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotBody.SystemInstruction == nil || gotBody.SystemInstruction.Parts[0].Text != "You are a medical intake assistant." {
		t.Fatalf("system instruction not threaded: %+v", gotBody.SystemInstruction)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Role != "user" {
		t.Fatalf("contents = %+v", gotBody.Contents)
	}
	if msg.Role != schema.Assistant || msg.Content != `{"symptoms": []}` {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestGeminiGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded"}}`))
	}))
	defer srv.Close()

	m := NewGeminiModel(testConfig(srv.URL))
	_, err := m.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	if err == nil {
		t.Fatal("expected error on 429")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error should carry the status code: %v", err)
	}
}

func TestGeminiGenerateNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	m := NewGeminiModel(testConfig(srv.URL))
	_, err := m.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	if err == nil {
		t.Fatal("expected error on empty candidates")
	}
}

func TestGeminiGenerateMissingKey(t *testing.T) {
	cfg := testConfig("http://localhost:0")
	cfg.GoogleAPIKey = ""
	m := NewGeminiModel(cfg)
	_, err := m.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	if err == nil {
		t.Fatal("expected error without api key")
	}
}
