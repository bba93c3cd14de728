package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stayflowhq/stayflow/pkg/config"
)

func TestCompleteJSON_Success(t *testing.T) {
	// Mock completion server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload["response_format"] == nil {
			t.Fatalf("expected response_format directive")
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"language":"en"}`}},
			},
		})
	}))
	defer ts.Close()

	c := NewCompleter(&config.CompletionConfig{APIKey: "test-key", BaseURL: ts.URL, Model: "test-model"})

	out, err := c.CompleteJSON(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if out != `{"language":"en"}` {
		t.Fatalf("unexpected content %s", out)
	}
}

func TestCompleteJSON_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewCompleter(&config.CompletionConfig{APIKey: "test-key", BaseURL: ts.URL})
	if _, err := c.CompleteJSON(context.Background(), nil); err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestNewCompleter_MissingKeyIsDisabled(t *testing.T) {
	c := NewCompleter(&config.CompletionConfig{})
	if _, ok := c.(Disabled); !ok {
		t.Fatalf("expected Disabled completer, got %T", c)
	}
	if _, err := c.CompleteJSON(context.Background(), nil); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
