package standard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewStandardHTTPClient(t *testing.T) {
	timeout := 10 * time.Second
	client := NewStandardHTTPClient(timeout)

	if client == nil {
		t.Fatal("NewStandardHTTPClient returned nil")
	}
	if client.client.Timeout != timeout {
		t.Errorf("Client timeout = %v, want %v", client.client.Timeout, timeout)
	}
}

func TestGet_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET request, got %s", r.Method)
		}
		if r.Header.Get("User-Agent") != userAgent {
			t.Errorf("User-Agent = %q, want %q", r.Header.Get("User-Agent"), userAgent)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode())
	}
	if resp.Header("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", resp.Header("Content-Type"))
	}
	body, _ := io.ReadAll(resp.Body())
	if string(body) != `{"ok":true}` {
		t.Errorf("body = %q", body)
	}
}

func TestGet_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200 after retries", resp.StatusCode())
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("server called %d times, want 3", calls)
	}
}

func TestGet_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()
	if resp.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", resp.StatusCode())
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("server called %d times, want 1 (no retry on 4xx)", calls)
	}
}

func TestGet_ExhaustedRetriesReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)
	_, err := client.Get(context.Background(), server.URL)

	if err == nil {
		t.Error("Get should return error after exhausting retries")
	}
}

func TestGet_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewStandardHTTPClient(10 * time.Second)
	_, err := client.Get(ctx, server.URL)

	if err == nil {
		t.Error("Get should return error for cancelled context")
	}
}

func TestWithTransport(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTeapot,
			Body:       http.NoBody,
			Header:     http.Header{},
		}, nil
	})

	client := NewStandardHTTPClient(time.Second, WithTransport(rt))
	resp, err := client.Get(context.Background(), "http://example.invalid/")

	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if resp.StatusCode() != http.StatusTeapot {
		t.Errorf("StatusCode = %d, want injected 418", resp.StatusCode())
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
