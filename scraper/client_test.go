package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testPayload() jobPayload {
	return jobPayload{
		Title:     "Pricing Actuary",
		Company:   "Acme Re",
		Locations: []string{"London"},
		JobType:   "full-time",
	}
}

func TestPostJobSucceedsAfterRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		var got jobPayload
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		if got.Title != "Pricing Actuary" {
			t.Errorf("title = %q", got.Title)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 3, time.Millisecond)
	if err := client.PostJob(context.Background(), testPayload()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestPostJobExhaustsRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 3, time.Millisecond)
	err := client.PostJob(context.Background(), testPayload())
	if !errors.Is(err, ErrRetryExhausted) {
		t.Fatalf("error = %v, want ErrRetryExhausted", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want exactly 3", calls)
	}
}

func TestPostJobRejectionIsNotSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Duplicate","message":"Job already exists"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2, time.Millisecond)
	err := client.PostJob(context.Background(), testPayload())
	if !errors.Is(err, ErrRetryExhausted) {
		t.Fatalf("error = %v, want ErrRetryExhausted", err)
	}
}

func TestPostJobContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, 5, time.Minute)
	err := client.PostJob(ctx, testPayload())
	if err == nil {
		t.Fatal("expected an error after cancellation")
	}
	if errors.Is(err, ErrRetryExhausted) {
		t.Errorf("error = %v, should abort before exhausting retries", err)
	}
}