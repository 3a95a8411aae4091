package contentclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testPostID = "64b1f0a9c2d3e4f5a6b7c8d9"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/blog", 5*time.Second)
}

func TestGetParsesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/blog/"+testPostID {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"_id": testPostID, "title": "hello", "likes": 3},
		})
	})

	post, err := client.Get(context.Background(), testPostID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID != testPostID || post.Title != "hello" || post.Likes != 3 {
		t.Fatalf("unexpected post: %+v", post)
	}
}

func TestGetReturnsErrNotFoundOn404(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Blog not found"})
	})

	_, err := client.Get(context.Background(), testPostID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestErrorUsesServerMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Title is required"})
	})

	_, err := client.Create(context.Background(), CreatePostRequest{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "Title is required" {
		t.Fatalf("expected server message, got %q", apiErr.Message)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", apiErr.Status)
	}
}

func TestErrorFallsBackToStatusMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>backend blew up</html>"))
	})

	_, err := client.ListAll(context.Background(), ListAllParams{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "HTTP error! status: 500" {
		t.Fatalf("unexpected fallback message %q", apiErr.Message)
	}
}

func TestSuccessFalseOn2xxIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "soft failure"})
	})

	_, err := client.GetStats(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "soft failure" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestInvalidIDFailsWithoutNetworkCall(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	if _, err := client.Get(context.Background(), "not-an-object-id"); err == nil {
		t.Fatalf("expected error for malformed id")
	}
	if err := client.Delete(context.Background(), "123"); err == nil {
		t.Fatalf("expected error for malformed id")
	}
	if calls != 0 {
		t.Fatalf("expected no network calls, got %d", calls)
	}
}

func TestAddLikeSendsUserID(t *testing.T) {
	var got likeRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/blog/"+testPostID+"/like" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	if err := client.AddLike(context.Background(), testPostID, "Anonymous User"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserID != "Anonymous User" {
		t.Fatalf("expected userId in body, got %q", got.UserID)
	}
}

func TestPublishUsesPublishRoute(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/blog/"+testPostID+"/publish" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	if err := client.Publish(context.Background(), testPostID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListAllForwardsFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/blog/all" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("visibility") != VisibilityPublic {
			t.Fatalf("expected visibility query, got %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{}})
	})

	if _, err := client.ListAll(context.Background(), ListAllParams{Visibility: VisibilityPublic}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
