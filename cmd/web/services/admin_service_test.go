package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inkwell/cmd/web/auth"
	"inkwell/cmd/web/contentclient"
	"inkwell/cmd/web/dto"
	"inkwell/cmd/web/notify"
)

func adminFixture() []contentclient.Post {
	return []contentclient.Post{
		{ID: "64b1f0a9c2d3e4f5a6b7c801", Title: "Live Post", Category: "programming", IsPublished: true, Visibility: contentclient.VisibilityPublic},
		{ID: "64b1f0a9c2d3e4f5a6b7c802", Title: "Hidden Gem", ShortNote: "members only", Visibility: contentclient.VisibilityPrivate},
		{ID: "64b1f0a9c2d3e4f5a6b7c803", Title: "Half Finished", Category: "design", Visibility: contentclient.VisibilityDraft},
	}
}

func newAdminService(t *testing.T, handler http.HandlerFunc) (*AdminService, *notify.Center) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	notifier := notify.NewCenter(8, time.Minute)
	client := contentclient.New(srv.URL, 5*time.Second)
	sessions := auth.NewSessionManager("hunter2", "secret-for-test")
	return NewAdminService(client, sessions, notifier), notifier
}

func adminOverviewHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/all":
			json.NewEncoder(w).Encode(map[string]any{"success": true, "data": adminFixture()})
		case "/stats":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"totalBlogs": 3, "publishedBlogs": 1, "draftBlogs": 2, "totalLikes": 10, "totalComments": 4},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}
}

func TestLoginIssuesSessionToken(t *testing.T) {
	svc, _ := newAdminService(t, func(w http.ResponseWriter, r *http.Request) {})

	session, err := svc.Login("hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	_, err = svc.Login("wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidPassword)
}

func TestOverviewDerivesStatusAndCarriesStats(t *testing.T) {
	svc, _ := newAdminService(t, adminOverviewHandler(t))

	overview, err := svc.Overview(context.Background(), AdminFilterInput{})
	assert.NoError(t, err)
	assert.Equal(t, 3, overview.Total)

	statuses := map[string]string{}
	for _, row := range overview.Posts {
		statuses[row.Title] = row.Status
	}
	assert.Equal(t, StatusPublished, statuses["Live Post"])
	assert.Equal(t, StatusPrivate, statuses["Hidden Gem"])
	assert.Equal(t, StatusDraft, statuses["Half Finished"])

	assert.Equal(t, 3, overview.Stats.TotalBlogs)
	assert.Equal(t, 10, overview.Stats.TotalLikes)
}

func TestOverviewFilters(t *testing.T) {
	tests := []struct {
		name string
		in   AdminFilterInput
		want []string
	}{
		{"status published", AdminFilterInput{Status: StatusPublished}, []string{"Live Post"}},
		{"status draft excludes published", AdminFilterInput{Status: StatusDraft}, []string{"Hidden Gem", "Half Finished"}},
		{"status private", AdminFilterInput{Status: StatusPrivate}, []string{"Hidden Gem"}},
		{"category", AdminFilterInput{Category: "design"}, []string{"Half Finished"}},
		{"search hits short note", AdminFilterInput{Search: "members"}, []string{"Hidden Gem"}},
		{"search misses tags on purpose", AdminFilterInput{Search: "programming"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAdminService(t, adminOverviewHandler(t))
			overview, err := svc.Overview(context.Background(), tt.in)
			assert.NoError(t, err)

			titles := make([]string, 0, len(overview.Posts))
			for _, row := range overview.Posts {
				titles = append(titles, row.Title)
			}
			if len(tt.want) == 0 {
				assert.Empty(t, titles)
				return
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestPublishAppliesStateTransition(t *testing.T) {
	svc, notifier := newAdminService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/64b1f0a9c2d3e4f5a6b7c803/publish", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	before := time.Now()
	result, err := svc.Publish(context.Background(), "64b1f0a9c2d3e4f5a6b7c803")
	assert.NoError(t, err)

	// publish 확정 후에는 항상 public + 게시 시각이 함께 간다.
	assert.True(t, result.IsPublished)
	assert.Equal(t, contentclient.VisibilityPublic, result.Visibility)
	assert.False(t, result.PublishedAt.Before(before))

	active := notifier.Active()
	assert.Len(t, active, 1)
	assert.Equal(t, notify.SeveritySuccess, active[0].Severity)
}

func TestPublishFailureLeavesStateAlone(t *testing.T) {
	svc, notifier := newAdminService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "publish blew up"})
	})

	_, err := svc.Publish(context.Background(), "64b1f0a9c2d3e4f5a6b7c803")
	assert.Error(t, err)
	assert.Empty(t, notifier.Active())
}

func TestEditSendsPartialUpdate(t *testing.T) {
	var got contentclient.UpdatePostRequest
	svc, _ := newAdminService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	err := svc.Edit(context.Background(), "64b1f0a9c2d3e4f5a6b7c801", dto.ComposerForm{
		Title: "  Renamed  ",
		Tags:  "a, b",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, []string{"a", "b"}, got.Tags)
}

func TestDeleteIssuesDelete(t *testing.T) {
	svc, _ := newAdminService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	assert.NoError(t, svc.Delete(context.Background(), "64b1f0a9c2d3e4f5a6b7c801"))
}
