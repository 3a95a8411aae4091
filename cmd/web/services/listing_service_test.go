package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inkwell/cmd/web/contentclient"
)

func listingFixture() []contentclient.Post {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []contentclient.Post{
		{
			ID:        "64b1f0a9c2d3e4f5a6b7c801",
			Title:     "Understanding Goroutines",
			ShortNote: "Concurrency basics",
			Category:  "programming",
			Tags:      []string{"golang", "concurrency"},
			Likes:     5,
			CreatedAt: base.AddDate(0, 0, 1),
		},
		{
			ID:          "64b1f0a9c2d3e4f5a6b7c802",
			Title:       "Design Systems",
			ShortNote:   "Tokens and components",
			Category:    "design",
			FileContent: "<p>A goroutine walks into a bar</p>",
			Likes:       9,
			Comments: []contentclient.Comment{
				{CommentBy: "a", Comment: "nice"},
				{CommentBy: "b", Comment: "great"},
			},
			CreatedAt: base.AddDate(0, 0, 3),
		},
		{
			ID:        "64b1f0a9c2d3e4f5a6b7c803",
			Title:     "CSS Tricks",
			ShortNote: "Layout recipes",
			Category:  "design",
			Likes:     9,
			Comments: []contentclient.Comment{
				{CommentBy: "c", Comment: "thanks"},
			},
			CreatedAt: base.AddDate(0, 0, 2),
		},
	}
}

func TestFilterPostsSearchesAllTextFields(t *testing.T) {
	posts := listingFixture()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"title match case-insensitive", "GOROUTINES", []string{"Understanding Goroutines"}},
		{"short note match", "layout", []string{"CSS Tricks"}},
		{"body content match", "walks into a bar", []string{"Design Systems"}},
		{"tag match", "concur", []string{"Understanding Goroutines"}},
		{"empty search matches all", "", []string{"Understanding Goroutines", "Design Systems", "CSS Tricks"}},
		{"no match", "kubernetes", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterPosts(posts, tt.search, "all")
			titles := make([]string, 0, len(got))
			for _, p := range got {
				titles = append(titles, p.Title)
			}
			if len(tt.want) == 0 {
				assert.Empty(t, titles)
				return
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestFilterPostsByCategory(t *testing.T) {
	posts := listingFixture()

	assert.Len(t, filterPosts(posts, "", "design"), 2)
	assert.Len(t, filterPosts(posts, "", "programming"), 1)
	assert.Len(t, filterPosts(posts, "", "all"), 3)
	assert.Len(t, filterPosts(posts, "", ""), 3)
	assert.Empty(t, filterPosts(posts, "", "tutorial"))
}

func TestSortPosts(t *testing.T) {
	t.Run("latest orders by createdAt desc", func(t *testing.T) {
		posts := listingFixture()
		sortPosts(posts, SortLatest)
		assert.Equal(t, "Design Systems", posts[0].Title)
		assert.Equal(t, "CSS Tricks", posts[1].Title)
		assert.Equal(t, "Understanding Goroutines", posts[2].Title)
	})

	t.Run("trending orders by likes desc and is stable", func(t *testing.T) {
		posts := listingFixture()
		sortPosts(posts, SortTrending)
		// 동률(9) 은 fetch 순서 유지
		assert.Equal(t, "Design Systems", posts[0].Title)
		assert.Equal(t, "CSS Tricks", posts[1].Title)
		assert.Equal(t, "Understanding Goroutines", posts[2].Title)
	})

	t.Run("popular orders by comment count desc", func(t *testing.T) {
		posts := listingFixture()
		sortPosts(posts, SortPopular)
		assert.Equal(t, "Design Systems", posts[0].Title)
		assert.Equal(t, "CSS Tricks", posts[1].Title)
	})

	t.Run("unknown key keeps fetch order", func(t *testing.T) {
		posts := listingFixture()
		sortPosts(posts, "alphabetical")
		assert.Equal(t, "Understanding Goroutines", posts[0].Title)
	})
}

func TestBrowseAppliesFilterAndSort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/all", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": listingFixture()})
	}))
	defer srv.Close()

	svc := NewListingService(contentclient.New(srv.URL, 5*time.Second))
	page, err := svc.Browse(context.Background(), BrowseInput{Category: "design", Sort: SortLatest})
	assert.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "Design Systems", page.Data[0].Title)
	assert.Equal(t, 2, page.Data[0].CommentCount)
	assert.Equal(t, "design", page.Category)
}

func TestSummaryAggregatesCounters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": listingFixture()})
	}))
	defer srv.Close()

	svc := NewListingService(contentclient.New(srv.URL, 5*time.Second))
	sum, err := svc.Summary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, sum.TotalPosts)
	assert.Equal(t, 23, sum.TotalLikes)
	assert.Equal(t, 3, sum.TotalComments)
}
