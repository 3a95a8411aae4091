package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inkwell/cmd/web/contentclient"
)

func TestResolveFallbackOrder(t *testing.T) {
	r := NewResolver(time.Second)

	tests := []struct {
		name string
		post contentclient.Post
		kind SourceKind
		html string
	}{
		{
			name: "inline wins over everything",
			post: contentclient.Post{
				FileContent: "<p>inline</p>",
				HTMLContent: "<p>legacy</p>",
				HTMLFile:    &contentclient.HTMLFile{FileContent: "<p>attached</p>"},
			},
			kind: SourceInline,
			html: "<p>inline</p>",
		},
		{
			name: "legacy wins over attached",
			post: contentclient.Post{
				HTMLContent: "<p>legacy</p>",
				HTMLFile:    &contentclient.HTMLFile{FileContent: "<p>attached</p>"},
			},
			kind: SourceLegacy,
			html: "<p>legacy</p>",
		},
		{
			name: "attached file content",
			post: contentclient.Post{
				HTMLFile: &contentclient.HTMLFile{FileContent: "<p>attached</p>"},
			},
			kind: SourceAttached,
			html: "<p>attached</p>",
		},
		{
			name: "nothing at all",
			post: contentclient.Post{},
			kind: SourceNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(context.Background(), tt.post)
			assert.Equal(t, tt.kind, got.Kind)
			if tt.html != "" {
				assert.Equal(t, tt.html, got.HTML)
			} else {
				assert.Contains(t, got.HTML, "No content found")
			}
		})
	}
}

func TestResolveFetchesRemoteURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<body class=\"doc\"><p>from the bucket</p></body>"))
	}))
	defer srv.Close()

	r := NewResolver(time.Second)
	got := r.Resolve(context.Background(), contentclient.Post{
		HTMLFile: &contentclient.HTMLFile{URL: srv.URL},
	})

	assert.Equal(t, SourceRemote, got.Kind)
	assert.Contains(t, got.HTML, "from the bucket")
	// body 래퍼는 벗겨진다
	assert.NotContains(t, got.HTML, "<body")
}

func TestResolveRemoteFailureDegradesToPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	r := NewResolver(time.Second)
	got := r.Resolve(context.Background(), contentclient.Post{
		HTMLFile: &contentclient.HTMLFile{URL: srv.URL},
	})

	assert.Equal(t, SourceRemote, got.Kind)
	assert.Contains(t, got.HTML, "Failed to load blog content")
	assert.Contains(t, got.HTML, "HTTP error! status: 403")
}

func TestSanitizeStripsStyleAndScript(t *testing.T) {
	in := `<style>.x{color:red}</style><body><p class="lead">keep</p><script>alert(1)</script></body>`
	out := Sanitize(in)

	assert.Contains(t, out, `<p class="lead">keep</p>`)
	assert.NotContains(t, out, "<style")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "alert(1)")
	assert.NotContains(t, strings.ToLower(out), "<body")
}

func TestEstimateReadMinutes(t *testing.T) {
	tests := []struct {
		name string
		html string
		want int
	}{
		{"empty body defaults", "", 2},
		{"short body rounds up to one", "<p>three little words</p>", 1},
		{"two hundred words is one minute", "<p>" + strings.Repeat("word ", 200) + "</p>", 1},
		{"two hundred and one rounds up", "<p>" + strings.Repeat("word ", 201) + "</p>", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateReadMinutes(tt.html))
		})
	}
}

func TestPlainTextSkipsScriptAndStyle(t *testing.T) {
	in := `<p>visible</p><script>var hidden = 1;</script><style>.x{}</style>`
	text := PlainText(in)

	assert.Contains(t, text, "visible")
	assert.NotContains(t, text, "hidden")
	assert.NotContains(t, text, ".x{}")
}
