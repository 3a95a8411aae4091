package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"inkwell/cmd/internal/logger"
	"inkwell/cmd/web/contentclient"
)

// SourceKind 는 포스트 본문이 어디에서 왔는지 나타낸다. 본문 필드들의
// 계단식 조건 검사를 뷰에 흩뿌리지 않고, 여기서 한 번만 판별해 태그로 남긴다.
type SourceKind string

const (
	SourceInline   SourceKind = "inline"   // fileContent 필드
	SourceLegacy   SourceKind = "legacy"   // htmlContent 필드 (구버전 작성분)
	SourceAttached SourceKind = "attached" // htmlFile.fileContent
	SourceRemote   SourceKind = "remote"   // htmlFile.url 을 실시간 fetch
	SourceNone     SourceKind = "none"     // 본문 없음, placeholder 렌더
)

// Resolved is the single outcome of body resolution: which source won and the
// renderable (sanitized) HTML. A failed remote fetch still yields a renderable
// placeholder; it never propagates as an error to the view.
type Resolved struct {
	Kind SourceKind `json:"kind"`
	HTML string     `json:"html"`
}

// Resolver fetches attached-file URLs when a post carries only a reference.
type Resolver struct {
	httpClient *http.Client
}

func NewResolver(timeout time.Duration) *Resolver {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Resolver{httpClient: &http.Client{Timeout: timeout}}
}

// Resolve picks the post body by strict fallback order:
// fileContent → htmlContent → htmlFile.fileContent → htmlFile.url → placeholder.
// The returned HTML is already sanitized.
func (r *Resolver) Resolve(ctx context.Context, p contentclient.Post) Resolved {
	if p.FileContent != "" {
		return Resolved{Kind: SourceInline, HTML: Sanitize(p.FileContent)}
	}
	if p.HTMLContent != "" {
		return Resolved{Kind: SourceLegacy, HTML: Sanitize(p.HTMLContent)}
	}
	if p.HTMLFile != nil && p.HTMLFile.FileContent != "" {
		return Resolved{Kind: SourceAttached, HTML: Sanitize(p.HTMLFile.FileContent)}
	}
	if p.HTMLFile != nil && p.HTMLFile.URL != "" {
		body, err := r.fetchRemote(ctx, p.HTMLFile.URL)
		if err != nil {
			logger.ErrorWithFields("failed to fetch post body from url", logger.Fields{
				"post_id": p.ID,
				"url":     p.HTMLFile.URL,
				"error":   err.Error(),
			})
			return Resolved{Kind: SourceRemote, HTML: remoteFailurePlaceholder(err)}
		}
		return Resolved{Kind: SourceRemote, HTML: Sanitize(body)}
	}
	return Resolved{Kind: SourceNone, HTML: noContentPlaceholder()}
}

// fetchRemote 는 업로드 호스트에 저장된 본문 HTML 을 그대로 가져온다.
func (r *Resolver) fetchRemote(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func remoteFailurePlaceholder(err error) string {
	return fmt.Sprintf(`<div class="content-error">
  <p>Failed to load blog content from URL.</p>
  <p>Error: %s</p>
  <p>Please try refreshing the page or contact support if the issue persists.</p>
</div>`, Sanitize(err.Error()))
}

func noContentPlaceholder() string {
	return `<div class="content-missing">
  <p>No content found for this blog post.</p>
  <p>The blog post exists but has no content to display.</p>
</div>`
}
