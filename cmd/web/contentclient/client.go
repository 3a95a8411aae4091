package contentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/cmd/web/httpclient"
)

// Client는 원격 블로그 콘텐츠 API를 호출하는 얇은 클라이언트다.
//
// - 모든 응답 바디는 상태 코드와 무관하게 {success, data, message} 봉투로 파싱한다.
// - 비 2xx 응답은 서버 message 를 담은 *APIError 로 정규화한다.
// - 재시도/캐싱 없음. 호출 단위 타임아웃은 공통 http.Client 가 가진 것이 전부다.
//
// baseURL 예: http://localhost:5000/blog
type Client struct {
	base *httpclient.BaseClient
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: httpclient.NewBaseClient(baseURL, timeout),
	}
}

// ErrNotFound 는 단건 조회에서 404 를 받은 경우를 나타낸다.
var ErrNotFound = errors.New("post not found")

// APIError carries the server-reported failure message and HTTP status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// envelope 은 콘텐츠 API 의 공통 응답 형태다.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do 는 요청을 실행하고 봉투를 해석한다. out 이 nil 이 아니면 data 를 그 안에 언마샬한다.
func (c *Client) do(ctx context.Context, method, relPath string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := c.base.NewRequest(ctx, method, relPath, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}

	var env envelope
	// 에러 응답이 JSON 이 아닐 수도 있으므로 디코딩 실패는 그대로 삼키고
	// 상태 코드 기반 fallback 메시지를 사용한다.
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "content API reported failure"
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return err
		}
	}
	return nil
}

// validateID 는 요청을 내보내기 전에 ObjectID hex 형식을 검사한다.
// 원격 저장소가 Mongo 이므로 형식이 깨진 id 는 네트워크 왕복 없이 거른다.
func validateID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("invalid post id %q: %w", id, err)
	}
	return nil
}

// ListAll fetches the full post collection in a single unpaginated call.
func (c *Client) ListAll(ctx context.Context, params ListAllParams) ([]Post, error) {
	q := url.Values{}
	if params.Visibility != "" {
		q.Set("visibility", params.Visibility)
	}
	if params.Category != "" {
		q.Set("category", params.Category)
	}

	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/all", q, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches a single post. Returns ErrNotFound on 404.
func (c *Client) Get(ctx context.Context, id string) (Post, error) {
	if err := validateID(id); err != nil {
		return Post{}, err
	}

	var post Post
	err := c.do(ctx, http.MethodGet, "/"+id, nil, nil, &post)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return Post{}, ErrNotFound
		}
		return Post{}, err
	}
	return post, nil
}

// Create creates a new post and returns the stored record (with its id).
func (c *Client) Create(ctx context.Context, req CreatePostRequest) (Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPost, "/create", nil, req, &post); err != nil {
		return Post{}, err
	}
	return post, nil
}

// Update applies a partial update to a post.
func (c *Client) Update(ctx context.Context, id string, req UpdatePostRequest) error {
	if err := validateID(id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, "/"+id, nil, req, nil)
}

// Delete removes a post permanently. There is no tombstone on either side.
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/"+id, nil, nil, nil)
}

// Publish transitions a post to the published state server-side.
func (c *Client) Publish(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path.Join("/", id, "publish"), nil, nil, nil)
}

type likeRequest struct {
	UserID string `json:"userId"`
}

// AddLike increments the like count on behalf of userID.
func (c *Client) AddLike(ctx context.Context, id, userID string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path.Join("/", id, "like"), nil, likeRequest{UserID: userID}, nil)
}

// RemoveLike decrements the like count on behalf of userID.
func (c *Client) RemoveLike(ctx context.Context, id, userID string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path.Join("/", id, "like"), nil, likeRequest{UserID: userID}, nil)
}

type commentRequest struct {
	CommentBy string `json:"commentBy"`
	Comment   string `json:"comment"`
}

// AddComment appends a comment to a post. The authoritative comment list is
// obtained by re-fetching the post, not from this response.
func (c *Client) AddComment(ctx context.Context, id, commentBy, comment string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path.Join("/", id, "comment"), nil, commentRequest{CommentBy: commentBy, Comment: comment}, nil)
}

// GetStats fetches the aggregate counters for the admin console.
func (c *Client) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "/stats", nil, nil, &stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
