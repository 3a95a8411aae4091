package contentclient

import "time"

// Visibility values the content API stores on a post.
const (
	VisibilityDraft   = "draft"
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

// Post is the wire shape the content API serves. The body can live in one of
// several fields depending on how the post was authored; resolution order is
// handled by the content package, not here.
type Post struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	ShortNote   string     `json:"shortNote,omitempty"`
	HTMLContent string     `json:"htmlContent,omitempty"`
	FileContent string     `json:"fileContent,omitempty"`
	HTMLFile    *HTMLFile  `json:"htmlFile,omitempty"`
	FooterQuote string     `json:"footerQuote,omitempty"`
	Category    string     `json:"category,omitempty"`
	Tags        []string   `json:"tags"`
	Visibility  string     `json:"visibility"`
	IsPublished bool       `json:"isPublished"`
	Likes       int        `json:"likes"`
	Comments    []Comment  `json:"comments"`
	CreatedAt   time.Time  `json:"createdAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// HTMLFile 은 업로드된 본문 파일 참조다. 인라인 콘텐츠가 함께 내려올 수도 있고,
// URL 만 있어서 별도 fetch 가 필요할 수도 있다.
type HTMLFile struct {
	FileContent string `json:"fileContent,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Comment is owned by its parent post; this client never edits or deletes one.
type Comment struct {
	CommentBy string    `json:"commentBy"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats is the aggregate payload of GET /blog/stats.
type Stats struct {
	TotalBlogs     int `json:"totalBlogs"`
	PublishedBlogs int `json:"publishedBlogs"`
	DraftBlogs     int `json:"draftBlogs"`
	TotalLikes     int `json:"totalLikes"`
	TotalComments  int `json:"totalComments"`
}

// CreatePostRequest carries the composer fields for POST /blog/create.
type CreatePostRequest struct {
	Title       string   `json:"title"`
	ShortNote   string   `json:"shortNote"`
	HTMLContent string   `json:"htmlContent"`
	FooterQuote string   `json:"footerQuote"`
	Tags        []string `json:"tags"`
	Visibility  string   `json:"visibility"`
	Category    string   `json:"category"`
}

// UpdatePostRequest is a partial update; zero fields are omitted from the body.
type UpdatePostRequest struct {
	Title       string   `json:"title,omitempty"`
	ShortNote   string   `json:"shortNote,omitempty"`
	HTMLContent string   `json:"htmlContent,omitempty"`
	FooterQuote string   `json:"footerQuote,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Visibility  string   `json:"visibility,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// ListAllParams 는 /blog/all 에 그대로 전달되는 선택적 질의 조건이다.
// 필터링/정렬의 본 구현은 게이트웨이 메모리에서 수행되므로 보통 비워둔다.
type ListAllParams struct {
	Visibility string
	Category   string
}
