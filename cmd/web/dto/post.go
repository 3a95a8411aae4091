package dto

import "time"

// PostCardDTO is the summary card shape for the post list grid.
// ReadMinutes is derived, not stored (200 words per minute).
type PostCardDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ShortNote    string    `json:"shortNote,omitempty"`
	Category     string    `json:"category,omitempty"`
	Tags         []string  `json:"tags"`
	Visibility   string    `json:"visibility"`
	IsPublished  bool      `json:"isPublished"`
	Likes        int       `json:"likes"`
	CommentCount int       `json:"commentCount"`
	ReadMinutes  int       `json:"readMinutes"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PostListDTO echoes the active filters so an empty result is distinguishable
// from a never-loaded list.
type PostListDTO struct {
	Data     []PostCardDTO `json:"data"`
	Total    int           `json:"total"`
	Search   string        `json:"search,omitempty"`
	Category string        `json:"category,omitempty"`
	Sort     string        `json:"sort,omitempty"`
}

// ListSummaryDTO 는 홈 화면 상단 카운터용 로컬 집계다. (원격 stats 와 별개)
type ListSummaryDTO struct {
	TotalPosts    int `json:"totalPosts"`
	TotalLikes    int `json:"totalLikes"`
	TotalComments int `json:"totalComments"`
}

type CommentDTO struct {
	CommentBy string    `json:"commentBy"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostDetailDTO carries the fully resolved post body. BodySource names which
// content source won the fallback chain (inline/legacy/attached/remote/none).
type PostDetailDTO struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	ShortNote   string       `json:"shortNote,omitempty"`
	FooterQuote string       `json:"footerQuote,omitempty"`
	Category    string       `json:"category,omitempty"`
	Tags        []string     `json:"tags"`
	Visibility  string       `json:"visibility"`
	IsPublished bool         `json:"isPublished"`
	Likes       int          `json:"likes"`
	Comments    []CommentDTO `json:"comments"`
	BodyHTML    string       `json:"bodyHtml"`
	BodySource  string       `json:"bodySource"`
	ReadMinutes int          `json:"readMinutes"`
	CreatedAt   time.Time    `json:"createdAt"`
	PublishedAt *time.Time   `json:"publishedAt,omitempty"`
}

// LikeToggleRequest 는 뷰가 들고 있던 현재 좋아요 상태를 그대로 보낸다.
// 게이트웨이는 상태를 저장하지 않으므로 낙관적 갱신의 기준값이 필요하다.
type LikeToggleRequest struct {
	UserID string `json:"userId"`
	Liked  bool   `json:"liked"`
	Likes  int    `json:"likes"`
}

// LikeStateDTO is the optimistic result, returned before the remote write lands.
type LikeStateDTO struct {
	PostID string `json:"postId"`
	Likes  int    `json:"likes"`
	Liked  bool   `json:"liked"`
}

// ShareLinksDTO 는 공유 모달이 쓰는 플랫폼별 공유 URL 묶음이다.
// URL 은 사이트의 포스트 주소이고 나머지는 그 주소를 실은 인텐트 링크다.
type ShareLinksDTO struct {
	URL      string `json:"url"`
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
	Facebook string `json:"facebook"`
	WhatsApp string `json:"whatsapp"`
}

// CommentForm is the detail view's comment submission.
type CommentForm struct {
	CommentBy string `json:"commentBy"`
	Comment   string `json:"comment"`
}
