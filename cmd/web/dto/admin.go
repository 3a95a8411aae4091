package dto

import "time"

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type AdminSessionDTO struct {
	Token string `json:"token"`
}

// AdminPostRowDTO is one row of the management table. Status is derived from
// isPublished/visibility, not stored: published / private / draft.
type AdminPostRowDTO struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	ShortNote    string     `json:"shortNote,omitempty"`
	Category     string     `json:"category,omitempty"`
	Tags         []string   `json:"tags"`
	Visibility   string     `json:"visibility"`
	IsPublished  bool       `json:"isPublished"`
	Status       string     `json:"status"`
	Likes        int        `json:"likes"`
	CommentCount int        `json:"commentCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
}

type StatsDTO struct {
	TotalBlogs     int `json:"totalBlogs"`
	PublishedBlogs int `json:"publishedBlogs"`
	DraftBlogs     int `json:"draftBlogs"`
	TotalLikes     int `json:"totalLikes"`
	TotalComments  int `json:"totalComments"`
}

type AdminOverviewDTO struct {
	Posts []AdminPostRowDTO `json:"posts"`
	Total int               `json:"total"`
	Stats StatsDTO          `json:"stats"`
}

// PublishResultDTO 는 서버 확인 후 로컬에 적용한 상태 전이를 그대로 돌려준다.
// isPublished=true 는 항상 visibility=public 과 함께 간다.
type PublishResultDTO struct {
	ID          string    `json:"id"`
	IsPublished bool      `json:"isPublished"`
	Visibility  string    `json:"visibility"`
	PublishedAt time.Time `json:"publishedAt"`
}
