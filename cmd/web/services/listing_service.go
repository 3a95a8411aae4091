package services

import (
	"context"
	"sort"
	"strings"

	"inkwell/cmd/web/content"
	"inkwell/cmd/web/contentclient"
	"inkwell/cmd/web/dto"
)

// Sort keys for the post list. Anything else keeps fetch order.
const (
	SortLatest   = "latest"   // createdAt 내림차순
	SortTrending = "trending" // likes 내림차순
	SortPopular  = "popular"  // comment 수 내림차순
)

// ListingService encapsulates the post-list view: one unpaginated fetch of the
// full collection, then pure in-memory filtering and sorting per request.
// There is no index and no cache; every call recomputes from scratch.
type ListingService struct {
	client *contentclient.Client
}

func NewListingService(client *contentclient.Client) *ListingService {
	return &ListingService{client: client}
}

type BrowseInput struct {
	Search   string
	Category string // "" 또는 "all" 이면 전체
	Sort     string
}

func (s *ListingService) Browse(ctx context.Context, in BrowseInput) (dto.PostListDTO, error) {
	posts, err := s.client.ListAll(ctx, contentclient.ListAllParams{})
	if err != nil {
		return dto.PostListDTO{}, err
	}

	filtered := filterPosts(posts, in.Search, in.Category)
	sortPosts(filtered, in.Sort)

	out := make([]dto.PostCardDTO, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, mapPostCard(p))
	}
	return dto.PostListDTO{
		Data:     out,
		Total:    len(out),
		Search:   in.Search,
		Category: in.Category,
		Sort:     in.Sort,
	}, nil
}

// Summary 는 홈 화면 상단 카운터용 로컬 집계다.
func (s *ListingService) Summary(ctx context.Context) (dto.ListSummaryDTO, error) {
	posts, err := s.client.ListAll(ctx, contentclient.ListAllParams{})
	if err != nil {
		return dto.ListSummaryDTO{}, err
	}

	sum := dto.ListSummaryDTO{TotalPosts: len(posts)}
	for _, p := range posts {
		sum.TotalLikes += p.Likes
		sum.TotalComments += len(p.Comments)
	}
	return sum, nil
}

// filterPosts applies the free-text and category filters. Text matches
// case-insensitively against title, short note, body content and tags.
func filterPosts(posts []contentclient.Post, search, category string) []contentclient.Post {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]contentclient.Post, 0, len(posts))
	for _, p := range posts {
		if !matchesSearch(p, needle) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p contentclient.Post, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.ShortNote), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(searchableBody(p)), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// searchableBody 는 네트워크 왕복 없이 닿을 수 있는 본문 필드를 고른다.
// 원격 URL 만 있는 포스트는 본문 검색 대상에서 빠진다.
func searchableBody(p contentclient.Post) string {
	if p.FileContent != "" {
		return p.FileContent
	}
	if p.HTMLContent != "" {
		return p.HTMLContent
	}
	if p.HTMLFile != nil {
		return p.HTMLFile.FileContent
	}
	return ""
}

// sortPosts orders in place; stable so equal keys keep fetch order.
func sortPosts(posts []contentclient.Post, key string) {
	switch key {
	case SortLatest:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	case SortTrending:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Likes > posts[j].Likes
		})
	case SortPopular:
		sort.SliceStable(posts, func(i, j int) bool {
			return len(posts[i].Comments) > len(posts[j].Comments)
		})
	}
}

func mapPostCard(p contentclient.Post) dto.PostCardDTO {
	body := searchableBody(p)
	if body == "" {
		body = p.ShortNote
	}
	return dto.PostCardDTO{
		ID:           p.ID,
		Title:        p.Title,
		ShortNote:    p.ShortNote,
		Category:     p.Category,
		Tags:         p.Tags,
		Visibility:   p.Visibility,
		IsPublished:  p.IsPublished,
		Likes:        p.Likes,
		CommentCount: len(p.Comments),
		ReadMinutes:  content.EstimateReadMinutes(body),
		CreatedAt:    p.CreatedAt,
	}
}
