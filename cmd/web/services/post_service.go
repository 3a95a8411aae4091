package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"inkwell/cmd/internal/logger"
	"inkwell/cmd/web/content"
	"inkwell/cmd/web/contentclient"
	"inkwell/cmd/web/dto"
	"inkwell/cmd/web/notify"
)

const anonymousUser = "Anonymous User"

// likeWriteTimeout bounds the detached background like write.
const likeWriteTimeout = 10 * time.Second

// PostService encapsulates the detail view: single-post fetch with body
// resolution, the optimistic like toggle, comment submission and share links.
// siteURL is the public site origin share links point at.
type PostService struct {
	client   *contentclient.Client
	resolver *content.Resolver
	notifier *notify.Center
	siteURL  string
}

func NewPostService(client *contentclient.Client, resolver *content.Resolver, notifier *notify.Center, siteURL string) *PostService {
	return &PostService{
		client:   client,
		resolver: resolver,
		notifier: notifier,
		siteURL:  strings.TrimRight(siteURL, "/"),
	}
}

// GetDetail loads one post and resolves its renderable body. A failed remote
// body fetch degrades to a placeholder inside Resolve and never errors here.
func (s *PostService) GetDetail(ctx context.Context, id string) (*dto.PostDetailDTO, error) {
	p, err := s.client.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	resolved := s.resolver.Resolve(ctx, p)
	d := mapPostDetail(p, resolved)
	return &d, nil
}

type ToggleLikeInput struct {
	PostID string
	UserID string
	Liked  bool // 호출 시점의 토글 상태
	Likes  int  // 호출 시점의 카운트
}

// ToggleLike applies the like optimistically: the adjusted count and state are
// returned immediately while the remote write runs in the background on a
// detached context (navigating away must not abort it). A remote failure is
// reported through the notification channel and the optimistic state stands.
func (s *PostService) ToggleLike(ctx context.Context, in ToggleLikeInput) dto.LikeStateDTO {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		userID = anonymousUser
	}

	result := dto.LikeStateDTO{PostID: in.PostID}
	if in.Liked {
		result.Likes = in.Likes - 1
		result.Liked = false
	} else {
		result.Likes = in.Likes + 1
		result.Liked = true
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), likeWriteTimeout)
		defer cancel()

		var err error
		if in.Liked {
			err = s.client.RemoveLike(bgCtx, in.PostID, userID)
		} else {
			err = s.client.AddLike(bgCtx, in.PostID, userID)
		}
		if err != nil {
			logger.ErrorWithFields("like update failed", logger.Fields{
				"post_id": in.PostID,
				"user_id": userID,
				"error":   err.Error(),
			})
			s.notifier.Error("Failed to update like")
		}
	}()

	return result
}

type AddCommentInput struct {
	PostID    string
	CommentBy string
	Comment   string
}

// AddComment validates, submits, then re-fetches the whole post so the caller
// gets the authoritative comment list rather than a local append.
func (s *PostService) AddComment(ctx context.Context, in AddCommentInput) (*dto.PostDetailDTO, error) {
	if strings.TrimSpace(in.CommentBy) == "" || strings.TrimSpace(in.Comment) == "" {
		return nil, &ValidationError{Message: "Please provide both name and comment"}
	}

	if err := s.client.AddComment(ctx, in.PostID, in.CommentBy, in.Comment); err != nil {
		return nil, err
	}
	return s.GetDetail(ctx, in.PostID)
}

// ShareLinks builds the platform share URLs for one post.
func (s *PostService) ShareLinks(ctx context.Context, id string) (dto.ShareLinksDTO, error) {
	p, err := s.client.Get(ctx, id)
	if err != nil {
		return dto.ShareLinksDTO{}, err
	}

	postURL := s.siteURL + "/blog/" + p.ID
	shareText := p.Title + " - Check out this amazing blog post!"

	return dto.ShareLinksDTO{
		URL:      postURL,
		Twitter:  "https://twitter.com/intent/tweet?text=" + encodeComponent(shareText) + "&url=" + encodeComponent(postURL),
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + encodeComponent(postURL),
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + encodeComponent(postURL),
		WhatsApp: "https://wa.me/?text=" + encodeComponent(shareText+" "+postURL),
	}, nil
}

// encodeComponent 는 공백을 %20 으로 인코딩한다. (QueryEscape 의 '+' 는
// 인텐트 링크에서 리터럴 플러스로 읽힌다)
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func mapPostDetail(p contentclient.Post, resolved content.Resolved) dto.PostDetailDTO {
	comments := make([]dto.CommentDTO, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, dto.CommentDTO{
			CommentBy: c.CommentBy,
			Comment:   c.Comment,
			CreatedAt: c.CreatedAt,
		})
	}
	return dto.PostDetailDTO{
		ID:          p.ID,
		Title:       p.Title,
		ShortNote:   p.ShortNote,
		FooterQuote: p.FooterQuote,
		Category:    p.Category,
		Tags:        p.Tags,
		Visibility:  p.Visibility,
		IsPublished: p.IsPublished,
		Likes:       p.Likes,
		Comments:    comments,
		BodyHTML:    resolved.HTML,
		BodySource:  string(resolved.Kind),
		ReadMinutes: content.EstimateReadMinutes(resolved.HTML),
		CreatedAt:   p.CreatedAt,
		PublishedAt: p.PublishedAt,
	}
}
