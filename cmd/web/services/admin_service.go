package services

import (
	"context"
	"strings"
	"time"

	"inkwell/cmd/web/auth"
	"inkwell/cmd/web/contentclient"
	"inkwell/cmd/web/dto"
	"inkwell/cmd/web/notify"
)

// Derived status values for the management table.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
	StatusPrivate   = "private"
)

// AdminService drives the management console: overview with filters, inline
// edit, publish, delete. No action is queued or retried; concurrent admin
// sessions are not reconciled.
type AdminService struct {
	client   *contentclient.Client
	sessions *auth.SessionManager
	notifier *notify.Center
}

func NewAdminService(client *contentclient.Client, sessions *auth.SessionManager, notifier *notify.Center) *AdminService {
	return &AdminService{client: client, sessions: sessions, notifier: notifier}
}

// Login exchanges the shared console password for a session token.
func (s *AdminService) Login(password string) (dto.AdminSessionDTO, error) {
	token, err := s.sessions.Login(password)
	if err != nil {
		return dto.AdminSessionDTO{}, err
	}
	return dto.AdminSessionDTO{Token: token}, nil
}

type AdminFilterInput struct {
	Search   string
	Category string // "" 또는 "all" 이면 전체
	Status   string // all / published / draft / private
}

// Overview fetches the full collection plus remote aggregate stats, then
// applies the table filters in memory.
func (s *AdminService) Overview(ctx context.Context, in AdminFilterInput) (dto.AdminOverviewDTO, error) {
	posts, err := s.client.ListAll(ctx, contentclient.ListAllParams{})
	if err != nil {
		return dto.AdminOverviewDTO{}, err
	}
	stats, err := s.client.GetStats(ctx)
	if err != nil {
		return dto.AdminOverviewDTO{}, err
	}

	rows := make([]dto.AdminPostRowDTO, 0, len(posts))
	for _, p := range posts {
		if !matchesAdminFilter(p, in) {
			continue
		}
		rows = append(rows, mapAdminRow(p))
	}
	return dto.AdminOverviewDTO{
		Posts: rows,
		Total: len(rows),
		Stats: dto.StatsDTO(stats),
	}, nil
}

// Edit re-submits the composer-shaped fields as a partial update.
func (s *AdminService) Edit(ctx context.Context, id string, form dto.ComposerForm) error {
	req := contentclient.UpdatePostRequest{
		Title:       strings.TrimSpace(form.Title),
		ShortNote:   strings.TrimSpace(form.ShortNote),
		HTMLContent: form.HTMLContent,
		FooterQuote: strings.TrimSpace(form.FooterQuote),
		Tags:        ParseTags(form.Tags),
		Visibility:  form.Visibility,
		Category:    form.Category,
	}
	if err := s.client.Update(ctx, id, req); err != nil {
		return err
	}
	s.notifier.Success("Blog updated successfully")
	return nil
}

// Publish asks the server to publish, then applies the state transition the
// caller should show. isPublished=true always travels with visibility=public
// and a publish timestamp; this boundary is where that invariant is enforced.
func (s *AdminService) Publish(ctx context.Context, id string) (dto.PublishResultDTO, error) {
	if err := s.client.Publish(ctx, id); err != nil {
		return dto.PublishResultDTO{}, err
	}
	s.notifier.Success("Blog published successfully")
	return dto.PublishResultDTO{
		ID:          id,
		IsPublished: true,
		Visibility:  contentclient.VisibilityPublic,
		PublishedAt: time.Now(),
	}, nil
}

// Delete removes the post permanently and immediately.
func (s *AdminService) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Success("Blog deleted successfully")
	return nil
}

func matchesAdminFilter(p contentclient.Post, in AdminFilterInput) bool {
	needle := strings.ToLower(strings.TrimSpace(in.Search))
	if needle != "" &&
		!strings.Contains(strings.ToLower(p.Title), needle) &&
		!strings.Contains(strings.ToLower(p.ShortNote), needle) {
		return false
	}
	if in.Category != "" && in.Category != "all" && p.Category != in.Category {
		return false
	}
	switch in.Status {
	case "", "all":
	case StatusPublished:
		if !p.IsPublished {
			return false
		}
	case StatusDraft:
		if p.IsPublished {
			return false
		}
	case StatusPrivate:
		if p.Visibility != contentclient.VisibilityPrivate {
			return false
		}
	default:
		return false
	}
	return true
}

func mapAdminRow(p contentclient.Post) dto.AdminPostRowDTO {
	return dto.AdminPostRowDTO{
		ID:           p.ID,
		Title:        p.Title,
		ShortNote:    p.ShortNote,
		Category:     p.Category,
		Tags:         p.Tags,
		Visibility:   p.Visibility,
		IsPublished:  p.IsPublished,
		Status:       deriveStatus(p),
		Likes:        p.Likes,
		CommentCount: len(p.Comments),
		CreatedAt:    p.CreatedAt,
		PublishedAt:  p.PublishedAt,
	}
}

func deriveStatus(p contentclient.Post) string {
	if p.IsPublished {
		return StatusPublished
	}
	if p.Visibility == contentclient.VisibilityPrivate {
		return StatusPrivate
	}
	return StatusDraft
}
