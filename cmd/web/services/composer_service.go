package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"inkwell/cmd/web/content"
	"inkwell/cmd/web/contentclient"
	"inkwell/cmd/web/dto"
	"inkwell/cmd/web/notify"
)

const (
	maxTitleLength = 200
	maxNoteLength  = 500
)

// ValidationError blocks a submission before any network call is issued.
// Message is user-facing and names the first violated rule only.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ComposerService turns submitted form state into create calls. The form
// itself is caller-side state; nothing is persisted here between requests.
type ComposerService struct {
	client   *contentclient.Client
	notifier *notify.Center
}

func NewComposerService(client *contentclient.Client, notifier *notify.Center) *ComposerService {
	return &ComposerService{client: client, notifier: notifier}
}

// SaveDraft validates and creates the post with visibility forced to draft,
// whatever the form said.
func (s *ComposerService) SaveDraft(ctx context.Context, form dto.ComposerForm) (dto.ComposeResultDTO, error) {
	req := buildCreateRequest(form, contentclient.VisibilityDraft)
	if err := validateForm(req); err != nil {
		return dto.ComposeResultDTO{}, err
	}

	created, err := s.client.Create(ctx, req)
	if err != nil {
		return dto.ComposeResultDTO{}, err
	}
	s.notifier.Success("Draft saved successfully! You can continue editing or publish later.")
	return mapComposeResult(created), nil
}

// Publish validates and creates the post with visibility forced to public.
// A missing category only warns; it never blocks the action.
func (s *ComposerService) Publish(ctx context.Context, form dto.ComposerForm) (dto.ComposeResultDTO, error) {
	req := buildCreateRequest(form, contentclient.VisibilityPublic)
	if err := validateForm(req); err != nil {
		return dto.ComposeResultDTO{}, err
	}

	if req.Category == "" {
		s.notifier.Warning("Consider adding a category to help readers find your post")
	}

	created, err := s.client.Create(ctx, req)
	if err != nil {
		return dto.ComposeResultDTO{}, err
	}
	s.notifier.Success("Blog published successfully! Redirecting to your post...")
	return mapComposeResult(created), nil
}

// Preview renders the in-progress form through the detail-shaped layout
// without touching the network.
func (s *ComposerService) Preview(form dto.ComposerForm) dto.PreviewDTO {
	body := content.Sanitize(form.HTMLContent)
	return dto.PreviewDTO{
		Title:       strings.TrimSpace(form.Title),
		ShortNote:   strings.TrimSpace(form.ShortNote),
		FooterQuote: strings.TrimSpace(form.FooterQuote),
		Category:    form.Category,
		Tags:        ParseTags(form.Tags),
		BodyHTML:    body,
		WordCount:   content.WordCount(body),
		ReadMinutes: content.EstimateReadMinutes(body),
	}
}

// ParseTags splits the comma-separated input: entries are trimmed, empties
// dropped, duplicates and order preserved.
func ParseTags(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func buildCreateRequest(form dto.ComposerForm, visibility string) contentclient.CreatePostRequest {
	return contentclient.CreatePostRequest{
		Title:       strings.TrimSpace(form.Title),
		ShortNote:   strings.TrimSpace(form.ShortNote),
		HTMLContent: form.HTMLContent,
		FooterQuote: strings.TrimSpace(form.FooterQuote),
		Tags:        ParseTags(form.Tags),
		Visibility:  visibility,
		Category:    form.Category,
	}
}

// validateForm reports the first violated rule, in fixed order.
func validateForm(req contentclient.CreatePostRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return &ValidationError{Message: "Title is required"}
	}
	if strings.TrimSpace(req.HTMLContent) == "" {
		return &ValidationError{Message: "Content is required"}
	}
	// 길이 제한은 바이트가 아니라 문자 수 기준이다. 한글 제목이 바이트 수로
	// 먼저 걸리면 안 된다.
	if utf8.RuneCountInString(req.Title) > maxTitleLength {
		return &ValidationError{Message: "Title must be less than 200 characters"}
	}
	if utf8.RuneCountInString(req.ShortNote) > maxNoteLength {
		return &ValidationError{Message: "Short note must be less than 500 characters"}
	}
	if utf8.RuneCountInString(req.FooterQuote) > maxNoteLength {
		return &ValidationError{Message: "Footer quote must be less than 500 characters"}
	}
	return nil
}

func mapComposeResult(p contentclient.Post) dto.ComposeResultDTO {
	return dto.ComposeResultDTO{
		ID:          p.ID,
		Title:       p.Title,
		Visibility:  p.Visibility,
		IsPublished: p.IsPublished,
	}
}
