package dto

// ComposerForm is the draft form state as submitted. Tags arrive as the raw
// comma-separated input and are parsed server-side on submit.
type ComposerForm struct {
	Title       string `json:"title"`
	ShortNote   string `json:"shortNote"`
	HTMLContent string `json:"htmlContent"`
	FooterQuote string `json:"footerQuote"`
	Tags        string `json:"tags"`
	Category    string `json:"category"`
	Visibility  string `json:"visibility"`
}

// ComposeResultDTO identifies the created post so the caller can navigate to it.
type ComposeResultDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Visibility  string `json:"visibility"`
	IsPublished bool   `json:"isPublished"`
}

// PreviewDTO 는 저장 전 폼 데이터를 상세 뷰와 같은 레이아웃으로 렌더한 결과다.
type PreviewDTO struct {
	Title       string   `json:"title"`
	ShortNote   string   `json:"shortNote,omitempty"`
	FooterQuote string   `json:"footerQuote,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags"`
	BodyHTML    string   `json:"bodyHtml"`
	WordCount   int      `json:"wordCount"`
	ReadMinutes int      `json:"readMinutes"`
}
