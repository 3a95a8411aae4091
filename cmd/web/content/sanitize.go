package content

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stylePattern   = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	bodyTagPattern = regexp.MustCompile(`(?i)<body[^>]*>|</body>`)
)

// ugcPolicy 는 포스트 본문/미리보기 렌더링에 쓰는 단일 정책이다.
// 클래스 속성은 카드/본문 스타일링에 필요하므로 허용한다.
var ugcPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	return p
}()

// StripWrapper removes <style> blocks and <body> wrapper tags so authored
// documents drop into the post layout without restyling the whole page.
func StripWrapper(html string) string {
	html = stylePattern.ReplaceAllString(html, "")
	return bodyTagPattern.ReplaceAllString(html, "")
}

// Sanitize 는 래퍼 제거 후 스크립트 주입을 막는 정책을 적용한다.
// 본문과 미리보기 모두 같은 경로를 지난다.
func Sanitize(html string) string {
	return ugcPolicy.Sanitize(StripWrapper(html))
}
