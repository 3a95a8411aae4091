package content

import (
	"strings"

	"golang.org/x/net/html"
)

const wordsPerMinute = 200

// PlainText 는 HTML 에서 텍스트 노드만 뽑아낸다. script/style 내부는 버린다.
func PlainText(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	skipDepth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			name, _ := z.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
				b.WriteByte(' ')
			}
		}
	}
}

// WordCount counts whitespace-separated words in the rendered text.
func WordCount(markup string) int {
	return len(strings.Fields(PlainText(markup)))
}

// EstimateReadMinutes 는 200 단어/분 기준 읽기 시간을 추정한다.
// 본문이 아예 없으면 카드에 표시할 기본값 2 를 반환한다.
func EstimateReadMinutes(markup string) int {
	if strings.TrimSpace(markup) == "" {
		return 2
	}
	words := WordCount(markup)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
