package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLToText 提取 HTML 的纯文本，连续空白压缩为单个空格
func HTMLToText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}
	doc.Find("script,style").Remove()
	doc.Find("br,p,div,li,h1,h2,h3,h4,h5,h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Excerpt 纯文本摘要，超出 limit 个字符时截断并追加省略号
func Excerpt(html string, limit int) string {
	text := HTMLToText(html)
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
