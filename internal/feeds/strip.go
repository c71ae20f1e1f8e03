package feeds

import (
	"strings"

	"golang.org/x/net/html"
)

// stripHTML reduces markup-laden feed text to its visible words, collapsing
// whitespace. Plain text passes through untouched apart from whitespace
// normalization.
func stripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.Join(strings.Fields(s), " ")
	}

	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.WriteString(tokenizer.Token().Data)
			sb.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}
