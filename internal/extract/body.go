package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	horizontalSpace = regexp.MustCompile(`[ \t\x{00A0}]+`)
	lineEdges       = regexp.MustCompile(` ?\n ?`)
	blankLines      = regexp.MustCompile(`\n\s*\n`)
)

// NormalizeBody converts an email body (plain text or HTML) into the plain
// text form rules are evaluated against. Line-breaking tags (<br>, </p>,
// </div>) become newlines, other tags become spaces, entities are decoded,
// horizontal whitespace is collapsed and blank lines are dropped.
func NormalizeBody(body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}

	body = escapeUnterminatedTags(body)

	var b strings.Builder
	b.Grow(len(body))

	z := html.NewTokenizer(strings.NewReader(body))
loop:
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader can produce.
			break loop
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "br" {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "p", "div":
				b.WriteByte('\n')
			default:
				b.WriteByte(' ')
			}
		}
	}

	text := strings.ReplaceAll(b.String(), "\r\n", "\n")
	text = horizontalSpace.ReplaceAllString(text, " ")
	text = lineEdges.ReplaceAllString(text, "\n")
	text = blankLines.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// escapeUnterminatedTags turns every '<' after the last '>' into an entity.
// Such a '<' cannot close into a tag, so it is text ("qty <a few hundred"),
// but the tokenizer would otherwise swallow the rest of the body as a tag.
func escapeUnterminatedTags(body string) string {
	last := strings.LastIndexByte(body, '>')
	tail := body[last+1:]
	if !strings.Contains(tail, "<") {
		return body
	}
	return body[:last+1] + strings.ReplaceAll(tail, "<", "&lt;")
}
