package templates

import (
	ht "html/template"
	"regexp"
	"strings"
)

var urlizePattern = regexp.MustCompile(`(https?://[^\s<>"']+|www\.[^\s<>"']+)`)

// turns bare urls in plain text into links. the display text of each
// link is capped at `limit` characters (0 means no cap); the href
// always keeps the full url. everything else is escaped as-is.
func urlize(s string, limit int) ht.HTML {
	var b strings.Builder
	last := 0
	for _, loc := range urlizePattern.FindAllStringIndex(s, -1) {
		b.WriteString(ht.HTMLEscapeString(s[last:loc[0]]))
		u := s[loc[0]:loc[1]]
		href := u
		if strings.HasPrefix(u, "www.") { href = "http://" + u }
		display := u
		// cap on runes, not bytes; urls can carry multibyte paths.
		if r := []rune(display); limit > 0 && len(r) > limit {
			cut := limit - 3
			if cut < 0 { cut = 0 }
			display = string(r[:cut]) + "..."
		}
		b.WriteString("<a href=\"")
		b.WriteString(ht.HTMLEscapeString(href))
		b.WriteString("\" rel=\"nofollow\">")
		b.WriteString(ht.HTMLEscapeString(display))
		b.WriteString("</a>")
		last = loc[1]
	}
	b.WriteString(ht.HTMLEscapeString(s[last:]))
	return ht.HTML(b.String())
}
