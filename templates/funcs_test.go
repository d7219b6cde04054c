package templates

import (
	ht "html/template"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNl2br(t *testing.T) {
	assert.Equal(t, ht.HTML("a<br/>\nb"), nl2br("a\nb"))
	assert.Equal(t, ht.HTML("a<br/>\nb"), nl2br("a\r\nb"))
	// plain strings get escaped.
	assert.Equal(t, ht.HTML("&lt;b&gt;"), nl2br("<b>"))
	// already-safe html passes through untouched.
	assert.Equal(t, ht.HTML("<b>x</b>"), nl2br(ht.HTML("<b>x</b>")))
}

func TestUrlize(t *testing.T) {
	out := string(urlize("see https://example.com/x for details", 0))
	assert.Equal(t, `see <a href="https://example.com/x" rel="nofollow">https://example.com/x</a> for details`, out)

	// www-urls get a scheme in the href but not the display text.
	out = string(urlize("www.example.com", 0))
	assert.Equal(t, `<a href="http://www.example.com" rel="nofollow">www.example.com</a>`, out)

	// non-url text is escaped.
	out = string(urlize("<script> & https://example.com/y", 0))
	assert.Equal(t, `&lt;script&gt; &amp; <a href="https://example.com/y" rel="nofollow">https://example.com/y</a>`, out)
}

func TestUrlizeTruncatesDisplayText(t *testing.T) {
	long := "https://example.com/"
	for len(long) <= 100 { long += "a" }
	out := string(urlize(long, 100))
	// full url in href, truncated display ending in "...".
	assert.Contains(t, out, `href="`+long+`"`)
	assert.Contains(t, out, long[:97]+"...</a>")
}

func TestToDateStr(t *testing.T) {
	assert.Equal(t, "2014-05-13 16:53", toDateStr(1400000000))
}

func TestUrlizeTruncatesOnRuneBoundary(t *testing.T) {
	u := "https://example.com/" + strings.Repeat("é", 40)
	out := string(urlize(u, 30))
	assert.True(t, utf8.ValidString(out))
	// 27 runes of display text, then the ellipsis.
	assert.Contains(t, out, `>https://example.com/ééééééé...</a>`)
	assert.Contains(t, out, `href="`+u+`"`)
}
