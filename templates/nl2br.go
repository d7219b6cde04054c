package templates

import (
	"fmt"
	ht "html/template"
	"strings"
)

// preserves line breaks the way the review notes expect. accepts
// already-safe html (e.g. the output of urlize) without re-escaping.
func nl2br(v any) ht.HTML {
	var s string
	switch k := v.(type) {
	case ht.HTML: s = string(k)
	case string: s = ht.HTMLEscapeString(k)
	default: s = ht.HTMLEscapeString(fmt.Sprint(v))
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return ht.HTML(strings.ReplaceAll(s, "\n", "<br/>\n"))
}
