package templates

import (
	ht "html/template"

	"github.com/gomarkdown/markdown"
	"github.com/microcosm-cc/bluemonday"
)

func renderMarkdown(s string) ht.HTML {
	rs := string(markdown.ToHTML([]byte(s), nil, nil))
	rs = bluemonday.UGCPolicy().Sanitize(rs)
	return ht.HTML(rs)
}
