package templates

import (
	"embed"
	"html/template"

	"github.com/naveen24691/zamboni/pkg/zamboni/locale"
)

//go:embed all:html
var templateFS embed.FS

func LoadTemplate(t9n *locale.Translator) *template.Template {
	res := template.New("master").Funcs(template.FuncMap{
		"tr": t9n.Tr,
		"nl2br": nl2br,
		"urlize": urlize,
		"toDateStr": toDateStr,
		"noteTypes": noteTypes,
		"renderMarkdown": renderMarkdown,
	})
	res = template.Must(res.ParseFS(templateFS, "html/*.html"))
	return res
}
