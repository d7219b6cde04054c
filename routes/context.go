package routes

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/naveen24691/zamboni/pkg/zamboni"
	"github.com/naveen24691/zamboni/pkg/zamboni/cache"
	"github.com/naveen24691/zamboni/pkg/zamboni/db"
	"github.com/naveen24691/zamboni/templates"
)

type RouterContext struct {
	Config *zamboni.ZamboniConfig
	MasterTemplate *template.Template
	DatabaseInterface db.ZamboniDatabaseInterface
	CacheInterface cache.ZamboniCacheInterface
	RateLimiter *RateLimiter
}

func (ctx RouterContext) LoadTemplate(name string) *template.Template {
	return ctx.MasterTemplate.Lookup(name)
}

func (ctx RouterContext) ReportNotFound(objName string, objType string, w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(404)
	LogTemplateError(ctx.LoadTemplate("error").Execute(w,
		templates.ErrorTemplateModel{
			SiteName: ctx.Config.SiteName,
			ErrorCode: 404,
			ErrorMessage: fmt.Sprintf(
				"%s %s not found",
				objType, objName,
			),
		},
	))
}

func (ctx RouterContext) ReportNormalError(msg string, w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(400)
	LogTemplateError(ctx.LoadTemplate("error").Execute(w,
		templates.ErrorTemplateModel{
			SiteName: ctx.Config.SiteName,
			ErrorCode: 400,
			ErrorMessage: fmt.Sprintf(
				"Error: %s",
				msg,
			),
		},
	))
}

func (ctx RouterContext) ReportInternalError(msg string, w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(500)
	LogTemplateError(ctx.LoadTemplate("error").Execute(w,
		templates.ErrorTemplateModel{
			SiteName: ctx.Config.SiteName,
			ErrorCode: 500,
			ErrorMessage: fmt.Sprintf(
				"Internal error: %s",
				msg,
			),
		},
	))
}

// ReportRouteError dispatches on the error's type so controllers can
// bubble a single error value up from their resolution helpers.
func (ctx RouterContext) ReportRouteError(e error, w http.ResponseWriter, r *http.Request) {
	re, ok := e.(*RouteError)
	if !ok {
		ctx.ReportInternalError(e.Error(), w, r)
		return
	}
	switch re.ErrorType {
	case NOT_FOUND:
		w.WriteHeader(404)
		LogTemplateError(ctx.LoadTemplate("error").Execute(w,
			templates.ErrorTemplateModel{
				SiteName: ctx.Config.SiteName,
				ErrorCode: 404,
				ErrorMessage: re.ErrorMsg,
			},
		))
	default:
		ctx.ReportNormalError(re.ErrorMsg, w, r)
	}
}
