package controller

import (
	"fmt"
	"net/http"
	"strconv"

	. "github.com/naveen24691/zamboni/routes"
	"github.com/naveen24691/zamboni/pkg/zamboni/db"
	"github.com/naveen24691/zamboni/templates"
)

func bindFileController(ctx *RouterContext) {
	http.HandleFunc("GET /reviewers/apps/{appSlug}/files/{fileId}", UseMiddleware(
		[]Middleware{Logged, RequestId, RateLimit}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			p, v, f, err := resolveFile(rc, r.PathValue("appSlug"), r.PathValue("fileId"))
			if err != nil {
				rc.ReportRouteError(err, w, r)
				return
			}
			LogTemplateError(rc.LoadTemplate("file").Execute(w, templates.FileContentsModel{
				SiteName: rc.Config.SiteName,
				App: p,
				Version: v,
				File: f,
			}))
		},
	))

	http.HandleFunc("GET /reviewers/apps/{appSlug}/files/{fileId}/validation", UseMiddleware(
		[]Middleware{Logged, RequestId, RateLimit}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			p, v, f, err := resolveFile(rc, r.PathValue("appSlug"), r.PathValue("fileId"))
			if err != nil {
				rc.ReportRouteError(err, w, r)
				return
			}
			LogTemplateError(rc.LoadTemplate("validation").Execute(w, templates.FileValidationModel{
				SiteName: rc.Config.SiteName,
				App: p,
				Version: v,
				File: f,
			}))
		},
	))

	http.HandleFunc("GET /reviewers/apps/{appSlug}/files/{fileId}/compare/{targetId}", UseMiddleware(
		[]Middleware{Logged, RequestId, RateLimit}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			if !rc.Config.EnableVersionCompare {
				rc.ReportNotFound(r.URL.Path, "Page", w, r)
				return
			}
			p, v, f, err := resolveFile(rc, r.PathValue("appSlug"), r.PathValue("fileId"))
			if err != nil {
				rc.ReportRouteError(err, w, r)
				return
			}
			targetId, err := strconv.ParseInt(r.PathValue("targetId"), 10, 64)
			if err != nil {
				rc.ReportNormalError(fmt.Sprintf("Invalid file id %s.", r.PathValue("targetId")), w, r)
				return
			}
			tf, err := rc.DatabaseInterface.GetFileByID(targetId)
			if err != nil {
				if db.IsEntityNotFound(err) {
					rc.ReportNotFound(r.PathValue("targetId"), "File", w, r)
				} else {
					rc.ReportInternalError(err.Error(), w, r)
				}
				return
			}
			tv, err := rc.DatabaseInterface.GetVersionByID(tf.VersionID)
			if err != nil {
				rc.ReportInternalError(err.Error(), w, r)
				return
			}
			if tv.ProductSlug != p.Slug {
				rc.ReportNotFound(r.PathValue("targetId"), "File", w, r)
				return
			}
			LogTemplateError(rc.LoadTemplate("compare").Execute(w, templates.FileCompareModel{
				SiteName: rc.Config.SiteName,
				App: p,
				Version: v,
				File: f,
				TargetVersion: tv,
				TargetFile: tf,
			}))
		},
	))
}
