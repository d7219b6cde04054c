package controller

import (
	"fmt"
	"net/http"

	. "github.com/naveen24691/zamboni/routes"
	"github.com/naveen24691/zamboni/templates"
)

func bindQueueController(ctx *RouterContext) {
	http.HandleFunc("GET /", UseMiddleware(
		[]Middleware{Logged, RequestId, RateLimit}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				rc.ReportNotFound(r.URL.Path, "Page", w, r)
				return
			}
			count, err := rc.DatabaseInterface.CountAllProducts()
			if err != nil {
				rc.ReportInternalError(fmt.Sprintf("Failed to count apps: %s", err.Error()), w, r)
				return
			}
			pageInfo, err := GeneratePageInfo(r, count)
			if err != nil {
				rc.ReportNormalError(fmt.Sprintf("Invalid page parameters: %s", err.Error()), w, r)
				return
			}
			products, err := rc.DatabaseInterface.GetAllProducts(int(pageInfo.PageNum-1), int(pageInfo.PageSize))
			if err != nil {
				rc.ReportInternalError(fmt.Sprintf("Failed to list apps: %s", err.Error()), w, r)
				return
			}
			pm := make([]templates.QueueProductModel, 0, len(products))
			for _, p := range products {
				vc, err := rc.DatabaseInterface.CountAllVersionsOfProduct(p.Slug)
				if err != nil {
					rc.ReportInternalError(fmt.Sprintf("Failed to count versions of app %s: %s", p.Slug, err.Error()), w, r)
					return
				}
				pm = append(pm, templates.QueueProductModel{
					Product: p,
					VersionCount: vc,
				})
			}
			LogTemplateError(rc.LoadTemplate("queue").Execute(w, templates.QueueModel{
				SiteName: rc.Config.SiteName,
				Products: pm,
				PageInfo: pageInfo,
			}))
		},
	))
}
