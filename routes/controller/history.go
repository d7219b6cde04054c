package controller

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	. "github.com/naveen24691/zamboni/routes"
	"github.com/naveen24691/zamboni/pkg/zamboni/model"
	"github.com/naveen24691/zamboni/pkg/zamboni/pager"
	"github.com/naveen24691/zamboni/templates"
)

// pickDiffTarget chooses the version the latest version's files get
// compared against: the newest approved, non-deleted version other
// than the latest one. nil when nothing qualifies.
func pickDiffTarget(versions []*model.Version, latestId int64) *model.Version {
	var target *model.Version = nil
	for _, v := range versions {
		if v.ID == latestId { continue }
		if v.Deleted { continue }
		if v.Status != model.VERSION_PUBLIC { continue }
		if target == nil || v.ID > target.ID { target = v }
	}
	return target
}

func renderHistoryFragment(ctx *RouterContext, p *model.Product) (string, error) {
	versions, err := ctx.DatabaseInterface.GetAllVersionsOfProduct(p.Slug)
	if err != nil { return "", err }
	var showDiff *model.Version = nil
	var resolver templates.DiffTargetResolver = nil
	if ctx.Config.EnableVersionCompare {
		showDiff = pickDiffTarget(versions, p.LatestVersionID)
		if showDiff != nil {
			resolver = templates.MatchByPlatform(showDiff)
		}
	}
	m := templates.NewHistoryModel(p, pager.NewSlicePager(versions), showDiff, resolver, newRouteURLReverser(ctx))
	var buf bytes.Buffer
	err = ctx.LoadTemplate("history").Execute(&buf, m)
	if err != nil { return "", err }
	return buf.String(), nil
}

// historyFragment returns the rendered history fragment for a
// product, through the cache. the key bakes in the latest version id
// and the version count, so any change that grows the history makes
// the old entry unreachable instead of stale.
func historyFragment(ctx *RouterContext, p *model.Product) (string, error) {
	count, err := ctx.DatabaseInterface.CountAllVersionsOfProduct(p.Slug)
	if err != nil { return "", err }
	key := fmt.Sprintf("%s:%d:%d", p.Slug, p.LatestVersionID, count)
	s, hit, err := ctx.CacheInterface.Get(key)
	if err != nil { LogIfError(err) }
	if hit { return s, nil }
	s, err = renderHistoryFragment(ctx, p)
	if err != nil { return "", err }
	timeout := time.Duration(ctx.Config.Cache.TimeoutSecond) * time.Second
	LogIfError(ctx.CacheInterface.Set(key, s, timeout))
	return s, nil
}

func bindHistoryController(ctx *RouterContext) {
	http.HandleFunc("GET /reviewers/apps/{appSlug}", UseMiddleware(
		[]Middleware{Logged, RequestId, RateLimit}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			p, err := resolveProduct(rc, r.PathValue("appSlug"))
			if err != nil {
				rc.ReportRouteError(err, w, r)
				return
			}
			fragment, err := historyFragment(rc, p)
			if err != nil {
				rc.ReportInternalError(fmt.Sprintf("Failed to render history of app %s: %s", p.Slug, err.Error()), w, r)
				return
			}
			LogTemplateError(rc.LoadTemplate("review").Execute(w, templates.ReviewModel{
				SiteName: rc.Config.SiteName,
				App: p,
				Fragment: template.HTML(fragment),
			}))
		},
	))
}
