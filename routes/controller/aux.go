package controller

import (
	"fmt"
	"strconv"

	. "github.com/naveen24691/zamboni/routes"
	"github.com/naveen24691/zamboni/pkg/zamboni/db"
	"github.com/naveen24691/zamboni/pkg/zamboni/model"
)

// routeURLReverser is the canonical URLReverser: it emits the paths
// this package binds. the view layer only ever sees the finished
// strings, so the url shapes live here and nowhere else. the review
// page urls stay host-relative; the Commbadge api urls get the
// configured host name prefixed, since they are handed to a client
// that may live on another origin. an empty host keeps them relative.
type routeURLReverser struct{
	hostName string
}

func newRouteURLReverser(ctx *RouterContext) routeURLReverser {
	return routeURLReverser{hostName: ctx.Config.ProperHTTPHostName()}
}

func (routeURLReverser) FileValidationURL(slug string, fileId int64) string {
	return fmt.Sprintf("/reviewers/apps/%s/files/%d/validation", slug, fileId)
}

func (routeURLReverser) FileContentsURL(slug string, fileId int64) string {
	return fmt.Sprintf("/reviewers/apps/%s/files/%d", slug, fileId)
}

func (routeURLReverser) FileCompareURL(slug string, fileId int64, targetId int64) string {
	return fmt.Sprintf("/reviewers/apps/%s/files/%d/compare/%d", slug, fileId, targetId)
}

func (rev routeURLReverser) CommThreadListURL(slug string) string {
	return fmt.Sprintf("%s/api/comm/app/%s/threads", rev.hostName, slug)
}

func (rev routeURLReverser) CommNoteURL(threadId int64) string {
	return fmt.Sprintf("%s/api/comm/thread/%d/notes", rev.hostName, threadId)
}

func resolveProduct(ctx *RouterContext, slug string) (*model.Product, error) {
	if !model.ValidProductSlug(slug) {
		return nil, NewRouteError(INVALID_REQUEST, fmt.Sprintf("Invalid app slug %s.", slug))
	}
	p, err := ctx.DatabaseInterface.GetProductBySlug(slug)
	if err != nil {
		if db.IsEntityNotFound(err) {
			return nil, NewRouteError(NOT_FOUND, fmt.Sprintf("App %s not found.", slug))
		}
		return nil, err
	}
	return p, nil
}

// resolveFile loads a file by id and checks that it actually belongs
// to a version of the named product; ids are global, slugs are not,
// and we don't want one app's review pages serving another's files.
func resolveFile(ctx *RouterContext, slug string, fileIdStr string) (*model.Product, *model.Version, *model.File, error) {
	p, err := resolveProduct(ctx, slug)
	if err != nil { return nil, nil, nil, err }
	fileId, err := strconv.ParseInt(fileIdStr, 10, 64)
	if err != nil {
		return nil, nil, nil, NewRouteError(INVALID_REQUEST, fmt.Sprintf("Invalid file id %s.", fileIdStr))
	}
	f, err := ctx.DatabaseInterface.GetFileByID(fileId)
	if err != nil {
		if db.IsEntityNotFound(err) {
			return nil, nil, nil, NewRouteError(NOT_FOUND, fmt.Sprintf("File %d not found.", fileId))
		}
		return nil, nil, nil, err
	}
	v, err := ctx.DatabaseInterface.GetVersionByID(f.VersionID)
	if err != nil {
		if db.IsEntityNotFound(err) {
			return nil, nil, nil, NewRouteError(NOT_FOUND, fmt.Sprintf("Version %d not found.", f.VersionID))
		}
		return nil, nil, nil, err
	}
	if v.ProductSlug != p.Slug {
		return nil, nil, nil, NewRouteError(NOT_FOUND, fmt.Sprintf("File %d not found in app %s.", fileId, slug))
	}
	return p, v, f, nil
}
