package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	. "github.com/naveen24691/zamboni/routes"
	"github.com/naveen24691/zamboni/pkg/zamboni/db"
	"github.com/naveen24691/zamboni/pkg/zamboni/model"
	"github.com/naveen24691/zamboni/templates"
)

// the list envelope the commbadge client pages through.
type commListEnvelope struct {
	Count int64 `json:"count"`
	Next *string `json:"next"`
	Previous *string `json:"previous"`
	Objects any `json:"objects"`
}

type commThreadJSON struct {
	ID int64 `json:"id"`
	App string `json:"app"`
	Version int64 `json:"version"`
	Created int64 `json:"created"`
	NoteURL string `json:"note_url"`
}

type commNoteJSON struct {
	ID int64 `json:"id"`
	Thread int64 `json:"thread"`
	Key string `json:"key"`
	Author string `json:"author"`
	NoteType model.ZamboniNoteType `json:"note_type"`
	Body string `json:"body"`
	Created int64 `json:"created"`
}

type commNotePostBody struct {
	Author string `json:"author"`
	NoteType model.ZamboniNoteType `json:"note_type"`
	Body string `json:"body"`
	// app & version identify the discussion subject when the note is
	// posted against the sentinel thread id; ignored otherwise.
	App string `json:"app"`
	Version int64 `json:"version"`
}

// resolveNoteThread turns the thread id of a note post into a real
// thread. the sentinel id 0 means the client has no thread yet: the
// first note about a version creates its thread lazily, which is also
// how the fragment's data attributes can point at thread 0 and still
// work on a fresh install.
func resolveNoteThread(rc *RouterContext, threadId int64, body *commNotePostBody) (int64, *RouteError) {
	if threadId != templates.PlaceholderThreadID {
		if _, err := rc.DatabaseInterface.GetThreadByID(threadId); err != nil {
			if db.IsEntityNotFound(err) {
				return 0, NewRouteError(NOT_FOUND, fmt.Sprintf("thread %d not found", threadId))
			}
			return 0, NewRouteError(OTHER_ERROR, err.Error())
		}
		return threadId, nil
	}
	if !model.ValidProductSlug(body.App) {
		return 0, NewRouteError(INVALID_REQUEST, fmt.Sprintf("invalid app slug %s", body.App))
	}
	v, err := rc.DatabaseInterface.GetVersionByID(body.Version)
	if err != nil {
		if db.IsEntityNotFound(err) {
			return 0, NewRouteError(NOT_FOUND, fmt.Sprintf("version %d not found", body.Version))
		}
		return 0, NewRouteError(OTHER_ERROR, err.Error())
	}
	if v.ProductSlug != body.App {
		return 0, NewRouteError(NOT_FOUND, fmt.Sprintf("version %d not found in app %s", body.Version, body.App))
	}
	th, err := rc.DatabaseInterface.GetThreadOfVersion(v.ID)
	if err == nil { return th.ID, nil }
	if !db.IsEntityNotFound(err) {
		return 0, NewRouteError(OTHER_ERROR, err.Error())
	}
	id, err := rc.DatabaseInterface.RegisterThread(&model.CommThread{
		ProductSlug: v.ProductSlug,
		VersionID: v.ID,
		Created: time.Now().Unix(),
	})
	if err != nil {
		return 0, NewRouteError(OTHER_ERROR, err.Error())
	}
	return id, nil
}

// pageLinks builds the next/previous urls of a list envelope. nil
// marks the end of the list in either direction.
func pageLinks(base string, pageNum int64, pageSize int64, totalPage int64) (*string, *string) {
	var next *string = nil
	var prev *string = nil
	if pageNum < totalPage {
		s := fmt.Sprintf("%s?p=%d&s=%d", base, pageNum+1, pageSize)
		next = &s
	}
	if pageNum > 1 {
		s := fmt.Sprintf("%s?p=%d&s=%d", base, pageNum-1, pageSize)
		prev = &s
	}
	return next, prev
}

func bindCommController(ctx *RouterContext) {
	rev := newRouteURLReverser(ctx)

	http.HandleFunc("GET /api/comm/app/{appSlug}/threads", UseMiddleware(
		[]Middleware{Logged, RequestId, RateLimit}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			slug := r.PathValue("appSlug")
			if !model.ValidProductSlug(slug) {
				WriteJSONError(w, 400, fmt.Sprintf("invalid app slug %s", slug))
				return
			}
			if _, err := rc.DatabaseInterface.GetProductBySlug(slug); err != nil {
				if db.IsEntityNotFound(err) {
					WriteJSONError(w, 404, fmt.Sprintf("app %s not found", slug))
				} else {
					WriteJSONError(w, 500, err.Error())
				}
				return
			}
			count, err := rc.DatabaseInterface.CountAllThreadsOfProduct(slug)
			if err != nil {
				WriteJSONError(w, 500, err.Error())
				return
			}
			pageInfo, err := GeneratePageInfo(r, count)
			if err != nil {
				WriteJSONError(w, 400, fmt.Sprintf("invalid page parameters: %s", err.Error()))
				return
			}
			threads, err := rc.DatabaseInterface.GetAllThreadsOfProduct(slug, int(pageInfo.PageNum-1), int(pageInfo.PageSize))
			if err != nil {
				WriteJSONError(w, 500, err.Error())
				return
			}
			objs := make([]commThreadJSON, 0, len(threads))
			for _, t := range threads {
				objs = append(objs, commThreadJSON{
					ID: t.ID,
					App: t.ProductSlug,
					Version: t.VersionID,
					Created: t.Created,
					NoteURL: rev.CommNoteURL(t.ID),
				})
			}
			next, prev := pageLinks(rev.CommThreadListURL(slug), pageInfo.PageNum, pageInfo.PageSize, pageInfo.TotalPage)
			WriteJSON(w, 200, commListEnvelope{
				Count: count,
				Next: next,
				Previous: prev,
				Objects: objs,
			})
		},
	))

	http.HandleFunc("GET /api/comm/thread/{threadId}/notes", UseMiddleware(
		[]Middleware{Logged, RequestId, RateLimit}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			threadId, err := strconv.ParseInt(r.PathValue("threadId"), 10, 64)
			if err != nil {
				WriteJSONError(w, 400, fmt.Sprintf("invalid thread id %s", r.PathValue("threadId")))
				return
			}
			if _, err := rc.DatabaseInterface.GetThreadByID(threadId); err != nil {
				if db.IsEntityNotFound(err) {
					WriteJSONError(w, 404, fmt.Sprintf("thread %d not found", threadId))
				} else {
					WriteJSONError(w, 500, err.Error())
				}
				return
			}
			count, err := rc.DatabaseInterface.CountAllNotesOfThread(threadId)
			if err != nil {
				WriteJSONError(w, 500, err.Error())
				return
			}
			pageInfo, err := GeneratePageInfo(r, count)
			if err != nil {
				WriteJSONError(w, 400, fmt.Sprintf("invalid page parameters: %s", err.Error()))
				return
			}
			notes, err := rc.DatabaseInterface.GetAllNotesOfThread(threadId, int(pageInfo.PageNum-1), int(pageInfo.PageSize))
			if err != nil {
				WriteJSONError(w, 500, err.Error())
				return
			}
			objs := make([]commNoteJSON, 0, len(notes))
			for _, n := range notes {
				objs = append(objs, commNoteJSON{
					ID: n.ID,
					Thread: n.ThreadID,
					Key: n.Key,
					Author: n.Author,
					NoteType: n.NoteType,
					Body: n.Body,
					Created: n.Created,
				})
			}
			next, prev := pageLinks(rev.CommNoteURL(threadId), pageInfo.PageNum, pageInfo.PageSize, pageInfo.TotalPage)
			WriteJSON(w, 200, commListEnvelope{
				Count: count,
				Next: next,
				Previous: prev,
				Objects: objs,
			})
		},
	))

	http.HandleFunc("POST /api/comm/thread/{threadId}/notes", UseMiddleware(
		[]Middleware{Logged, RequestId, RateLimit}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			threadId, err := strconv.ParseInt(r.PathValue("threadId"), 10, 64)
			if err != nil {
				WriteJSONError(w, 400, fmt.Sprintf("invalid thread id %s", r.PathValue("threadId")))
				return
			}
			var body commNotePostBody
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				WriteJSONError(w, 400, fmt.Sprintf("invalid request body: %s", err.Error()))
				return
			}
			if len(body.Body) <= 0 {
				WriteJSONError(w, 400, "note body must not be empty")
				return
			}
			if !model.ValidNoteType(body.NoteType) {
				WriteJSONError(w, 400, fmt.Sprintf("invalid note type %d", body.NoteType))
				return
			}
			if len(body.Author) <= 0 {
				body.Author = "anonymous"
			}
			threadId, rerr := resolveNoteThread(rc, threadId, &body)
			if rerr != nil {
				switch rerr.ErrorType {
				case NOT_FOUND: WriteJSONError(w, 404, rerr.ErrorMsg)
				case INVALID_REQUEST: WriteJSONError(w, 400, rerr.ErrorMsg)
				default: WriteJSONError(w, 500, rerr.ErrorMsg)
				}
				return
			}
			n, err := rc.DatabaseInterface.RegisterNote(threadId, body.Author, body.NoteType, body.Body)
			if err != nil {
				WriteJSONError(w, 500, err.Error())
				return
			}
			WriteJSON(w, 201, commNoteJSON{
				ID: n.ID,
				Thread: n.ThreadID,
				Key: n.Key,
				Author: n.Author,
				NoteType: n.NoteType,
				Body: n.Body,
				Created: n.Created,
			})
		},
	))
}
