package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/naveen24691/zamboni/templates"
)

func LogIfError(err error) {
	if err != nil {
		log.Print(err.Error())
	}
}

func LogTemplateError(e error) {
	if e != nil { log.Print(e) }
}

func FoundAt(w http.ResponseWriter, p string) {
	w.Header().Add("Content-Length", "0")
	w.Header().Add("Location", p)
	w.WriteHeader(302)
}

// WriteJSON renders an api response. encoding errors past the header
// write can only be logged.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	LogIfError(json.NewEncoder(w).Encode(v))
}

func WriteJSONError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, map[string]string{"error": msg})
}

func GeneratePageInfo(r *http.Request, size int64) (*templates.PageInfoModel, error) {
	// set up a base pageInfo obj. a default of p=1 and s=25 is set for
	// the resulting value. correction would be done if a `size` of
	// bigger or equal than 0 is specified, since by our convention
	// .PageNum starts from 1 and we need to restrict its value within
	// [1..totalPage]. if `size` is smaller than 0, then this
	// correction is not carried out.
	p := r.URL.Query().Get("p")
	if len(p) <= 0 { p = "1" }
	s := r.URL.Query().Get("s")
	if len(s) <= 0 { s = "25" }
	pageNum, err := strconv.ParseInt(p, 10, 64)
	if err != nil { return nil, err }
	pageSize, err := strconv.ParseInt(s, 10, 64)
	if err != nil { return nil, err }
	if pageSize <= 0 { pageSize = 25 }
	var totalPage int64 = 0
	if size == 0 {
		totalPage = 1
	} else if size > 0 {
		totalPage = size / pageSize
		if size % pageSize != 0 { totalPage += 1 }
		if pageNum <= 1 { pageNum = 1 }
		if pageNum > totalPage { pageNum = totalPage }
	}
	return &templates.PageInfoModel{
		PageNum: pageNum,
		PageSize: pageSize,
		TotalPage: totalPage,
	}, nil
}
