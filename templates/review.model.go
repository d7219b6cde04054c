package templates

import (
	ht "html/template"

	"github.com/naveen24691/zamboni/pkg/zamboni/model"
)

// the review page wraps the history fragment. the fragment is
// rendered (and possibly cached) separately, so the page model
// carries it pre-rendered.
type ReviewModel struct {
	SiteName string
	App *model.Product
	Fragment ht.HTML
}
