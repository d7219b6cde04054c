package templates

import (
	"encoding/json"

	"github.com/naveen24691/zamboni/pkg/zamboni/model"
)

// the json array of note type values handed to the commbadge client
// thru a data attribute.
func noteTypes() string {
	r, _ := json.Marshal(model.AllNoteTypes())
	return string(r)
}
