package model

type ZamboniNoteType int

// note types recognized by the commbadge subsystem. the client reads
// the full set from a data attribute on the history view so it can
// render the matching controls without a second round trip.
const (
	NOTE_NO_ACTION ZamboniNoteType = 0
	NOTE_APPROVAL ZamboniNoteType = 1
	NOTE_REJECTION ZamboniNoteType = 2
	NOTE_DISABLED ZamboniNoteType = 3
	NOTE_MORE_INFO ZamboniNoteType = 4
	NOTE_ESCALATION ZamboniNoteType = 5
	NOTE_REVIEWER_COMMENT ZamboniNoteType = 6
	NOTE_RESUBMISSION ZamboniNoteType = 7
)

func AllNoteTypes() []ZamboniNoteType {
	return []ZamboniNoteType{
		NOTE_NO_ACTION,
		NOTE_APPROVAL,
		NOTE_REJECTION,
		NOTE_DISABLED,
		NOTE_MORE_INFO,
		NOTE_ESCALATION,
		NOTE_REVIEWER_COMMENT,
		NOTE_RESUBMISSION,
	}
}

func ValidNoteType(t ZamboniNoteType) bool {
	return NOTE_NO_ACTION <= t && t <= NOTE_RESUBMISSION
}

// a thread groups the notes exchanged about one version of a product.
type CommThread struct {
	ID int64 `json:"id"`
	ProductSlug string `json:"productSlug"`
	VersionID int64 `json:"versionId"`
	Created int64 `json:"created"`
}

type CommNote struct {
	ID int64 `json:"id"`
	ThreadID int64 `json:"threadId"`
	// opaque key assigned at creation; used by the client for
	// deduplication when a post is retried.
	Key string `json:"key"`
	Author string `json:"author"`
	NoteType ZamboniNoteType `json:"noteType"`
	Body string `json:"body"`
	Created int64 `json:"created"`
}
