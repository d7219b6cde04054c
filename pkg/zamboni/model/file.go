package model

type ZamboniFileStatus int

const (
	FILE_PENDING ZamboniFileStatus = 1
	FILE_APPROVED ZamboniFileStatus = 2
	FILE_REJECTED ZamboniFileStatus = 3
	FILE_OBSOLETE ZamboniFileStatus = 4
	FILE_BLOCKED ZamboniFileStatus = 5
)

type File struct {
	ID int64 `json:"id"`
	VersionID int64 `json:"versionId"`
	Filename string `json:"filename"`
	Platform string `json:"platform"`
	Size int64 `json:"size"`
	Hash string `json:"hash"`
	Status ZamboniFileStatus `json:"status"`
	// validation result blob, as produced by the upload validator.
	// empty when the file was never validated.
	Validation string `json:"validation"`
}

func (f *File) StatusLabel() string {
	switch f.Status {
	case FILE_PENDING: return "Pending approval"
	case FILE_APPROVED: return "Approved"
	case FILE_REJECTED: return "Rejected"
	case FILE_OBSOLETE: return "Obsolete"
	case FILE_BLOCKED: return "Blocked"
	default: return "Unknown"
	}
}
