package model

type ZamboniVersionStatus int

const (
	VERSION_PENDING ZamboniVersionStatus = 1
	VERSION_PUBLIC ZamboniVersionStatus = 2
	VERSION_REJECTED ZamboniVersionStatus = 3
	VERSION_OBSOLETE ZamboniVersionStatus = 4
)

type Version struct {
	ID int64 `json:"id"`
	ProductSlug string `json:"productSlug"`
	// the display string, e.g. "1.2.0".
	Version string `json:"version"`
	// unix timestamp of the version's creation.
	Created int64 `json:"created"`
	DeveloperName string `json:"developerName"`
	ReleaseNotes string `json:"releaseNotes"`
	ApprovalNotes string `json:"approvalNotes"`
	Deleted bool `json:"deleted"`
	Status ZamboniVersionStatus `json:"status"`
	// ordered file list. only meaningful for packaged apps.
	AllFiles []*File `json:"allFiles"`
}

// the status label shown in the history header row. deletion
// overrides whatever review status the version holds.
func (v *Version) StatusLabel() string {
	if v.Deleted { return "Deleted" }
	switch v.Status {
	case VERSION_PENDING: return "Pending approval"
	case VERSION_PUBLIC: return "Approved"
	case VERSION_REJECTED: return "Rejected"
	case VERSION_OBSOLETE: return "Obsolete"
	default: return "Unknown"
	}
}
