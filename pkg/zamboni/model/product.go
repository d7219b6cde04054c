package model

type ZamboniProductStatus int

const (
	PRODUCT_PENDING ZamboniProductStatus = 1
	PRODUCT_PUBLIC ZamboniProductStatus = 2
	PRODUCT_REJECTED ZamboniProductStatus = 3
	PRODUCT_DISABLED ZamboniProductStatus = 4
	PRODUCT_DELETED ZamboniProductStatus = 5
)

func ValidProductSlug(s string) bool {
	if len(s) <= 0 { return false }
	for _, k := range s {
		if !(('0' <= k && k <= '9') || ('a' <= k && k <= 'z') || k == '_' || k == '-') { return false }
	}
	return true
}

type Product struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	// markdown. rendered & sanitized before display.
	Description string `json:"description"`
	// a packaged app bundles one or more files per version, each
	// independently reviewable; a hosted app doesn't.
	IsPackaged bool `json:"isPackaged"`
	Status ZamboniProductStatus `json:"status"`
	// id of the latest (i.e. most recently created) version.
	LatestVersionID int64 `json:"latestVersionId"`
}

func (p *Product) StatusLabel() string {
	switch p.Status {
	case PRODUCT_PENDING: return "Pending"
	case PRODUCT_PUBLIC: return "Public"
	case PRODUCT_REJECTED: return "Rejected"
	case PRODUCT_DISABLED: return "Disabled"
	case PRODUCT_DELETED: return "Deleted"
	default: return "Unknown"
	}
}
