package pager

import (
	"slices"

	"github.com/naveen24691/zamboni/pkg/zamboni/model"
)

// a paginated collection of the versions of one product. the backend
// that produced it decides the storage order; consumers that need a
// specific display order must not trust it (see ReverseChronological).
type Pager interface {
	Count() int
	ObjectList() []*model.Version
}

type SlicePager struct {
	versions []*model.Version
}

func NewSlicePager(versions []*model.Version) *SlicePager {
	return &SlicePager{versions: versions}
}

func (p *SlicePager) Count() int {
	return len(p.versions)
}

func (p *SlicePager) ObjectList() []*model.Version {
	return p.versions
}

// ReverseChronological returns the pager's versions newest-first.
// historically the underlying list was stored oldest-first and the
// view walked it with a descending index; that silently breaks the
// moment a backend changes its iteration order, so we sort by id
// descending here instead of trusting the storage order. the input
// is not mutated. every version is visited exactly once.
func ReverseChronological(p Pager) []*model.Version {
	res := make([]*model.Version, 0, p.Count())
	res = append(res, p.ObjectList()...)
	slices.SortStableFunc(res, func(a *model.Version, b *model.Version) int {
		if a.ID > b.ID { return -1 }
		if a.ID < b.ID { return 1 }
		return 0
	})
	return res
}
