package templates

import (
	"github.com/naveen24691/zamboni/pkg/zamboni/model"
	"github.com/naveen24691/zamboni/pkg/zamboni/pager"
)

// URLReverser produces the hyperlinks embedded in rendered pages. the
// routing layer owns the actual url shapes; the view only ever sees
// finished strings.
type URLReverser interface {
	FileValidationURL(slug string, fileId int64) string
	FileContentsURL(slug string, fileId int64) string
	FileCompareURL(slug string, fileId int64, targetId int64) string
	CommThreadListURL(slug string) string
	CommNoteURL(threadId int64) string
}

// DiffTargetResolver maps a file of the latest version to the file it
// should be compared against in the configured diff target. returns 0
// when the target holds no counterpart.
type DiffTargetResolver func(f *model.File) int64

// the sentinel thread id emitted in the data attributes; the
// commbadge client substitutes the real thread id before issuing
// requests.
const PlaceholderThreadID int64 = 0

type CommbadgeModel struct {
	AppSlug string
	ThreadListURL string
	ThreadID int64
	NoteURL string
}

type HistoryFileModel struct {
	File *model.File
	StatusLabel string
	ShowLinks bool
	ValidationURL string
	ContentsURL string
	// empty when no compare link should be shown.
	CompareURL string
}

type HistoryVersionModel struct {
	Version *model.Version
	StatusLabel string
	ShowFiles bool
	Files []HistoryFileModel
}

type HistoryModel struct {
	App *model.Product
	Commbadge CommbadgeModel
	Versions []HistoryVersionModel
}

// NewHistoryModel projects a product and its version pager into the
// history view's model. versions come out newest-first regardless of
// the pager's storage order. the projection is pure: no i/o, no
// mutation of its inputs, identical inputs give an identical model.
func NewHistoryModel(app *model.Product, p pager.Pager, showDiff *model.Version, resolveDiffTarget DiffTargetResolver, rev URLReverser) *HistoryModel {
	versions := pager.ReverseChronological(p)
	vms := make([]HistoryVersionModel, 0, len(versions))
	for _, v := range versions {
		vm := HistoryVersionModel{
			Version: v,
			StatusLabel: v.StatusLabel(),
			ShowFiles: app.IsPackaged && len(v.AllFiles) > 0,
		}
		if vm.ShowFiles {
			vm.Files = make([]HistoryFileModel, 0, len(v.AllFiles))
			for _, f := range v.AllFiles {
				fm := HistoryFileModel{
					File: f,
					StatusLabel: f.StatusLabel(),
					ShowLinks: !v.Deleted,
				}
				if fm.ShowLinks {
					fm.ValidationURL = rev.FileValidationURL(app.Slug, f.ID)
					fm.ContentsURL = rev.FileContentsURL(app.Slug, f.ID)
					if showDiff != nil && v.ID == app.LatestVersionID {
						targetId := resolveDiffTarget(f)
						if targetId != 0 {
							fm.CompareURL = rev.FileCompareURL(app.Slug, f.ID, targetId)
						}
					}
				}
				vm.Files = append(vm.Files, fm)
			}
		}
		vms = append(vms, vm)
	}
	return &HistoryModel{
		App: app,
		Commbadge: CommbadgeModel{
			AppSlug: app.Slug,
			ThreadListURL: rev.CommThreadListURL(app.Slug),
			ThreadID: PlaceholderThreadID,
			NoteURL: rev.CommNoteURL(PlaceholderThreadID),
		},
		Versions: vms,
	}
}

// MatchByPlatform returns a DiffTargetResolver that pairs files thru
// their platform, the way the compare page expects.
func MatchByPlatform(target *model.Version) DiffTargetResolver {
	return func(f *model.File) int64 {
		if target == nil { return 0 }
		for _, tf := range target.AllFiles {
			if tf.Platform == f.Platform { return tf.ID }
		}
		return 0
	}
}
