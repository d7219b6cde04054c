package templates

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/naveen24691/zamboni/pkg/zamboni/locale"
	"github.com/naveen24691/zamboni/pkg/zamboni/model"
	"github.com/naveen24691/zamboni/pkg/zamboni/pager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testReverser struct{}

func (testReverser) FileValidationURL(slug string, fileId int64) string {
	return fmt.Sprintf("/reviewers/apps/%s/files/%d/validation", slug, fileId)
}
func (testReverser) FileContentsURL(slug string, fileId int64) string {
	return fmt.Sprintf("/reviewers/apps/%s/files/%d", slug, fileId)
}
func (testReverser) FileCompareURL(slug string, fileId int64, targetId int64) string {
	return fmt.Sprintf("/reviewers/apps/%s/files/%d/compare/%d", slug, fileId, targetId)
}
func (testReverser) CommThreadListURL(slug string) string {
	return fmt.Sprintf("/api/comm/app/%s/threads", slug)
}
func (testReverser) CommNoteURL(threadId int64) string {
	return fmt.Sprintf("/api/comm/thread/%d/notes", threadId)
}

func testApp(packaged bool) *model.Product {
	return &model.Product{
		Slug: "steamed-hams",
		Name: "Steamed Hams",
		IsPackaged: packaged,
		Status: model.PRODUCT_PUBLIC,
		LatestVersionID: 2,
	}
}

func testVersions() []*model.Version {
	v1 := &model.Version{
		ID: 1,
		ProductSlug: "steamed-hams",
		Version: "1.0",
		Created: 1400000000,
		DeveloperName: "seymour",
		Status: model.VERSION_PUBLIC,
		AllFiles: []*model.File{
			{ID: 11, VersionID: 1, Filename: "app-1.0.zip", Platform: "all", Status: model.FILE_APPROVED},
		},
	}
	v2 := &model.Version{
		ID: 2,
		ProductSlug: "steamed-hams",
		Version: "2.0",
		Created: 1400086400,
		DeveloperName: "seymour",
		Status: model.VERSION_PENDING,
		AllFiles: []*model.File{
			{ID: 21, VersionID: 2, Filename: "app-2.0.zip", Platform: "all", Status: model.FILE_PENDING},
		},
	}
	return []*model.Version{v1, v2}
}

func TestHistoryModelNewestFirst(t *testing.T) {
	app := testApp(true)
	vs := testVersions()
	// feed the pager oldest-first; the model must still come out
	// newest-first.
	m := NewHistoryModel(app, pager.NewSlicePager(vs), nil, nil, testReverser{})
	require.Len(t, m.Versions, 2)
	assert.Equal(t, int64(2), m.Versions[0].Version.ID)
	assert.Equal(t, int64(1), m.Versions[1].Version.ID)

	// and the same when fed newest-first already.
	m2 := NewHistoryModel(app, pager.NewSlicePager([]*model.Version{vs[1], vs[0]}), nil, nil, testReverser{})
	require.Len(t, m2.Versions, 2)
	assert.Equal(t, int64(2), m2.Versions[0].Version.ID)
	assert.Equal(t, int64(1), m2.Versions[1].Version.ID)
}

func TestHistoryModelFilesOnlyForPackagedApps(t *testing.T) {
	vs := testVersions()

	m := NewHistoryModel(testApp(true), pager.NewSlicePager(vs), nil, nil, testReverser{})
	assert.True(t, m.Versions[0].ShowFiles)
	require.Len(t, m.Versions[0].Files, 1)

	m = NewHistoryModel(testApp(false), pager.NewSlicePager(vs), nil, nil, testReverser{})
	assert.False(t, m.Versions[0].ShowFiles)
	assert.Empty(t, m.Versions[0].Files)
}

func TestHistoryModelNoFilesNoFilesCell(t *testing.T) {
	vs := testVersions()
	vs[1].AllFiles = nil
	m := NewHistoryModel(testApp(true), pager.NewSlicePager(vs), nil, nil, testReverser{})
	// newest version has no files, so no files cell for it...
	assert.False(t, m.Versions[0].ShowFiles)
	// ...but the older one still has its own.
	assert.True(t, m.Versions[1].ShowFiles)
}

func TestHistoryModelCompareLinkOnlyOnLatestVersion(t *testing.T) {
	app := testApp(true)
	vs := testVersions()
	target := vs[0]
	m := NewHistoryModel(app, pager.NewSlicePager(vs), target, MatchByPlatform(target), testReverser{})
	// latest version gets the link, pointing at the older file of the
	// same platform.
	require.Len(t, m.Versions[0].Files, 1)
	assert.Equal(t, "/reviewers/apps/steamed-hams/files/21/compare/11", m.Versions[0].Files[0].CompareURL)
	// the older version never does.
	require.Len(t, m.Versions[1].Files, 1)
	assert.Empty(t, m.Versions[1].Files[0].CompareURL)
}

func TestHistoryModelNoCompareLinkWithoutDiffTarget(t *testing.T) {
	app := testApp(true)
	vs := testVersions()
	m := NewHistoryModel(app, pager.NewSlicePager(vs), nil, nil, testReverser{})
	assert.Empty(t, m.Versions[0].Files[0].CompareURL)
}

func TestHistoryModelNoCompareLinkWhenPlatformMismatch(t *testing.T) {
	app := testApp(true)
	vs := testVersions()
	vs[0].AllFiles[0].Platform = "linux"
	target := vs[0]
	m := NewHistoryModel(app, pager.NewSlicePager(vs), target, MatchByPlatform(target), testReverser{})
	assert.Empty(t, m.Versions[0].Files[0].CompareURL)
}

func TestHistoryModelDeletedVersionHidesLinks(t *testing.T) {
	app := testApp(true)
	vs := testVersions()
	vs[1].Deleted = true
	target := vs[0]
	m := NewHistoryModel(app, pager.NewSlicePager(vs), target, MatchByPlatform(target), testReverser{})
	f := m.Versions[0].Files[0]
	assert.False(t, f.ShowLinks)
	assert.Empty(t, f.ValidationURL)
	assert.Empty(t, f.ContentsURL)
	assert.Empty(t, f.CompareURL)
	assert.Equal(t, "Deleted", m.Versions[0].StatusLabel)
}

func TestHistoryModelCommbadgeAttributes(t *testing.T) {
	m := NewHistoryModel(testApp(true), pager.NewSlicePager(nil), nil, nil, testReverser{})
	assert.Equal(t, "steamed-hams", m.Commbadge.AppSlug)
	assert.Equal(t, "/api/comm/app/steamed-hams/threads", m.Commbadge.ThreadListURL)
	assert.Equal(t, PlaceholderThreadID, m.Commbadge.ThreadID)
}

func renderHistory(t *testing.T, m *HistoryModel) string {
	t9n, err := locale.NewTranslator("en-US")
	require.NoError(t, err)
	tmpl := LoadTemplate(t9n).Lookup("history")
	require.NotNil(t, tmpl)
	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, m))
	return buf.String()
}

func TestHistoryFragmentNotesRowsIndependent(t *testing.T) {
	app := testApp(true)
	vs := testVersions()
	vs[1].ReleaseNotes = "it's a regional dish"
	m := NewHistoryModel(app, pager.NewSlicePager(vs), nil, nil, testReverser{})
	out := renderHistory(t, m)
	assert.Contains(t, out, "Version Notes")
	assert.NotContains(t, out, "Approval Notes")

	vs[1].ReleaseNotes = ""
	vs[1].ApprovalNotes = "see https://example.com/policy"
	m = NewHistoryModel(app, pager.NewSlicePager(vs), nil, nil, testReverser{})
	out = renderHistory(t, m)
	assert.NotContains(t, out, "Version Notes")
	assert.Contains(t, out, "Approval Notes")
	assert.Contains(t, out, `<a href="https://example.com/policy"`)
}

func TestHistoryFragmentOneHeaderAndBodyRowPerVersion(t *testing.T) {
	m := NewHistoryModel(testApp(true), pager.NewSlicePager(testVersions()), nil, nil, testReverser{})
	out := renderHistory(t, m)
	assert.Equal(t, 2, strings.Count(out, `class="listing-header"`))
	assert.Equal(t, 2, strings.Count(out, `class="listing-body"`))
	// newest version's header comes first.
	assert.Less(t, strings.Index(out, "Version 2.0"), strings.Index(out, "Version 1.0"))
}

func TestHistoryFragmentEmptyPager(t *testing.T) {
	m := NewHistoryModel(testApp(true), pager.NewSlicePager(nil), nil, nil, testReverser{})
	out := renderHistory(t, m)
	assert.Contains(t, out, "This app has no versions.")
	assert.NotContains(t, out, `class="listing-header"`)
	// the commbadge header div renders regardless.
	assert.Contains(t, out, `id="review-files-header"`)
}

func TestHistoryFragmentDeterministic(t *testing.T) {
	app := testApp(true)
	vs := testVersions()
	vs[0].ReleaseNotes = "line one\nline two"
	vs[0].ApprovalNotes = "ok per www.example.com/very/long/path"
	target := vs[0]
	m := NewHistoryModel(app, pager.NewSlicePager(vs), target, MatchByPlatform(target), testReverser{})
	first := renderHistory(t, m)
	m2 := NewHistoryModel(app, pager.NewSlicePager(vs), target, MatchByPlatform(target), testReverser{})
	second := renderHistory(t, m2)
	assert.Equal(t, first, second)
}
