package sqlite

import (
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/naveen24691/zamboni/pkg/zamboni"
	"github.com/naveen24691/zamboni/pkg/zamboni/db"
	"github.com/naveen24691/zamboni/pkg/zamboni/model"
)

func setupTestDatabase(t *testing.T) *SqliteZamboniDatabaseInterface {
	cfg := &zamboni.ZamboniConfig{}
	cfg.FilePath = path.Join(t.TempDir(), "zamboni-config.json")
	cfg.Database.Type = "sqlite"
	cfg.Database.Path = "zamboni-test.db"
	cfg.Database.TablePrefix = "zamboni"
	err := cfg.RecalculateProperPath()
	require.NoError(t, err)
	dbif, err := NewSqliteZamboniDatabaseInterface(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { dbif.Dispose() })
	return dbif
}

func TestSqliteInstallTables(t *testing.T) {
	dbif := setupTestDatabase(t)
	usable, err := dbif.IsDatabaseUsable()
	assert.NoError(t, err)
	assert.False(t, usable)
	err = dbif.InstallTables()
	require.NoError(t, err)
	usable, err = dbif.IsDatabaseUsable()
	assert.NoError(t, err)
	assert.True(t, usable)
}

func TestSqliteProductRoundTrip(t *testing.T) {
	dbif := setupTestDatabase(t)
	require.NoError(t, dbif.InstallTables())
	_, err := dbif.GetProductBySlug("no-such-app")
	assert.True(t, db.IsEntityNotFound(err))
	p := &model.Product{
		Slug: "my-app",
		Name: "My App",
		Description: "an app",
		IsPackaged: true,
		Status: model.PRODUCT_PENDING,
	}
	require.NoError(t, dbif.RegisterProduct(p))
	got, err := dbif.GetProductBySlug("my-app")
	require.NoError(t, err)
	assert.Equal(t, "My App", got.Name)
	assert.True(t, got.IsPackaged)
	assert.Equal(t, model.PRODUCT_PENDING, got.Status)
	assert.EqualValues(t, 0, got.LatestVersionID)
	err = dbif.RegisterProduct(p)
	require.Error(t, err)
	zde, ok := err.(*db.ZamboniDatabaseError)
	require.True(t, ok)
	assert.Equal(t, db.ENTITY_ALREADY_EXISTS, zde.ErrorType)
	count, err := dbif.CountAllProducts()
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestSqliteVersionsAndFiles(t *testing.T) {
	dbif := setupTestDatabase(t)
	require.NoError(t, dbif.InstallTables())
	require.NoError(t, dbif.RegisterProduct(&model.Product{
		Slug: "my-app",
		Name: "My App",
		IsPackaged: true,
		Status: model.PRODUCT_PUBLIC,
	}))
	v1, err := dbif.RegisterVersion(&model.Version{
		ProductSlug: "my-app",
		Version: "1.0",
		Created: 1000,
		DeveloperName: "dev",
		Status: model.VERSION_PUBLIC,
	})
	require.NoError(t, err)
	v2, err := dbif.RegisterVersion(&model.Version{
		ProductSlug: "my-app",
		Version: "1.1",
		Created: 2000,
		DeveloperName: "dev",
		ApprovalNotes: "see https://example.org/notes",
		Status: model.VERSION_PENDING,
	})
	require.NoError(t, err)
	assert.Greater(t, v2, v1)
	// registering a version moves the product's latest-version pointer.
	p, err := dbif.GetProductBySlug("my-app")
	require.NoError(t, err)
	assert.Equal(t, v2, p.LatestVersionID)
	fid, err := dbif.RegisterFile(&model.File{
		VersionID: v2,
		Filename: "my-app-1.1.zip",
		Platform: "all",
		Size: 4096,
		Hash: "sha256:deadbeef",
		Status: model.FILE_PENDING,
	})
	require.NoError(t, err)
	f, err := dbif.GetFileByID(fid)
	require.NoError(t, err)
	assert.Equal(t, "my-app-1.1.zip", f.Filename)
	assert.Equal(t, v2, f.VersionID)
	vl, err := dbif.GetAllVersionsOfProduct("my-app")
	require.NoError(t, err)
	require.Len(t, vl, 2)
	// packaged product: files come preloaded on each version.
	assert.Empty(t, vl[0].AllFiles)
	require.Len(t, vl[1].AllFiles, 1)
	assert.Equal(t, fid, vl[1].AllFiles[0].ID)
	count, err := dbif.CountAllVersionsOfProduct("my-app")
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count)
	_, err = dbif.GetVersionByID(9999)
	assert.True(t, db.IsEntityNotFound(err))
	_, err = dbif.GetFileByID(9999)
	assert.True(t, db.IsEntityNotFound(err))
}

func TestSqliteThreadsAndNotes(t *testing.T) {
	dbif := setupTestDatabase(t)
	require.NoError(t, dbif.InstallTables())
	require.NoError(t, dbif.RegisterProduct(&model.Product{
		Slug: "my-app",
		Name: "My App",
		Status: model.PRODUCT_PUBLIC,
	}))
	vid, err := dbif.RegisterVersion(&model.Version{
		ProductSlug: "my-app",
		Version: "1.0",
		Created: 1000,
		Status: model.VERSION_PENDING,
	})
	require.NoError(t, err)
	_, err = dbif.GetThreadOfVersion(vid)
	assert.True(t, db.IsEntityNotFound(err))
	tid, err := dbif.RegisterThread(&model.CommThread{
		ProductSlug: "my-app",
		VersionID: vid,
		Created: 1500,
	})
	require.NoError(t, err)
	th, err := dbif.GetThreadOfVersion(vid)
	require.NoError(t, err)
	assert.Equal(t, tid, th.ID)
	th, err = dbif.GetThreadByID(tid)
	require.NoError(t, err)
	assert.Equal(t, vid, th.VersionID)
	n1, err := dbif.RegisterNote(tid, "reviewer@example.org", model.NOTE_REVIEWER_COMMENT, "first")
	require.NoError(t, err)
	n2, err := dbif.RegisterNote(tid, "dev@example.org", model.NOTE_RESUBMISSION, "second")
	require.NoError(t, err)
	assert.NotEmpty(t, n1.Key)
	assert.NotEqual(t, n1.Key, n2.Key)
	// note listings run newest first.
	nl, err := dbif.GetAllNotesOfThread(tid, 0, 10)
	require.NoError(t, err)
	require.Len(t, nl, 2)
	assert.Equal(t, "second", nl[0].Body)
	assert.Equal(t, "first", nl[1].Body)
	count, err := dbif.CountAllNotesOfThread(tid)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count)
	_, err = dbif.RegisterNote(9999, "x@example.org", model.NOTE_NO_ACTION, "orphan")
	assert.True(t, db.IsEntityNotFound(err))
	tl, err := dbif.GetAllThreadsOfProduct("my-app", 0, 10)
	require.NoError(t, err)
	assert.Len(t, tl, 1)
	tcount, err := dbif.CountAllThreadsOfProduct("my-app")
	assert.NoError(t, err)
	assert.EqualValues(t, 1, tcount)
}
