package db

import "github.com/naveen24691/zamboni/pkg/zamboni/model"

type ZamboniDatabaseInterface interface {
	// we have to discern between "database unusable" and "error while
	// detecting".
	IsDatabaseUsable() (bool, error)
	InstallTables() error
	Dispose() error

	GetProductBySlug(slug string) (*model.Product, error)
	GetAllProducts(pageNum int, pageSize int) ([]*model.Product, error)
	CountAllProducts() (int64, error)
	RegisterProduct(p *model.Product) error

	// versions are returned in storage order; callers that need a
	// specific display order must sort themselves. files are loaded
	// for each version of a packaged product.
	GetAllVersionsOfProduct(slug string) ([]*model.Version, error)
	CountAllVersionsOfProduct(slug string) (int64, error)
	GetVersionByID(id int64) (*model.Version, error)
	// returns the id of the new version.
	RegisterVersion(v *model.Version) (int64, error)

	GetFileByID(id int64) (*model.File, error)
	GetAllFilesOfVersion(versionId int64) ([]*model.File, error)
	// returns the id of the new file.
	RegisterFile(f *model.File) (int64, error)

	GetThreadByID(id int64) (*model.CommThread, error)
	GetThreadOfVersion(versionId int64) (*model.CommThread, error)
	GetAllThreadsOfProduct(slug string, pageNum int, pageSize int) ([]*model.CommThread, error)
	CountAllThreadsOfProduct(slug string) (int64, error)
	// returns the id of the new thread.
	RegisterThread(t *model.CommThread) (int64, error)

	// notes are returned newest-first.
	GetAllNotesOfThread(threadId int64, pageNum int, pageSize int) ([]*model.CommNote, error)
	CountAllNotesOfThread(threadId int64) (int64, error)
	// returns the created note with its id and key filled in.
	RegisterNote(threadId int64, author string, noteType model.ZamboniNoteType, body string) (*model.CommNote, error)
}
