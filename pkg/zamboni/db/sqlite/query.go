package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/naveen24691/zamboni/pkg/zamboni/db"
	"github.com/naveen24691/zamboni/pkg/zamboni/model"
	_ "github.com/mattn/go-sqlite3"
)

func (dbif *SqliteZamboniDatabaseInterface) GetProductBySlug(slug string) (*model.Product, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT product_slug, product_name, product_description, product_packaged, product_status, product_latest_version
FROM %sproduct
WHERE product_slug = ?
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	var pslug, name, description string
	var packaged, status int
	var latestVersion int64
	err = stmt.QueryRow(slug).Scan(&pslug, &name, &description, &packaged, &status, &latestVersion)
	if err == sql.ErrNoRows { return nil, db.NewZamboniDatabaseError(db.ENTITY_NOT_FOUND, "") }
	if err != nil { return nil, err }
	return &model.Product{
		Slug: pslug,
		Name: name,
		Description: description,
		IsPackaged: packaged != 0,
		Status: model.ZamboniProductStatus(status),
		LatestVersionID: latestVersion,
	}, nil
}

func (dbif *SqliteZamboniDatabaseInterface) GetAllProducts(pageNum int, pageSize int) ([]*model.Product, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT product_slug, product_name, product_description, product_packaged, product_status, product_latest_version
FROM %sproduct
ORDER BY rowid ASC LIMIT ? OFFSET ?
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	r, err := stmt.Query(pageSize, pageNum * pageSize)
	if err != nil { return nil, err }
	defer r.Close()
	res := make([]*model.Product, 0)
	var slug, name, description string
	var packaged, status int
	var latestVersion int64
	for r.Next() {
		err = r.Scan(&slug, &name, &description, &packaged, &status, &latestVersion)
		if err != nil { return nil, err }
		res = append(res, &model.Product{
			Slug: slug,
			Name: name,
			Description: description,
			IsPackaged: packaged != 0,
			Status: model.ZamboniProductStatus(status),
			LatestVersionID: latestVersion,
		})
	}
	return res, nil
}

func (dbif *SqliteZamboniDatabaseInterface) CountAllProducts() (int64, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT COUNT(*) FROM %sproduct
`, pfx))
	if err != nil { return 0, err }
	defer stmt.Close()
	var res int64
	err = stmt.QueryRow().Scan(&res)
	if err != nil { return 0, err }
	return res, nil
}

func (dbif *SqliteZamboniDatabaseInterface) RegisterProduct(p *model.Product) error {
	pfx := dbif.tablePrefix()
	stmt1, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT 1 FROM %sproduct WHERE product_slug = ?
`, pfx))
	if err != nil { return err }
	defer stmt1.Close()
	r := stmt1.QueryRow(p.Slug)
	if r.Err() != nil { return r.Err() }
	var chk int
	err = r.Scan(&chk)
	if err != nil && err != sql.ErrNoRows { return err }
	if err == nil {
		return db.NewZamboniDatabaseError(db.ENTITY_ALREADY_EXISTS, p.Slug)
	}
	stmt2, err := dbif.connection.Prepare(fmt.Sprintf(`
INSERT INTO %sproduct(product_slug, product_name, product_description, product_packaged, product_status, product_latest_version)
VALUES (?, ?, ?, ?, ?, ?)
`, pfx))
	if err != nil { return err }
	defer stmt2.Close()
	packaged := 0
	if p.IsPackaged { packaged = 1 }
	_, err = stmt2.Exec(p.Slug, p.Name, p.Description, packaged, int(p.Status), p.LatestVersionID)
	if err != nil { return err }
	return nil
}

func (dbif *SqliteZamboniDatabaseInterface) scanVersionRows(r *sql.Rows, loadFiles bool) ([]*model.Version, error) {
	res := make([]*model.Version, 0)
	var id, created int64
	var slug, versionString, developer, releaseNotes, approvalNotes string
	var deleted, status int
	for r.Next() {
		err := r.Scan(&id, &slug, &versionString, &created, &developer, &releaseNotes, &approvalNotes, &deleted, &status)
		if err != nil { return nil, err }
		res = append(res, &model.Version{
			ID: id,
			ProductSlug: slug,
			Version: versionString,
			Created: created,
			DeveloperName: developer,
			ReleaseNotes: releaseNotes,
			ApprovalNotes: approvalNotes,
			Deleted: deleted != 0,
			Status: model.ZamboniVersionStatus(status),
		})
	}
	if loadFiles {
		for _, v := range res {
			fl, err := dbif.GetAllFilesOfVersion(v.ID)
			if err != nil { return nil, err }
			v.AllFiles = fl
		}
	}
	return res, nil
}

func (dbif *SqliteZamboniDatabaseInterface) GetAllVersionsOfProduct(slug string) ([]*model.Version, error) {
	p, err := dbif.GetProductBySlug(slug)
	if err != nil { return nil, err }
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT version_id, product_slug, version_string, version_created, version_developer, version_release_notes, version_approval_notes, version_deleted, version_status
FROM %sversion
WHERE product_slug = ?
ORDER BY version_id ASC
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	r, err := stmt.Query(slug)
	if err != nil { return nil, err }
	defer r.Close()
	return dbif.scanVersionRows(r, p.IsPackaged)
}

func (dbif *SqliteZamboniDatabaseInterface) CountAllVersionsOfProduct(slug string) (int64, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT COUNT(*) FROM %sversion WHERE product_slug = ?
`, pfx))
	if err != nil { return 0, err }
	defer stmt.Close()
	var res int64
	err = stmt.QueryRow(slug).Scan(&res)
	if err != nil { return 0, err }
	return res, nil
}

func (dbif *SqliteZamboniDatabaseInterface) GetVersionByID(id int64) (*model.Version, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT version_id, product_slug, version_string, version_created, version_developer, version_release_notes, version_approval_notes, version_deleted, version_status
FROM %sversion
WHERE version_id = ?
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	var vid, created int64
	var slug, versionString, developer, releaseNotes, approvalNotes string
	var deleted, status int
	err = stmt.QueryRow(id).Scan(&vid, &slug, &versionString, &created, &developer, &releaseNotes, &approvalNotes, &deleted, &status)
	if err == sql.ErrNoRows { return nil, db.NewZamboniDatabaseError(db.ENTITY_NOT_FOUND, "") }
	if err != nil { return nil, err }
	v := &model.Version{
		ID: vid,
		ProductSlug: slug,
		Version: versionString,
		Created: created,
		DeveloperName: developer,
		ReleaseNotes: releaseNotes,
		ApprovalNotes: approvalNotes,
		Deleted: deleted != 0,
		Status: model.ZamboniVersionStatus(status),
	}
	fl, err := dbif.GetAllFilesOfVersion(vid)
	if err != nil { return nil, err }
	v.AllFiles = fl
	return v, nil
}

func (dbif *SqliteZamboniDatabaseInterface) RegisterVersion(v *model.Version) (int64, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
INSERT INTO %sversion(product_slug, version_string, version_created, version_developer, version_release_notes, version_approval_notes, version_deleted, version_status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, pfx))
	if err != nil { return 0, err }
	defer stmt.Close()
	deleted := 0
	if v.Deleted { deleted = 1 }
	r, err := stmt.Exec(v.ProductSlug, v.Version, v.Created, v.DeveloperName, v.ReleaseNotes, v.ApprovalNotes, deleted, int(v.Status))
	if err != nil { return 0, err }
	id, err := r.LastInsertId()
	if err != nil { return 0, err }
	stmt2, err := dbif.connection.Prepare(fmt.Sprintf(`
UPDATE %sproduct SET product_latest_version = ? WHERE product_slug = ?
`, pfx))
	if err != nil { return 0, err }
	defer stmt2.Close()
	_, err = stmt2.Exec(id, v.ProductSlug)
	if err != nil { return 0, err }
	return id, nil
}

func (dbif *SqliteZamboniDatabaseInterface) GetFileByID(id int64) (*model.File, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT file_id, version_id, file_name, file_platform, file_size, file_hash, file_status, file_validation
FROM %sfile
WHERE file_id = ?
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	var fid, vid, size int64
	var name, platform, hash, validation string
	var status int
	err = stmt.QueryRow(id).Scan(&fid, &vid, &name, &platform, &size, &hash, &status, &validation)
	if err == sql.ErrNoRows { return nil, db.NewZamboniDatabaseError(db.ENTITY_NOT_FOUND, "") }
	if err != nil { return nil, err }
	return &model.File{
		ID: fid,
		VersionID: vid,
		Filename: name,
		Platform: platform,
		Size: size,
		Hash: hash,
		Status: model.ZamboniFileStatus(status),
		Validation: validation,
	}, nil
}

func (dbif *SqliteZamboniDatabaseInterface) GetAllFilesOfVersion(versionId int64) ([]*model.File, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT file_id, version_id, file_name, file_platform, file_size, file_hash, file_status, file_validation
FROM %sfile
WHERE version_id = ?
ORDER BY file_id ASC
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	r, err := stmt.Query(versionId)
	if err != nil { return nil, err }
	defer r.Close()
	res := make([]*model.File, 0)
	var fid, vid, size int64
	var name, platform, hash, validation string
	var status int
	for r.Next() {
		err = r.Scan(&fid, &vid, &name, &platform, &size, &hash, &status, &validation)
		if err != nil { return nil, err }
		res = append(res, &model.File{
			ID: fid,
			VersionID: vid,
			Filename: name,
			Platform: platform,
			Size: size,
			Hash: hash,
			Status: model.ZamboniFileStatus(status),
			Validation: validation,
		})
	}
	return res, nil
}

func (dbif *SqliteZamboniDatabaseInterface) RegisterFile(f *model.File) (int64, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
INSERT INTO %sfile(version_id, file_name, file_platform, file_size, file_hash, file_status, file_validation)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, pfx))
	if err != nil { return 0, err }
	defer stmt.Close()
	r, err := stmt.Exec(f.VersionID, f.Filename, f.Platform, f.Size, f.Hash, int(f.Status), f.Validation)
	if err != nil { return 0, err }
	return r.LastInsertId()
}

func (dbif *SqliteZamboniDatabaseInterface) GetThreadByID(id int64) (*model.CommThread, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT thread_id, product_slug, version_id, thread_created
FROM %scomm_thread
WHERE thread_id = ?
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	var tid, vid, created int64
	var slug string
	err = stmt.QueryRow(id).Scan(&tid, &slug, &vid, &created)
	if err == sql.ErrNoRows { return nil, db.NewZamboniDatabaseError(db.ENTITY_NOT_FOUND, "") }
	if err != nil { return nil, err }
	return &model.CommThread{
		ID: tid,
		ProductSlug: slug,
		VersionID: vid,
		Created: created,
	}, nil
}

func (dbif *SqliteZamboniDatabaseInterface) GetThreadOfVersion(versionId int64) (*model.CommThread, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT thread_id, product_slug, version_id, thread_created
FROM %scomm_thread
WHERE version_id = ?
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	var tid, vid, created int64
	var slug string
	err = stmt.QueryRow(versionId).Scan(&tid, &slug, &vid, &created)
	if err == sql.ErrNoRows { return nil, db.NewZamboniDatabaseError(db.ENTITY_NOT_FOUND, "") }
	if err != nil { return nil, err }
	return &model.CommThread{
		ID: tid,
		ProductSlug: slug,
		VersionID: vid,
		Created: created,
	}, nil
}

func (dbif *SqliteZamboniDatabaseInterface) GetAllThreadsOfProduct(slug string, pageNum int, pageSize int) ([]*model.CommThread, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT thread_id, product_slug, version_id, thread_created
FROM %scomm_thread
WHERE product_slug = ?
ORDER BY thread_id DESC LIMIT ? OFFSET ?
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	r, err := stmt.Query(slug, pageSize, pageNum * pageSize)
	if err != nil { return nil, err }
	defer r.Close()
	res := make([]*model.CommThread, 0)
	var tid, vid, created int64
	var pslug string
	for r.Next() {
		err = r.Scan(&tid, &pslug, &vid, &created)
		if err != nil { return nil, err }
		res = append(res, &model.CommThread{
			ID: tid,
			ProductSlug: pslug,
			VersionID: vid,
			Created: created,
		})
	}
	return res, nil
}

func (dbif *SqliteZamboniDatabaseInterface) CountAllThreadsOfProduct(slug string) (int64, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT COUNT(*) FROM %scomm_thread WHERE product_slug = ?
`, pfx))
	if err != nil { return 0, err }
	defer stmt.Close()
	var res int64
	err = stmt.QueryRow(slug).Scan(&res)
	if err != nil { return 0, err }
	return res, nil
}

func (dbif *SqliteZamboniDatabaseInterface) RegisterThread(t *model.CommThread) (int64, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
INSERT INTO %scomm_thread(product_slug, version_id, thread_created)
VALUES (?, ?, ?)
`, pfx))
	if err != nil { return 0, err }
	defer stmt.Close()
	r, err := stmt.Exec(t.ProductSlug, t.VersionID, t.Created)
	if err != nil { return 0, err }
	return r.LastInsertId()
}

func (dbif *SqliteZamboniDatabaseInterface) GetAllNotesOfThread(threadId int64, pageNum int, pageSize int) ([]*model.CommNote, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT note_id, thread_id, note_key, note_author, note_type, note_body, note_created
FROM %scomm_note
WHERE thread_id = ?
ORDER BY note_id DESC LIMIT ? OFFSET ?
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	r, err := stmt.Query(threadId, pageSize, pageNum * pageSize)
	if err != nil { return nil, err }
	defer r.Close()
	res := make([]*model.CommNote, 0)
	var nid, tid, created int64
	var key, author, body string
	var noteType int
	for r.Next() {
		err = r.Scan(&nid, &tid, &key, &author, &noteType, &body, &created)
		if err != nil { return nil, err }
		res = append(res, &model.CommNote{
			ID: nid,
			ThreadID: tid,
			Key: key,
			Author: author,
			NoteType: model.ZamboniNoteType(noteType),
			Body: body,
			Created: created,
		})
	}
	return res, nil
}

func (dbif *SqliteZamboniDatabaseInterface) CountAllNotesOfThread(threadId int64) (int64, error) {
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT COUNT(*) FROM %scomm_note WHERE thread_id = ?
`, pfx))
	if err != nil { return 0, err }
	defer stmt.Close()
	var res int64
	err = stmt.QueryRow(threadId).Scan(&res)
	if err != nil { return 0, err }
	return res, nil
}

func (dbif *SqliteZamboniDatabaseInterface) RegisterNote(threadId int64, author string, noteType model.ZamboniNoteType, body string) (*model.CommNote, error) {
	_, err := dbif.GetThreadByID(threadId)
	if err != nil { return nil, err }
	pfx := dbif.tablePrefix()
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
INSERT INTO %scomm_note(thread_id, note_key, note_author, note_type, note_body, note_created)
VALUES (?, ?, ?, ?, ?, ?)
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	key := uuid.NewString()
	created := time.Now().Unix()
	r, err := stmt.Exec(threadId, key, author, int(noteType), body, created)
	if err != nil { return nil, err }
	id, err := r.LastInsertId()
	if err != nil { return nil, err }
	return &model.CommNote{
		ID: id,
		ThreadID: threadId,
		Key: key,
		Author: author,
		NoteType: noteType,
		Body: body,
		Created: created,
	}, nil
}
