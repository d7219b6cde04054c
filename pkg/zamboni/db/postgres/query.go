package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/naveen24691/zamboni/pkg/zamboni/db"
	"github.com/naveen24691/zamboni/pkg/zamboni/model"
)

func (dbif *PostgresZamboniDatabaseInterface) GetProductBySlug(slug string) (*model.Product, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
SELECT product_name, product_description, product_packaged, product_status, product_latest_version
FROM %s_product
WHERE product_slug = $1
`, pfx), slug)
	var name, description string
	var packaged bool
	var status int
	var latestVersion int64
	err := stmt.Scan(&name, &description, &packaged, &status, &latestVersion)
	if errors.Is(err, pgx.ErrNoRows) { return nil, db.ErrEntityNotFound }
	if err != nil { return nil, err }
	return &model.Product{
		Slug: slug,
		Name: name,
		Description: description,
		IsPackaged: packaged,
		Status: model.ZamboniProductStatus(status),
		LatestVersionID: latestVersion,
	}, nil
}

func (dbif *PostgresZamboniDatabaseInterface) GetAllProducts(pageNum int, pageSize int) ([]*model.Product, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt, err := dbif.pool.Query(ctx, fmt.Sprintf(`
SELECT product_slug, product_name, product_description, product_packaged, product_status, product_latest_version
FROM %s_product
ORDER BY product_slug ASC LIMIT $1 OFFSET $2
`, pfx), pageSize, pageNum * pageSize)
	if err != nil { return nil, err }
	defer stmt.Close()
	res := make([]*model.Product, 0)
	for stmt.Next() {
		var slug, name, description string
		var packaged bool
		var status int
		var latestVersion int64
		err := stmt.Scan(&slug, &name, &description, &packaged, &status, &latestVersion)
		if err != nil { return nil, err }
		res = append(res, &model.Product{
			Slug: slug,
			Name: name,
			Description: description,
			IsPackaged: packaged,
			Status: model.ZamboniProductStatus(status),
			LatestVersionID: latestVersion,
		})
	}
	return res, nil
}

func (dbif *PostgresZamboniDatabaseInterface) CountAllProducts() (int64, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
SELECT COUNT(*) FROM %s_product
`, pfx))
	var res int64
	err := stmt.Scan(&res)
	if err != nil { return 0, err }
	return res, nil
}

func (dbif *PostgresZamboniDatabaseInterface) RegisterProduct(p *model.Product) error {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	chk := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
SELECT 1 FROM %s_product WHERE product_slug = $1
`, pfx), p.Slug)
	var a int
	err := chk.Scan(&a)
	if err == nil {
		return db.NewZamboniDatabaseError(db.ENTITY_ALREADY_EXISTS, p.Slug)
	}
	if !errors.Is(err, pgx.ErrNoRows) { return err }
	_, err = dbif.pool.Exec(ctx, fmt.Sprintf(`
INSERT INTO %s_product(product_slug, product_name, product_description, product_packaged, product_status, product_latest_version)
VALUES ($1, $2, $3, $4, $5, $6)
`, pfx), p.Slug, p.Name, p.Description, p.IsPackaged, int(p.Status), p.LatestVersionID)
	if err != nil { return err }
	return nil
}

func (dbif *PostgresZamboniDatabaseInterface) GetAllVersionsOfProduct(slug string) ([]*model.Version, error) {
	p, err := dbif.GetProductBySlug(slug)
	if err != nil { return nil, err }
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt, err := dbif.pool.Query(ctx, fmt.Sprintf(`
SELECT version_id, product_slug, version_string, version_created, version_developer, version_release_notes, version_approval_notes, version_deleted, version_status
FROM %s_version
WHERE product_slug = $1
ORDER BY version_id ASC
`, pfx), slug)
	if err != nil { return nil, err }
	defer stmt.Close()
	res := make([]*model.Version, 0)
	for stmt.Next() {
		var id, created int64
		var pslug, versionString, developer, releaseNotes, approvalNotes string
		var deleted bool
		var status int
		err := stmt.Scan(&id, &pslug, &versionString, &created, &developer, &releaseNotes, &approvalNotes, &deleted, &status)
		if err != nil { return nil, err }
		res = append(res, &model.Version{
			ID: id,
			ProductSlug: pslug,
			Version: versionString,
			Created: created,
			DeveloperName: developer,
			ReleaseNotes: releaseNotes,
			ApprovalNotes: approvalNotes,
			Deleted: deleted,
			Status: model.ZamboniVersionStatus(status),
		})
	}
	if p.IsPackaged {
		for _, v := range res {
			fl, err := dbif.GetAllFilesOfVersion(v.ID)
			if err != nil { return nil, err }
			v.AllFiles = fl
		}
	}
	return res, nil
}

func (dbif *PostgresZamboniDatabaseInterface) CountAllVersionsOfProduct(slug string) (int64, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
SELECT COUNT(*) FROM %s_version WHERE product_slug = $1
`, pfx), slug)
	var res int64
	err := stmt.Scan(&res)
	if err != nil { return 0, err }
	return res, nil
}

func (dbif *PostgresZamboniDatabaseInterface) GetVersionByID(id int64) (*model.Version, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
SELECT product_slug, version_string, version_created, version_developer, version_release_notes, version_approval_notes, version_deleted, version_status
FROM %s_version
WHERE version_id = $1
`, pfx), id)
	var slug, versionString, developer, releaseNotes, approvalNotes string
	var created int64
	var deleted bool
	var status int
	err := stmt.Scan(&slug, &versionString, &created, &developer, &releaseNotes, &approvalNotes, &deleted, &status)
	if errors.Is(err, pgx.ErrNoRows) { return nil, db.ErrEntityNotFound }
	if err != nil { return nil, err }
	v := &model.Version{
		ID: id,
		ProductSlug: slug,
		Version: versionString,
		Created: created,
		DeveloperName: developer,
		ReleaseNotes: releaseNotes,
		ApprovalNotes: approvalNotes,
		Deleted: deleted,
		Status: model.ZamboniVersionStatus(status),
	}
	fl, err := dbif.GetAllFilesOfVersion(id)
	if err != nil { return nil, err }
	v.AllFiles = fl
	return v, nil
}

func (dbif *PostgresZamboniDatabaseInterface) RegisterVersion(v *model.Version) (int64, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	deleted := v.Deleted
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
INSERT INTO %s_version(product_slug, version_string, version_created, version_developer, version_release_notes, version_approval_notes, version_deleted, version_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING version_id
`, pfx), v.ProductSlug, v.Version, v.Created, v.DeveloperName, v.ReleaseNotes, v.ApprovalNotes, deleted, int(v.Status))
	var id int64
	err := stmt.Scan(&id)
	if err != nil { return 0, err }
	_, err = dbif.pool.Exec(ctx, fmt.Sprintf(`
UPDATE %s_product SET product_latest_version = $1 WHERE product_slug = $2
`, pfx), id, v.ProductSlug)
	if err != nil { return 0, err }
	return id, nil
}

func (dbif *PostgresZamboniDatabaseInterface) GetFileByID(id int64) (*model.File, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
SELECT version_id, file_name, file_platform, file_size, file_hash, file_status, file_validation
FROM %s_file
WHERE file_id = $1
`, pfx), id)
	var vid, size int64
	var name, platform, hash, validation string
	var status int
	err := stmt.Scan(&vid, &name, &platform, &size, &hash, &status, &validation)
	if errors.Is(err, pgx.ErrNoRows) { return nil, db.ErrEntityNotFound }
	if err != nil { return nil, err }
	return &model.File{
		ID: id,
		VersionID: vid,
		Filename: name,
		Platform: platform,
		Size: size,
		Hash: hash,
		Status: model.ZamboniFileStatus(status),
		Validation: validation,
	}, nil
}

func (dbif *PostgresZamboniDatabaseInterface) GetAllFilesOfVersion(versionId int64) ([]*model.File, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt, err := dbif.pool.Query(ctx, fmt.Sprintf(`
SELECT file_id, version_id, file_name, file_platform, file_size, file_hash, file_status, file_validation
FROM %s_file
WHERE version_id = $1
ORDER BY file_id ASC
`, pfx), versionId)
	if err != nil { return nil, err }
	defer stmt.Close()
	res := make([]*model.File, 0)
	for stmt.Next() {
		var fid, vid, size int64
		var name, platform, hash, validation string
		var status int
		err := stmt.Scan(&fid, &vid, &name, &platform, &size, &hash, &status, &validation)
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

func (dbif *PostgresZamboniDatabaseInterface) RegisterFile(f *model.File) (int64, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
INSERT INTO %s_file(version_id, file_name, file_platform, file_size, file_hash, file_status, file_validation)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING file_id
`, pfx), f.VersionID, f.Filename, f.Platform, f.Size, f.Hash, int(f.Status), f.Validation)
	var id int64
	err := stmt.Scan(&id)
	if err != nil { return 0, err }
	return id, nil
}

func (dbif *PostgresZamboniDatabaseInterface) GetThreadByID(id int64) (*model.CommThread, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
SELECT product_slug, version_id, thread_created
FROM %s_comm_thread
WHERE thread_id = $1
`, pfx), id)
	var slug string
	var vid, created int64
	err := stmt.Scan(&slug, &vid, &created)
	if errors.Is(err, pgx.ErrNoRows) { return nil, db.ErrEntityNotFound }
	if err != nil { return nil, err }
	return &model.CommThread{
		ID: id,
		ProductSlug: slug,
		VersionID: vid,
		Created: created,
	}, nil
}

func (dbif *PostgresZamboniDatabaseInterface) GetThreadOfVersion(versionId int64) (*model.CommThread, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
SELECT thread_id, product_slug, thread_created
FROM %s_comm_thread
WHERE version_id = $1
`, pfx), versionId)
	var tid, created int64
	var slug string
	err := stmt.Scan(&tid, &slug, &created)
	if errors.Is(err, pgx.ErrNoRows) { return nil, db.ErrEntityNotFound }
	if err != nil { return nil, err }
	return &model.CommThread{
		ID: tid,
		ProductSlug: slug,
		VersionID: versionId,
		Created: created,
	}, nil
}

func (dbif *PostgresZamboniDatabaseInterface) GetAllThreadsOfProduct(slug string, pageNum int, pageSize int) ([]*model.CommThread, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt, err := dbif.pool.Query(ctx, fmt.Sprintf(`
SELECT thread_id, product_slug, version_id, thread_created
FROM %s_comm_thread
WHERE product_slug = $1
ORDER BY thread_id DESC LIMIT $2 OFFSET $3
`, pfx), slug, pageSize, pageNum * pageSize)
	if err != nil { return nil, err }
	defer stmt.Close()
	res := make([]*model.CommThread, 0)
	for stmt.Next() {
		var tid, vid, created int64
		var pslug string
		err := stmt.Scan(&tid, &pslug, &vid, &created)
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

func (dbif *PostgresZamboniDatabaseInterface) CountAllThreadsOfProduct(slug string) (int64, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
SELECT COUNT(*) FROM %s_comm_thread WHERE product_slug = $1
`, pfx), slug)
	var res int64
	err := stmt.Scan(&res)
	if err != nil { return 0, err }
	return res, nil
}

func (dbif *PostgresZamboniDatabaseInterface) RegisterThread(t *model.CommThread) (int64, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
INSERT INTO %s_comm_thread(product_slug, version_id, thread_created)
VALUES ($1, $2, $3)
RETURNING thread_id
`, pfx), t.ProductSlug, t.VersionID, t.Created)
	var id int64
	err := stmt.Scan(&id)
	if err != nil { return 0, err }
	return id, nil
}

func (dbif *PostgresZamboniDatabaseInterface) GetAllNotesOfThread(threadId int64, pageNum int, pageSize int) ([]*model.CommNote, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt, err := dbif.pool.Query(ctx, fmt.Sprintf(`
SELECT note_id, thread_id, note_key, note_author, note_type, note_body, note_created
FROM %s_comm_note
WHERE thread_id = $1
ORDER BY note_id DESC LIMIT $2 OFFSET $3
`, pfx), threadId, pageSize, pageNum * pageSize)
	if err != nil { return nil, err }
	defer stmt.Close()
	res := make([]*model.CommNote, 0)
	for stmt.Next() {
		var nid, tid, created int64
		var key, author, body string
		var noteType int
		err := stmt.Scan(&nid, &tid, &key, &author, &noteType, &body, &created)
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

func (dbif *PostgresZamboniDatabaseInterface) CountAllNotesOfThread(threadId int64) (int64, error) {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
SELECT COUNT(*) FROM %s_comm_note WHERE thread_id = $1
`, pfx), threadId)
	var res int64
	err := stmt.Scan(&res)
	if err != nil { return 0, err }
	return res, nil
}

func (dbif *PostgresZamboniDatabaseInterface) RegisterNote(threadId int64, author string, noteType model.ZamboniNoteType, body string) (*model.CommNote, error) {
	_, err := dbif.GetThreadByID(threadId)
	if err != nil { return nil, err }
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	key := uuid.NewString()
	created := time.Now().Unix()
	stmt := dbif.pool.QueryRow(ctx, fmt.Sprintf(`
INSERT INTO %s_comm_note(thread_id, note_key, note_author, note_type, note_body, note_created)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING note_id
`, pfx), threadId, key, author, int(noteType), body, created)
	var id int64
	err = stmt.Scan(&id)
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
