package sqlite

import "fmt"

func (dbif *SqliteZamboniDatabaseInterface) InstallTables() error {
	pfx := dbif.tablePrefix()
	tx, err := dbif.connection.Begin()
	if err != nil { return err }
	_, err = tx.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %sproduct (
    product_slug TEXT UNIQUE,
    product_name TEXT,
    product_description TEXT,
    product_packaged INTEGER,
    product_status INTEGER,
    product_latest_version INTEGER
)`, pfx))
	if err != nil { tx.Rollback(); return err }
	_, err = tx.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %sversion (
    version_id INTEGER PRIMARY KEY AUTOINCREMENT,
    product_slug TEXT,
    version_string TEXT,
    version_created INTEGER,
    version_developer TEXT,
    version_release_notes TEXT,
    version_approval_notes TEXT,
    version_deleted INTEGER,
    version_status INTEGER,
    FOREIGN KEY (product_slug) REFERENCES %sproduct(product_slug)
)`, pfx, pfx))
	if err != nil { tx.Rollback(); return err }
	_, err = tx.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %sfile (
    file_id INTEGER PRIMARY KEY AUTOINCREMENT,
    version_id INTEGER,
    file_name TEXT,
    file_platform TEXT,
    file_size INTEGER,
    file_hash TEXT,
    file_status INTEGER,
    file_validation TEXT,
    FOREIGN KEY (version_id) REFERENCES %sversion(version_id)
)`, pfx, pfx))
	if err != nil { tx.Rollback(); return err }
	_, err = tx.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %scomm_thread (
    thread_id INTEGER PRIMARY KEY AUTOINCREMENT,
    product_slug TEXT,
    version_id INTEGER,
    thread_created INTEGER,
    FOREIGN KEY (product_slug) REFERENCES %sproduct(product_slug),
    FOREIGN KEY (version_id) REFERENCES %sversion(version_id)
)`, pfx, pfx, pfx))
	if err != nil { tx.Rollback(); return err }
	_, err = tx.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %scomm_note (
    note_id INTEGER PRIMARY KEY AUTOINCREMENT,
    thread_id INTEGER,
    note_key TEXT UNIQUE,
    note_author TEXT,
    note_type INTEGER,
    note_body TEXT,
    note_created INTEGER,
    FOREIGN KEY (thread_id) REFERENCES %scomm_thread(thread_id)
)`, pfx, pfx))
	if err != nil { tx.Rollback(); return err }
	err = tx.Commit()
	if err != nil { tx.Rollback(); return err }
	return nil
}
