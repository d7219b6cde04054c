package postgres

import (
	"context"
	"fmt"
)

func (dbif *PostgresZamboniDatabaseInterface) InstallTables() error {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.Background()
	tx, err := dbif.pool.Begin(ctx)
	if err != nil { return err }
	_, err = tx.Exec(ctx, fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s_product (
    product_slug TEXT UNIQUE,
    product_name TEXT,
    product_description TEXT,
    product_packaged BOOLEAN,
    product_status INTEGER,
    product_latest_version BIGINT
)`, pfx))
	if err != nil { tx.Rollback(ctx); return err }
	_, err = tx.Exec(ctx, fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s_version (
    version_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    product_slug TEXT REFERENCES %s_product(product_slug),
    version_string TEXT,
    version_created BIGINT,
    version_developer TEXT,
    version_release_notes TEXT,
    version_approval_notes TEXT,
    version_deleted BOOLEAN,
    version_status INTEGER
)`, pfx, pfx))
	if err != nil { tx.Rollback(ctx); return err }
	_, err = tx.Exec(ctx, fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s_file (
    file_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    version_id BIGINT REFERENCES %s_version(version_id),
    file_name TEXT,
    file_platform TEXT,
    file_size BIGINT,
    file_hash TEXT,
    file_status INTEGER,
    file_validation TEXT
)`, pfx, pfx))
	if err != nil { tx.Rollback(ctx); return err }
	_, err = tx.Exec(ctx, fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s_comm_thread (
    thread_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    product_slug TEXT REFERENCES %s_product(product_slug),
    version_id BIGINT REFERENCES %s_version(version_id),
    thread_created BIGINT
)`, pfx, pfx, pfx))
	if err != nil { tx.Rollback(ctx); return err }
	_, err = tx.Exec(ctx, fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s_comm_note (
    note_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    thread_id BIGINT REFERENCES %s_comm_thread(thread_id),
    note_key TEXT UNIQUE,
    note_author TEXT,
    note_type INTEGER,
    note_body TEXT,
    note_created BIGINT
)`, pfx, pfx))
	if err != nil { tx.Rollback(ctx); return err }
	err = tx.Commit(ctx)
	if err != nil { tx.Rollback(ctx); return err }
	return nil
}
