package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/naveen24691/zamboni/pkg/zamboni"
)

type PostgresZamboniDatabaseInterface struct {
	config *zamboni.ZamboniConfig
	pool *pgxpool.Pool
}

func NewPostgresZamboniDatabaseInterface(cfg *zamboni.ZamboniConfig) (*PostgresZamboniDatabaseInterface, error) {
	u := &url.URL{
		Scheme: "postgres",
		User: url.UserPassword(cfg.Database.UserName, cfg.Database.Password),
		Host: cfg.Database.URL,
		Path: cfg.Database.DatabaseName,
	}
	pool, err := pgxpool.New(context.TODO(), u.String())
	if err != nil { return nil, err }
	return &PostgresZamboniDatabaseInterface{
		config: cfg,
		pool: pool,
	}, nil
}

func (dbif *PostgresZamboniDatabaseInterface) Dispose() error {
	dbif.pool.Close()
	return nil
}

var requiredTableList = []string{
	"product",
	"version",
	"file",
	"comm_thread",
	"comm_note",
}

func (dbif *PostgresZamboniDatabaseInterface) IsDatabaseUsable() (bool, error) {
	ctx := context.Background()
	for _, item := range requiredTableList {
		tableName := fmt.Sprintf("%s_%s", dbif.config.Database.TablePrefix, item)
		stmt := dbif.pool.QueryRow(ctx, `
SELECT 1 FROM information_schema.tables WHERE table_name = $1
`, tableName)
		var a int
		err := stmt.Scan(&a)
		if errors.Is(err, pgx.ErrNoRows) { return false, nil }
		if err != nil { return false, err }
		if a != 1 { return false, nil }
	}
	return true, nil
}
