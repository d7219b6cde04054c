package init

import (
	"github.com/naveen24691/zamboni/pkg/zamboni"
	"github.com/naveen24691/zamboni/pkg/zamboni/db"
	"github.com/naveen24691/zamboni/pkg/zamboni/db/postgres"
	"github.com/naveen24691/zamboni/pkg/zamboni/db/sqlite"
)

func InitializeDatabase(cfg *zamboni.ZamboniConfig) (db.ZamboniDatabaseInterface, error) {
	switch cfg.Database.Type {
	case "sqlite": return sqlite.NewSqliteZamboniDatabaseInterface(cfg)
	case "postgres": return postgres.NewPostgresZamboniDatabaseInterface(cfg)
	}
	return nil, db.ErrDatabaseNotSupported
}
