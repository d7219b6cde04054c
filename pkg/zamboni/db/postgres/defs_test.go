package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/naveen24691/zamboni/pkg/zamboni"
)

// an unreachable server must surface as an error, not as a quiet
// "tables missing" answer that sends the caller off to -install.
func TestIsDatabaseUsableConnectionFailure(t *testing.T) {
	cfg := &zamboni.ZamboniConfig{}
	cfg.Database.Type = "postgres"
	cfg.Database.URL = "127.0.0.1:1"
	cfg.Database.UserName = "zamboni"
	cfg.Database.Password = "zamboni"
	cfg.Database.DatabaseName = "zamboni"
	cfg.Database.TablePrefix = "zamboni"
	dbif, err := NewPostgresZamboniDatabaseInterface(cfg)
	require.NoError(t, err)
	defer dbif.Dispose()
	usable, err := dbif.IsDatabaseUsable()
	assert.False(t, usable)
	assert.Error(t, err)
}
