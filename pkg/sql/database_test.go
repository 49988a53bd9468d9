package sql_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hwstore-client/pkg/log"
	"github.com/klwxsrx/hwstore-client/pkg/sql"
)

func TestMigrate_AppliesMigrationsOnce(t *testing.T) {
	ctx := context.Background()
	db, err := sql.NewDatabase(ctx, &sql.Config{DSN: "file:migrate_test?mode=memory&cache=shared"}, log.NewStub())
	require.NoError(t, err)
	defer db.Close(ctx)

	migrations := fstest.MapFS{
		"00001_create_part.sql": {Data: []byte(`-- +goose Up
CREATE TABLE part (id TEXT PRIMARY KEY, name TEXT NOT NULL);

-- +goose Down
DROP TABLE part;
`)},
	}

	require.NoError(t, sql.Migrate(ctx, db, migrations))
	require.NoError(t, sql.Migrate(ctx, db, migrations))

	_, err = db.ExecContext(ctx, `INSERT INTO part (id, name) VALUES (?, ?)`, "cpu-1", "Ryzen 7 7800X3D")
	require.NoError(t, err)

	var name string
	require.NoError(t, db.GetContext(ctx, &name, `SELECT name FROM part WHERE id = ?`, "cpu-1"))
	assert.Equal(t, "Ryzen 7 7800X3D", name)
}
