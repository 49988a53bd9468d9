package sql

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

// goose keeps its base FS and dialect in package state.
var migrationMutex sync.Mutex

// Migrate applies every pending goose migration found in the root of migrations.
func Migrate(ctx context.Context, db Database, migrations fs.FS) error {
	impl, ok := db.(*database)
	if !ok {
		return fmt.Errorf("unsupported database implementation %T", db)
	}

	migrationMutex.Lock()
	defer migrationMutex.Unlock()

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	err := goose.SetDialect("sqlite3")
	if err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	err = goose.UpContext(ctx, impl.DB.DB, ".")
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
