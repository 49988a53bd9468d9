package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/hwstore-client/internal/session/app/session"
	"github.com/klwxsrx/hwstore-client/internal/session/infra/storage/migrations"
	pkgsql "github.com/klwxsrx/hwstore-client/pkg/sql"
	pkgtime "github.com/klwxsrx/hwstore-client/pkg/time"
)

const (
	sessionTokenTable = "session_token"
	currentTokenName  = "current"
)

type sqliteStore struct {
	client pkgsql.Client
	clock  pkgtime.Clock
}

// NewSQLiteStore applies the session_token migration and returns a store over it.
func NewSQLiteStore(ctx context.Context, db pkgsql.Database, clock pkgtime.Clock) (session.TokenStore, error) {
	err := pkgsql.Migrate(ctx, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("migrate token storage: %w", err)
	}

	return sqliteStore{client: db, clock: clock}, nil
}

func (s sqliteStore) Load(ctx context.Context) (session.Token, bool, error) {
	query, args, err := sq.
		Select("token").
		From(sessionTokenTable).
		Where(sq.Eq{"name": currentTokenName}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build query: %w", err)
	}

	var token string
	err = s.client.GetContext(ctx, &token, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select token: %w", err)
	}

	return session.Token(token), token != "", nil
}

func (s sqliteStore) Save(ctx context.Context, token session.Token) error {
	query, args, err := sq.
		Insert(sessionTokenTable).
		Columns("name", "token", "updated_at").
		Values(currentTokenName, string(token), s.clock.Now().Unix()).
		Suffix("ON CONFLICT(name) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = s.client.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("upsert token: %w", err)
	}

	return nil
}

func (s sqliteStore) Clear(ctx context.Context) error {
	query, args, err := sq.
		Delete(sessionTokenTable).
		Where(sq.Eq{"name": currentTokenName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = s.client.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}

	return nil
}
