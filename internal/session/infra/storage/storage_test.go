package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/klwxsrx/hwstore-client/internal/session/app/session"
	"github.com/klwxsrx/hwstore-client/internal/session/infra/storage"
	"github.com/klwxsrx/hwstore-client/pkg/log"
	"github.com/klwxsrx/hwstore-client/pkg/sql"
	pkgtime "github.com/klwxsrx/hwstore-client/pkg/time"
	"github.com/klwxsrx/hwstore-client/pkg/time/fake"
)

func TestTokenStores(t *testing.T) {
	keyring.MockInit()

	tests := []struct {
		name  string
		store func(t *testing.T) session.TokenStore
	}{
		{
			name: "memory",
			store: func(*testing.T) session.TokenStore {
				return storage.NewMemoryStore()
			},
		},
		{
			name: "file",
			store: func(t *testing.T) session.TokenStore {
				return storage.NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json"))
			},
		},
		{
			name: "sqlite",
			store: func(t *testing.T) session.TokenStore {
				ctx := context.Background()
				db, err := sql.NewDatabase(ctx, &sql.Config{DSN: filepath.Join(t.TempDir(), "session.db")}, log.NewStub())
				require.NoError(t, err)
				t.Cleanup(func() { db.Close(ctx) })

				store, err := storage.NewSQLiteStore(ctx, db, pkgtime.NewClock())
				require.NoError(t, err)
				return store
			},
		},
		{
			name: "keyring",
			store: func(*testing.T) session.TokenStore {
				return storage.NewKeyringStore("storage-test")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := tc.store(t)

			_, ok, err := store.Load(ctx)
			require.NoError(t, err)
			assert.False(t, ok)
			require.NoError(t, store.Clear(ctx))

			require.NoError(t, store.Save(ctx, "first"))
			require.NoError(t, store.Save(ctx, "second"))

			token, ok, err := store.Load(ctx)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, session.Token("second"), token)

			require.NoError(t, store.Clear(ctx))
			require.NoError(t, store.Clear(ctx))

			_, ok, err = store.Load(ctx)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFileStore_OwnerOnlyPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := storage.NewFileStore(path)

	require.NoError(t, store.Save(context.Background(), "secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, _, err := storage.NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestSQLiteStore_RecordsUpdateTime(t *testing.T) {
	ctx := context.Background()
	db, err := sql.NewDatabase(ctx, &sql.Config{DSN: filepath.Join(t.TempDir(), "session.db")}, log.NewStub())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(ctx) })

	clock := fake.NewClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	store, err := storage.NewSQLiteStore(ctx, db, clock)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "first"))
	clock.Advance(time.Hour)
	require.NoError(t, store.Save(ctx, "second"))

	var updatedAt int64
	require.NoError(t, db.GetContext(ctx, &updatedAt, "SELECT updated_at FROM session_token WHERE name = 'current'"))
	assert.Equal(t, clock.Now().Unix(), updatedAt)
}
