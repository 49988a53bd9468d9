package session

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/klwxsrx/hwstore-client/internal/pkg/cmd"
	appsession "github.com/klwxsrx/hwstore-client/internal/session/app/session"
	sessionhttp "github.com/klwxsrx/hwstore-client/internal/session/infra/http"
	"github.com/klwxsrx/hwstore-client/internal/session/infra/storage"
	"github.com/klwxsrx/hwstore-client/internal/session/infra/token"
	"github.com/klwxsrx/hwstore-client/pkg/env"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
	"github.com/klwxsrx/hwstore-client/pkg/lazy"
	"github.com/klwxsrx/hwstore-client/pkg/log"
	"github.com/klwxsrx/hwstore-client/pkg/sql"
	pkgtime "github.com/klwxsrx/hwstore-client/pkg/time"
)

const (
	Destination pkghttp.Destination = "storefront"

	StorageFile    = "file"
	StorageSQLite  = "sqlite"
	StorageKeyring = "keyring"
	StorageMemory  = "memory"

	defaultStorageDir          = ".hwstore"
	defaultLogoutNotifyTimeout = 5 * time.Second
)

type DependencyContainer struct {
	Manager          lazy.Loader[appsession.Manager]
	AuthorizedClient lazy.Loader[pkghttp.Client]

	db lazy.Loader[sql.Database]
}

func NewDependencyContainer(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
	httpClientFactory lazy.Loader[cmd.HTTPClientFactory],
	managerOpts ...appsession.ManagerOption,
) *DependencyContainer {
	c := &DependencyContainer{}
	c.db = sqlDatabaseProvider(ctx, logger)
	c.AuthorizedClient = authorizedClientProvider(httpClientFactory, lazyAuthorizer{manager: &c.Manager})

	userAPI := userAPIProvider(c.AuthorizedClient)
	tokenStore := tokenStoreProvider(ctx, c.db)
	c.Manager = managerProvider(userAPI, tokenStore, logger, managerOpts)
	return c
}

func (c *DependencyContainer) Close(ctx context.Context) {
	c.Manager.IfLoaded(func(manager appsession.Manager) { manager.Close() })
	c.db.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

// lazyAuthorizer resolves the manager on first request so the manager and its HTTP client can depend on each other.
type lazyAuthorizer struct {
	manager *lazy.Loader[appsession.Manager]
}

func (a lazyAuthorizer) Authorize(header http.Header) {
	(*a.manager).MustLoad().Authorize(header)
}

func (a lazyAuthorizer) OnUnauthorized(ctx context.Context) {
	(*a.manager).MustLoad().OnUnauthorized(ctx)
}

func authorizedClientProvider(
	httpClientFactory lazy.Loader[cmd.HTTPClientFactory],
	authorizer sessionhttp.Authorizer,
) lazy.Loader[pkghttp.Client] {
	return lazy.New(func() (pkghttp.Client, error) {
		return httpClientFactory.MustLoad().MustInitClient(
			Destination,
			sessionhttp.WithSessionAuthorization(authorizer),
		), nil
	})
}

func userAPIProvider(client lazy.Loader[pkghttp.Client]) lazy.Loader[appsession.UserAPI] {
	return lazy.New(func() (appsession.UserAPI, error) {
		return sessionhttp.NewUserAPI(client.MustLoad()), nil
	})
}

func sqlDatabaseProvider(ctx context.Context, logger lazy.Loader[log.Logger]) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		path, err := storagePath("session.db")
		if err != nil {
			return nil, err
		}

		err = os.MkdirAll(filepath.Dir(path), 0o700)
		if err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}

		return sql.NewDatabase(ctx, &sql.Config{DSN: path}, logger.MustLoad())
	})
}

func tokenStoreProvider(ctx context.Context, db lazy.Loader[sql.Database]) lazy.Loader[appsession.TokenStore] {
	return lazy.New(func() (appsession.TokenStore, error) {
		kind, err := env.ParseWithDefault("SESSION_STORAGE", StorageFile)
		if err != nil {
			return nil, err
		}

		switch kind {
		case StorageFile:
			path, err := storagePath("session.json")
			if err != nil {
				return nil, err
			}
			return storage.NewFileStore(path), nil
		case StorageSQLite:
			return storage.NewSQLiteStore(ctx, db.MustLoad(), pkgtime.NewClock())
		case StorageKeyring:
			account, err := cmd.ServiceURL(Destination)
			if err != nil {
				return nil, err
			}
			return storage.NewKeyringStore(account), nil
		case StorageMemory:
			return storage.NewMemoryStore(), nil
		default:
			return nil, fmt.Errorf("unknown session storage %q", kind)
		}
	})
}

func managerProvider(
	userAPI lazy.Loader[appsession.UserAPI],
	tokenStore lazy.Loader[appsession.TokenStore],
	logger lazy.Loader[log.Logger],
	extraOpts []appsession.ManagerOption,
) lazy.Loader[appsession.Manager] {
	return lazy.New(func() (appsession.Manager, error) {
		notifyTimeout, err := env.ParseWithDefault("SESSION_LOGOUT_NOTIFY_TIMEOUT", defaultLogoutNotifyTimeout)
		if err != nil {
			return nil, err
		}

		opts := []appsession.ManagerOption{
			appsession.WithLogger(logger.MustLoad().WithField("component", "session")),
			appsession.WithLogoutNotifyTimeout(notifyTimeout),
		}
		opts = append(opts, extraOpts...)

		return appsession.NewManager(
			userAPI.MustLoad(),
			tokenStore.MustLoad(),
			token.NewDecoder(),
			opts...,
		), nil
	})
}

func storagePath(defaultName string) (string, error) {
	path, err := env.ParseOptional[string]("SESSION_STORAGE_PATH")
	if err != nil {
		return "", err
	}
	if path != nil {
		return *path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}

	return filepath.Join(home, defaultStorageDir, defaultName), nil
}
