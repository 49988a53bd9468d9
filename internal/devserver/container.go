package devserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/klwxsrx/hwstore-client/internal/devserver/app/encoding"
	"github.com/klwxsrx/hwstore-client/internal/devserver/app/service"
	"github.com/klwxsrx/hwstore-client/internal/devserver/app/session"
	"github.com/klwxsrx/hwstore-client/internal/devserver/domain"
	devhttp "github.com/klwxsrx/hwstore-client/internal/devserver/infra/http"
	"github.com/klwxsrx/hwstore-client/internal/devserver/infra/jwt"
	"github.com/klwxsrx/hwstore-client/internal/devserver/infra/memory"
	"github.com/klwxsrx/hwstore-client/internal/devserver/infra/password"
	pkgauth "github.com/klwxsrx/hwstore-client/pkg/auth"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
	"github.com/klwxsrx/hwstore-client/pkg/lazy"
	"github.com/klwxsrx/hwstore-client/pkg/log"
	pkgtime "github.com/klwxsrx/hwstore-client/pkg/time"
	"github.com/klwxsrx/hwstore-client/pkg/worker"
)

const (
	DefaultTokenTTL = time.Hour

	revokedTokensPruneInterval = time.Minute
)

type (
	Config struct {
		SigningKey []byte
		TokenTTL   time.Duration
		// PasswordCost is the bcrypt cost, zero selects the default.
		PasswordCost int
		Users        []SeedUser
		Clock        pkgtime.Clock
	}

	SeedUser struct {
		ID       string
		Email    string
		Password string
		Role     string
	}

	DependencyContainer struct {
		AuthService lazy.Loader[service.Authentication]
		ShopService lazy.Loader[service.Shop]

		userRepo lazy.Loader[domain.UserRepository]
		logger   lazy.Loader[log.Logger]
	}
)

func DefaultUsers() []SeedUser {
	return []SeedUser{
		{ID: "u1", Email: "demo@hwstore.dev", Password: "demo", Role: "customer"},
		{ID: "u2", Email: "admin@hwstore.dev", Password: "admin", Role: "admin"},
	}
}

func NewDependencyContainer(config Config, logger lazy.Loader[log.Logger]) *DependencyContainer {
	if config.Clock == nil {
		config.Clock = pkgtime.NewClock()
	}
	if config.TokenTTL <= 0 {
		config.TokenTTL = DefaultTokenTTL
	}

	passwordEncoder := passwordEncoderProvider(config)
	tokenIssuer := tokenIssuerProvider(config)
	userRepo := userRepoProvider(config, passwordEncoder)

	return &DependencyContainer{
		AuthService: lazy.New(func() (service.Authentication, error) {
			return service.NewAuthentication(
				userRepo.MustLoad(),
				tokenIssuer.MustLoad(),
				passwordEncoder.MustLoad(),
				config.Clock,
				config.TokenTTL,
				logger.MustLoad(),
			), nil
		}),
		ShopService: lazy.New(func() (service.Shop, error) {
			return service.NewShop(
				memory.NewProductRepository(memory.Catalog()),
				memory.NewBasketRepository(),
				memory.NewOrderRepository(),
				config.Clock,
				logger.MustLoad(),
			), nil
		}),
		userRepo: userRepo,
		logger:   logger,
	}
}

// ServerOptions resolves bearer tokens and maps domain errors to status codes.
func (c *DependencyContainer) ServerOptions() []pkghttp.ServerOption {
	return []pkghttp.ServerOption{
		pkghttp.WithAuth[service.Principal](lazyAuthProvider{c.AuthService}, pkghttp.BearerTokenProvider),
		pkghttp.WithErrorMapping(map[int][]error{
			http.StatusUnauthorized: {pkgauth.ErrUnauthenticated},
			http.StatusNotFound: {
				domain.ErrProductNotFound,
				domain.ErrUserNotFound,
			},
			http.StatusBadRequest: {
				domain.ErrInvalidCategory,
				domain.ErrInvalidQuantity,
				domain.ErrBasketIsEmpty,
			},
			http.StatusConflict: {domain.ErrInsufficientStock},
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	authService := c.AuthService.MustLoad()
	shop := c.ShopService.MustLoad()
	authenticated := pkghttp.WithAuthenticationRequirement[service.Principal]()

	registry.Register(devhttp.NewLoginHandler(authService))
	registry.Register(devhttp.NewCurrentUserHandler(c.userRepo.MustLoad()), authenticated)
	registry.Register(devhttp.NewLogoutHandler(authService), authenticated)

	registry.Register(devhttp.NewListProductsHandler(shop))
	registry.Register(devhttp.NewGetProductHandler(shop))
	registry.Register(devhttp.NewCompatibleMotherboardsHandler(shop))
	registry.Register(devhttp.NewSuitablePowerSuppliesHandler(shop))

	registry.Register(devhttp.NewGetBasketHandler(shop), authenticated)
	registry.Register(devhttp.NewAddBasketItemHandler(shop), authenticated)
	registry.Register(devhttp.NewRemoveBasketItemHandler(shop), authenticated)
	registry.Register(devhttp.NewListOrdersHandler(shop), authenticated)
	registry.Register(devhttp.NewPlaceOrderHandler(shop), authenticated)
}

func (c *DependencyContainer) PruneRevokedTokensJob() worker.ContextJob {
	return worker.PeriodicalContextJob(
		func(ctx context.Context) error {
			return c.AuthService.MustLoad().PruneRevokedTokens(ctx)
		},
		revokedTokensPruneInterval,
		c.logger.MustLoad(),
	)
}

type lazyAuthProvider struct {
	auth lazy.Loader[service.Authentication]
}

func (p lazyAuthProvider) Authenticate(ctx context.Context, credential string) (service.Principal, error) {
	return p.auth.MustLoad().Authenticate(ctx, credential)
}

func passwordEncoderProvider(config Config) lazy.Loader[encoding.PasswordEncoder] {
	return lazy.New(func() (encoding.PasswordEncoder, error) {
		return password.NewEncoder(config.PasswordCost), nil
	})
}

func tokenIssuerProvider(config Config) lazy.Loader[session.TokenIssuer] {
	return lazy.New(func() (session.TokenIssuer, error) {
		if len(config.SigningKey) == 0 {
			return nil, fmt.Errorf("token signing key is empty")
		}

		return jwt.NewIssuer(config.SigningKey, config.Clock), nil
	})
}

func userRepoProvider(
	config Config,
	passwordEncoder lazy.Loader[encoding.PasswordEncoder],
) lazy.Loader[domain.UserRepository] {
	return lazy.New(func() (domain.UserRepository, error) {
		repo := memory.NewUserRepository()
		for _, seed := range config.Users {
			hash, err := passwordEncoder.MustLoad().HashPassword(seed.Password)
			if err != nil {
				return nil, fmt.Errorf("hash password of %s: %w", seed.Email, err)
			}

			err = repo.Store(domain.User{
				ID:               seed.ID,
				Email:            seed.Email,
				Role:             seed.Role,
				PasswordHash:     hash,
				AccountCreatedAt: config.Clock.Now().UTC().Truncate(time.Second),
			})
			if err != nil {
				return nil, fmt.Errorf("store user %s: %w", seed.Email, err)
			}
		}

		return repo, nil
	})
}
