package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/hwstore-client/internal/session/app/session"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
)

const defaultLogoutRetries = 2

var (
	loginRoute       = pkghttp.Route{Method: http.MethodPost, URL: "/user/login"}
	currentUserRoute = pkghttp.Route{Method: http.MethodGet, URL: "/user/current"}
	logoutRoute      = pkghttp.Route{Method: http.MethodPost, URL: "/user/logout"}
)

type (
	UserAPIOption func(*userAPI)

	userAPI struct {
		client        pkghttp.Client
		logoutBackOff func() backoff.BackOff
	}
)

func NewUserAPI(client pkghttp.Client, opts ...UserAPIOption) session.UserAPI {
	api := &userAPI{
		client: client,
		logoutBackOff: func() backoff.BackOff {
			eb := backoff.NewExponentialBackOff()
			eb.InitialInterval = 200 * time.Millisecond
			return backoff.WithMaxRetries(eb, defaultLogoutRetries)
		},
	}
	for _, opt := range opts {
		opt(api)
	}

	return api
}

// WithLogoutBackOff sets the retry policy for logout notifications.
func WithLogoutBackOff(provider func() backoff.BackOff) UserAPIOption {
	return func(api *userAPI) {
		api.logoutBackOff = provider
	}
}

func (api *userAPI) Login(ctx context.Context, email, password string) (session.Token, *session.User, error) {
	resp, err := api.client.NewRequest(ctx, loginRoute).
		SetJSONBody(loginIn{Email: email, Password: password}).
		Send()
	if err != nil {
		return "", nil, fmt.Errorf("request user.login: %w", err)
	}

	err = checkStatus(resp.StatusCode())
	if err != nil {
		return "", nil, fmt.Errorf("request user.login: %w", err)
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[UserOut](), nil)
	if err != nil {
		return "", nil, fmt.Errorf("user.login response: %w", err)
	}

	return bearerToken(resp.Header()), body.toUser(), nil
}

func (api *userAPI) Current(ctx context.Context) (*session.User, error) {
	resp, err := api.client.NewRequest(ctx, currentUserRoute).Send()
	if err != nil {
		return nil, fmt.Errorf("request user.current: %w", err)
	}

	err = checkStatus(resp.StatusCode())
	if err != nil {
		return nil, fmt.Errorf("request user.current: %w", err)
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[UserOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("user.current response: %w", err)
	}

	return body.toUser(), nil
}

// Logout retries transport failures and server errors, other statuses are final.
func (api *userAPI) Logout(ctx context.Context, token session.Token) error {
	op := func() error {
		resp, err := api.client.NewRequest(ctx, logoutRoute).
			SetHeader(session.AuthorizationHeader, session.BearerPrefix+string(token)).
			Send()
		if err != nil {
			return err
		}

		if resp.StatusCode() == http.StatusNoContent {
			return nil
		}

		err = checkStatus(resp.StatusCode())
		if resp.StatusCode() >= http.StatusInternalServerError {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	err := backoff.Retry(op, backoff.WithContext(api.logoutBackOff(), ctx))
	if err != nil {
		return fmt.Errorf("request user.logout: %w", err)
	}

	return nil
}

func checkStatus(code int) error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return session.ErrUnauthorized
	default:
		return &session.UnexpectedStatusError{Code: code}
	}
}

func bearerToken(header http.Header) session.Token {
	value := strings.TrimSpace(header.Get(session.AuthorizationHeader))
	if len(value) < len(session.BearerPrefix) || !strings.EqualFold(value[:len(session.BearerPrefix)], session.BearerPrefix) {
		return ""
	}

	return session.Token(strings.TrimSpace(value[len(session.BearerPrefix):]))
}

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserOut struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	AccountCreatedAt time.Time `json:"accountCreatedAt"`
	PhotoURL         *string   `json:"photoUrl"`
}

func (u UserOut) toUser() *session.User {
	user := &session.User{
		ID:               u.ID,
		Email:            u.Email,
		Role:             u.Role,
		AccountCreatedAt: u.AccountCreatedAt,
	}
	if u.PhotoURL != nil {
		user.PhotoURL = *u.PhotoURL
	}

	return user
}
