package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/hwstore-client/internal/session/app/session"
	sessionmock "github.com/klwxsrx/hwstore-client/internal/session/app/session/mock"
	sessionhttp "github.com/klwxsrx/hwstore-client/internal/session/infra/http"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
)

const userJSON = `{"id":"u1","email":"a@b.com","role":"user","accountCreatedAt":"2024-01-02T03:04:05Z","photoUrl":null}`

func newClient(t *testing.T, handler http.HandlerFunc, opts ...pkghttp.ClientOption) pkghttp.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return pkghttp.NewClient(append([]pkghttp.ClientOption{pkghttp.WithClientDestination("storefront", srv.URL)}, opts...)...)
}

func noRetries() backoff.BackOff {
	return &backoff.StopBackOff{}
}

func TestUserAPI_Login(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		expect  func(t *testing.T, token session.Token, user *session.User, err error)
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/user/login", r.URL.Path)

				var in map[string]string
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
				assert.Equal(t, map[string]string{"email": "a@b.com", "password": "secret123"}, in)

				w.Header().Set("Authorization", "Bearer eyJ.token.sig")
				_, _ = w.Write([]byte(userJSON))
			},
			expect: func(t *testing.T, token session.Token, user *session.User, err error) {
				require.NoError(t, err)
				assert.Equal(t, session.Token("eyJ.token.sig"), token)
				assert.Equal(t, &session.User{
					ID:               "u1",
					Email:            "a@b.com",
					Role:             "user",
					AccountCreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
				}, user)
			},
		},
		{
			name: "empty_token_when_header_is_not_bearer",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Authorization", "Basic dXNlcg==")
				_, _ = w.Write([]byte(userJSON))
			},
			expect: func(t *testing.T, token session.Token, _ *session.User, err error) {
				require.NoError(t, err)
				assert.Empty(t, token)
			},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			expect: func(t *testing.T, _ session.Token, _ *session.User, err error) {
				assert.ErrorIs(t, err, session.ErrUnauthorized)
			},
		},
		{
			name: "unexpected_status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			expect: func(t *testing.T, _ session.Token, _ *session.User, err error) {
				var statusErr *session.UnexpectedStatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusBadGateway, statusErr.Code)
			},
		},
		{
			name: "malformed_body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Authorization", "Bearer eyJ.token.sig")
				_, _ = w.Write([]byte("<html>"))
			},
			expect: func(t *testing.T, _ session.Token, _ *session.User, err error) {
				assert.ErrorIs(t, err, pkghttp.ErrParsingError)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := sessionhttp.NewUserAPI(newClient(t, tc.handler))
			token, user, err := api.Login(context.Background(), "a@b.com", "secret123")
			tc.expect(t, token, user, err)
		})
	}
}

func TestUserAPI_Current(t *testing.T) {
	api := sessionhttp.NewUserAPI(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/current", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer valid" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(userJSON))
	}, pkghttp.WithRequestHeader("Authorization", "Bearer valid")))

	user, err := api.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUserAPI_Logout(t *testing.T) {
	t.Run("retries_server_errors", func(t *testing.T) {
		var calls atomic.Int32
		api := sessionhttp.NewUserAPI(newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer old-token", r.Header.Get("Authorization"))
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}), sessionhttp.WithLogoutBackOff(func() backoff.BackOff {
			return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 5)
		}))

		require.NoError(t, api.Logout(context.Background(), "old-token"))
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("does_not_retry_unauthorized", func(t *testing.T) {
		var calls atomic.Int32
		api := sessionhttp.NewUserAPI(newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}), sessionhttp.WithLogoutBackOff(func() backoff.BackOff {
			return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 5)
		}))

		err := api.Logout(context.Background(), "old-token")
		assert.ErrorIs(t, err, session.ErrUnauthorized)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("gives_up_after_policy", func(t *testing.T) {
		api := sessionhttp.NewUserAPI(newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}), sessionhttp.WithLogoutBackOff(noRetries))

		var statusErr *session.UnexpectedStatusError
		require.ErrorAs(t, api.Logout(context.Background(), "old-token"), &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	})
}

func TestWithSessionAuthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := sessionmock.NewManager(ctrl)

	manager.EXPECT().Authorize(gomock.Any()).Do(func(header http.Header) {
		header.Set("Authorization", "Bearer held")
	}).Times(2)
	manager.EXPECT().OnUnauthorized(gomock.Any()).Times(1)

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer held", r.Header.Get("Authorization"))
		if r.URL.Path == "/basket" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(userJSON))
	}, sessionhttp.WithSessionAuthorization(manager))

	_, err := sessionhttp.NewUserAPI(client).Current(context.Background())
	require.NoError(t, err)

	resp, err := client.NewRequest(context.Background(), pkghttp.Route{Method: http.MethodGet, URL: "/basket"}).Send()
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
}
