package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

type (
	ServerOption      func(*server)
	HandlerMiddleware func(http.Handler) http.Handler

	HandlerRegistry interface {
		Register(handler Handler, mws ...HandlerMiddleware)
	}

	Server interface {
		HandlerRegistry
		Listener(context.Context) error
		Handler() http.Handler
	}

	server struct {
		srv          *http.Server
		router       *mux.Router
		errorMapping []errorStatus
	}

	errorStatus struct {
		code int
		errs []error
	}
)

func NewServer(address string, opts ...ServerOption) Server {
	router := withHandlerMetadata(mux.NewRouter())
	srv := &server{
		srv: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		router: router,
	}

	for _, opt := range opts {
		opt(srv)
	}

	return srv
}

func (s *server) Listener(ctx context.Context) error {
	shutdown := func() error {
		err := s.srv.Shutdown(context.Background())
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}

	serverDoneChan := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverDoneChan <- err
	}()

	var err error
	select {
	case err = <-serverDoneChan:
	case <-ctx.Done():
		err = shutdown()
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.srv.Addr, err)
	}

	return nil
}

func (s *server) Handler() http.Handler {
	return s.router
}

func (s *server) Register(handler Handler, mws ...HandlerMiddleware) {
	router := s.router
	if len(mws) > 0 {
		router = s.router.NewRoute().Subrouter()
		for _, mw := range mws {
			router.Use(mux.MiddlewareFunc(mw))
		}
	}

	router.
		Name(getRouteName(handler.Method(), handler.Path())).
		Methods(handler.Method()).
		Path(handler.Path()).
		Handler(s.httpHandlerWrapper(handler))
}

func (s *server) statusCode(err error) (int, bool) {
	for _, mapping := range s.errorMapping {
		for _, expected := range mapping.errs {
			if errors.Is(err, expected) {
				return mapping.code, true
			}
		}
	}
	return 0, false
}

func WithMW(mw HandlerMiddleware) ServerOption {
	return func(s *server) {
		s.router.Use(mux.MiddlewareFunc(mw))
	}
}

func WithErrorMapping(statusCodes map[int][]error) ServerOption {
	return func(s *server) {
		for code, errs := range statusCodes {
			s.errorMapping = append(s.errorMapping, errorStatus{code: code, errs: errs})
		}
	}
}
