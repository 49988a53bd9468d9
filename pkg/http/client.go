package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/hwstore-client/pkg/log"
	"github.com/klwxsrx/hwstore-client/pkg/observability"
)

const DefaultRequestIDHeader = "X-Request-ID"

type (
	Destination string

	ClientOption func(*clientImpl)

	// RequestHook may modify outgoing headers. A returned error aborts the request.
	RequestHook func(ctx context.Context, header http.Header) error

	// ResponseHook observes every received response before it is returned to the caller.
	ResponseHook func(ctx context.Context, resp Response)

	Client interface {
		NewRequest(ctx context.Context, route Route) Request
		With(opts ...ClientOption) Client
	}

	clientImpl struct {
		destination Destination
		restClient  *resty.Client
		opts        []ClientOption
	}
)

func NewClient(opts ...ClientOption) Client {
	client := &clientImpl{
		destination: "",
		restClient:  resty.New(),
		opts:        opts,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *clientImpl) NewRequest(ctx context.Context, route Route) Request {
	return newRequest(ctx, c.restClient.R(), route)
}

func (c *clientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(dest Destination, baseURL string) ClientOption {
	return func(c *clientImpl) {
		c.destination = dest
		c.restClient.SetBaseURL(baseURL)
	}
}

func WithClientOptions(opts ...ClientOption) ClientOption {
	return func(c *clientImpl) {
		for _, opt := range opts {
			opt(c)
		}
	}
}

func WithClientTimeout(timeout time.Duration) ClientOption {
	return func(c *clientImpl) {
		c.restClient.SetTimeout(timeout)
	}
}

func WithRequestHeader(key, value string) ClientOption {
	return func(c *clientImpl) {
		c.restClient.SetHeader(key, value)
	}
}

func WithRequestHook(hook RequestHook) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return hook(req.Context(), req.Header)
		})
	}
}

func WithResponseHook(hook ResponseHook) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			hook(resp.Request.Context(), response{impl: resp})
			return nil
		})
	}
}

func WithRequestObservability(observer observability.Observer, requestIDHeaderName string) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			id, ok := observer.RequestID(req.Context())
			if !ok {
				return nil
			}

			req.SetHeader(requestIDHeaderName, id)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			reqLogger := logger.With(log.Fields{
				"destination": c.destinationName(),
				"method":      resp.Request.Method,
				"url":         resp.Request.URL,
				"code":        resp.StatusCode(),
				"duration":    resp.Time().String(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				reqLogger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				reqLogger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.restClient.OnError(func(req *resty.Request, err error) {
			logger.
				With(log.Fields{
					"destination": c.destinationName(),
					"method":      req.Method,
					"url":         req.URL,
				}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func (c *clientImpl) destinationName() string {
	if c.destination != "" {
		return string(c.destination)
	}
	return "-"
}

type ClientFactory struct {
	baseOpts []ClientOption
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{
		baseOpts: opts,
	}
}

func (f ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts)+1)
	opts = append(opts, WithClientDestination(dest, baseURL))
	opts = append(opts, f.baseOpts...)
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}
