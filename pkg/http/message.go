package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

type (
	Request interface {
		SetPathParam(name, value string) Request
		SetQueryParam(name, value string) Request
		SetHeader(key, value string) Request
		SetJSONBody(body any) Request
		Send() (Response, error)
	}

	// Response body is fully read before Send returns and response hooks run.
	Response interface {
		StatusCode() int
		Header() http.Header
		Body() []byte
		Query() url.Values
	}

	request struct {
		impl  *resty.Request
		route Route
	}

	response struct {
		impl *resty.Response
	}
)

func newRequest(ctx context.Context, impl *resty.Request, route Route) Request {
	return request{
		impl:  impl.SetContext(ctx),
		route: route,
	}
}

func (r request) SetPathParam(name, value string) Request {
	r.impl.SetPathParam(name, value)
	return r
}

func (r request) SetQueryParam(name, value string) Request {
	r.impl.SetQueryParam(name, value)
	return r
}

func (r request) SetHeader(key, value string) Request {
	r.impl.SetHeader(key, value)
	return r
}

func (r request) SetJSONBody(body any) Request {
	r.impl.SetHeader("Content-Type", "application/json").SetBody(body)
	return r
}

func (r request) Send() (Response, error) {
	resp, err := r.impl.Execute(r.route.Method, r.route.URL)
	if err != nil {
		return nil, err
	}

	return response{impl: resp}, nil
}

func (r response) StatusCode() int {
	return r.impl.StatusCode()
}

func (r response) Header() http.Header {
	return r.impl.Header()
}

func (r response) Body() []byte {
	return r.impl.Body()
}

func (r response) Query() url.Values {
	if r.impl.RawResponse == nil || r.impl.RawResponse.Request == nil {
		return nil
	}
	return r.impl.RawResponse.Request.URL.Query()
}
