package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type (
	Handler interface {
		Method() string
		Path() string
		Handle(w ResponseWriter, r *http.Request) error
	}

	ResponseWriter interface {
		SetHeader(key, value string) ResponseWriter
		SetStatusCode(httpCode int) ResponseWriter
		SetJSONBody(data any) ResponseWriter
	}

	responseWriter struct {
		impl http.ResponseWriter

		body     any
		httpCode int
	}
)

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	return w
}

func (w *responseWriter) write(ctx context.Context, httpCode int, err error) {
	var encodedBody []byte
	if err == nil && w.body != nil {
		encodedBody, err = json.Marshal(w.body)
		if err != nil {
			httpCode = http.StatusInternalServerError
			err = fmt.Errorf("encode body: %w", err)
		}
	}

	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	if err != nil || encodedBody == nil {
		w.impl.WriteHeader(httpCode)
		return
	}

	w.impl.Header().Set("Content-Type", "application/json")
	w.impl.WriteHeader(httpCode)
	_, _ = w.impl.Write(encodedBody)
}

func (s *server) httpHandlerWrapper(handler Handler) http.HandlerFunc {
	recoverPanic := func(r *http.Request, w http.ResponseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		meta := getHandlerMetadata(r.Context())
		meta.Code = http.StatusInternalServerError
		meta.Panic = &Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		}
		w.WriteHeader(http.StatusInternalServerError)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		defer recoverPanic(r, w)

		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}
		err := handler.Handle(respWriter, r)

		httpCode := respWriter.httpCode
		switch {
		case err == nil:
		case errors.Is(err, ErrParsingError):
			httpCode = http.StatusBadRequest
		default:
			if code, ok := s.statusCode(err); ok {
				httpCode = code
			} else if httpCode < http.StatusBadRequest {
				httpCode = http.StatusInternalServerError
			}
		}

		respWriter.write(r.Context(), httpCode, err)
	}
}
