package http

import (
	"net/http"

	"github.com/klwxsrx/hwstore-client/pkg/log"
)

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)
			if r.URL.Path == healthPath {
				return
			}

			meta := getHandlerMetadata(r.Context())
			reqLogger := logger.With(log.Fields{
				"routeName": getRouteName(r.Method, r.URL.Path),
				"method":    r.Method,
				"path":      r.URL.Path,
				"code":      meta.Code,
			})

			switch {
			case meta.Panic != nil:
				reqLogger.
					WithField("panic", log.Fields{
						"message": meta.Panic.Message,
						"stack":   string(meta.Panic.Stacktrace),
					}).
					Log(r.Context(), errorLevel, "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				reqLogger.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with internal error")
			default:
				reqLogger.WithError(meta.Error).Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}
