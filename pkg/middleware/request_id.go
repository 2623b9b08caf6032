package middleware

import (
	"net/http"

	"cab-dispatch/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates the caller's request id or mints a new one
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = utils.GenerateUUIDString()
			}

			w.Header().Set(RequestIDHeader, requestID)
			next.ServeHTTP(w, r.WithContext(utils.SetRequestID(r.Context(), requestID)))
		})
	}
}
