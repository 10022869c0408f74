package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID - заголовок идентификатора запроса.
const HeaderRequestID = "X-Request-Id"

// RequestID обеспечивает наличие X-Request-Id:
//  1. читает заголовок X-Request-Id, если есть;
//  2. иначе генерирует UUID v4;
//  3. кладёт id в Response Header и Request Header (его читают Logging и errors.WriteError).
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
				r.Header.Set(HeaderRequestID, id)
			}
			w.Header().Set(HeaderRequestID, id)

			next.ServeHTTP(w, r)
		})
	}
}
