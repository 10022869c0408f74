package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout ограничивает обработку запроса сроком d.
// Более ранний дедлайн уже имеющегося контекста остаётся в силе, поэтому
// вложенные Timeout сужают срок, но не продлевают его. d <= 0 - без ограничения.
//
// Роутер вешает Timeout на группы маршрутов: загрузке фотографий нужен
// отдельный, более длинный срок, чем остальным запросам.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
