package middleware

import (
	"fmt"
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/go-dating-service/internal/errors"
	"github.com/pribylovaa/go-dating-service/internal/identity"
	logctx "github.com/pribylovaa/go-dating-service/pkg/log"
)

// TokenParser - проверка access-токена (реализуется identity.Parser).
type TokenParser interface {
	Parse(token string) (identity.Identity, error)
}

// Authenticate требует Bearer-токен, кладёт identity.Identity в контекст
// и добавляет user_id в request-scoped логгер. Без валидного токена -> 401 unauthenticated.
func Authenticate(parser TokenParser) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apierrors.WriteError(w, r, fmt.Errorf("missing bearer token: %w", identity.ErrUnauthenticated))
				return
			}

			id, err := parser.Parse(token)
			if err != nil {
				logctx.From(r.Context()).Warn("token rejected", "err", err)
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := identity.Into(r.Context(), id)
			ctx = logctx.With(ctx, "user_id", id.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает запрос, если у вызывающего есть хотя бы одна из ролей.
// Иначе -> 403 permission_denied (или 401, если Authenticate не отработал).
func RequireRole(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := identity.From(r.Context())
			if !ok {
				apierrors.WriteError(w, r, identity.ErrUnauthenticated)
				return
			}

			if !id.HasAnyRole(roles...) {
				logctx.From(r.Context()).Warn("permission denied", "required", roles, "roles", id.Roles)
				apierrors.WriteError(w, r, identity.ErrPermissionDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken достаёт токен из заголовка Authorization: Bearer <token>.
func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")

	const prefix = "bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(auth[len(prefix):])

	return token, token != ""
}
