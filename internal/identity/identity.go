// identity описывает аутентифицированного вызывающего:
// разбор access-токена, выпущенного identity-сервисом, и перенос Identity через context.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pribylovaa/go-dating-service/internal/config"
)

var (
	// ErrUnauthenticated - токен отсутствует, поддельный или просрочен.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrPermissionDenied - у вызывающего нет требуемой роли.
	ErrPermissionDenied = errors.New("permission denied")
)

// Identity - аутентифицированный пользователь.
type Identity struct {
	UserID   int64
	Username string
	Roles    []string
}

// HasAnyRole сообщает, есть ли у пользователя хотя бы одна из ролей.
func (i Identity) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range i.Roles {
			if have == want {
				return true
			}
		}
	}

	return false
}

type ctxKey struct{}

// Into кладёт Identity в контекст.
func Into(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// From достаёт Identity из контекста.
func From(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)

	return id, ok
}

// Claims - полезная нагрузка access-токена.
type Claims struct {
	UserID   int64    `json:"uid"`
	Username string   `json:"unique_name"`
	Roles    []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Parser проверяет HS256 access-токены.
type Parser struct {
	secret []byte
	opts   []jwt.ParserOption
}

// NewParser создает Parser по настройкам auth; issuer и audience проверяются, только если заданы.
func NewParser(cfg config.AuthConfig) *Parser {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5 * time.Second),
		jwt.WithExpirationRequired(),
	}

	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	if len(cfg.Audience) > 0 {
		opts = append(opts, jwt.WithAudience(cfg.Audience...))
	}

	return &Parser{secret: []byte(cfg.JWTSecret), opts: opts}
}

// Parse валидирует токен и возвращает Identity.
func (p *Parser) Parse(tokenStr string) (Identity, error) {
	const op = "identity/Parse"

	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return Identity{}, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(*jwt.Token) (interface{}, error) {
			return p.secret, nil
		},
		p.opts...,
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%s: %w: %v", op, ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return Identity{}, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	return Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Roles:    claims.Roles,
	}, nil
}
