package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/go-dating-service/internal/models"
	"github.com/pribylovaa/go-dating-service/internal/storage"
)

// UsersWithRoles возвращает всех пользователей по алфавиту с отсортированными ролями.
func (s *Storage) UsersWithRoles(ctx context.Context) ([]models.UserWithRoles, error) {
	const op = "storage/postgres/users/UsersWithRoles"

	q := `
	SELECT u.id, u.username,
	       COALESCE(array_agg(r.name ORDER BY r.name) FILTER (WHERE r.name IS NOT NULL), '{}') AS roles
	FROM users u
	LEFT JOIN user_roles ur ON ur.user_id = u.id
	LEFT JOIN roles r ON r.id = ur.role_id
	GROUP BY u.id, u.username
	ORDER BY u.username
	`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	users := make([]models.UserWithRoles, 0)
	for rows.Next() {
		var u models.UserWithRoles
		if err := rows.Scan(&u.ID, &u.Username, &u.Roles); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// UserByUsername возвращает пользователя по логину.
// Ошибки: storage.ErrNotFoundUser, либо ошибка выполнения запроса.
func (s *Storage) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage/postgres/users/UserByUsername"

	var u models.User
	err := s.db.QueryRow(ctx, `SELECT id, username FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundUser)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &u, nil
}

// UserRoles возвращает отсортированные имена ролей пользователя.
// Для пользователя без ролей (или несуществующего) возвращается пустой срез.
func (s *Storage) UserRoles(ctx context.Context, userID int64) ([]string, error) {
	const op = "storage/postgres/users/UserRoles"

	q := `
	SELECT r.name
	FROM user_roles ur
	JOIN roles r ON r.id = ur.role_id
	WHERE ur.user_id = $1
	ORDER BY r.name
	`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	roles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if roles == nil {
		roles = []string{}
	}

	return roles, nil
}

// AddUserRoles назначает роли пользователю в одной транзакции.
// Ошибки: storage.ErrUnknownRole, если хотя бы одной роли нет в справочнике;
// storage.ErrNotFoundUser при нарушении внешнего ключа.
func (s *Storage) AddUserRoles(ctx context.Context, userID int64, roles []string) error {
	const op = "storage/postgres/users/AddUserRoles"

	if len(roles) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var known int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM roles WHERE name = ANY($1)`, roles).Scan(&known); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if known != len(roles) {
		return fmt.Errorf("%s: %w", op, storage.ErrUnknownRole)
	}

	q := `
	INSERT INTO user_roles (user_id, role_id)
	SELECT $1, r.id FROM roles r WHERE r.name = ANY($2)
	ON CONFLICT DO NOTHING
	`

	if _, err := tx.Exec(ctx, q, userID, roles); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFoundUser)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveUserRoles снимает роли с пользователя в одной транзакции; неназначенные роли игнорируются.
// Ошибки: storage.ErrUnknownRole, если хотя бы одной роли нет в справочнике.
func (s *Storage) RemoveUserRoles(ctx context.Context, userID int64, roles []string) error {
	const op = "storage/postgres/users/RemoveUserRoles"

	if len(roles) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var known int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM roles WHERE name = ANY($1)`, roles).Scan(&known); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if known != len(roles) {
		return fmt.Errorf("%s: %w", op, storage.ErrUnknownRole)
	}

	q := `
	DELETE FROM user_roles ur
	USING roles r
	WHERE ur.role_id = r.id AND ur.user_id = $1 AND r.name = ANY($2)
	`

	if _, err := tx.Exec(ctx, q, userID, roles); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
