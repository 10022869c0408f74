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

// photoColumns - единый список колонок таблицы photos,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const photoColumns = `
id, user_id, url, description, date_added, is_main, is_approved, public_id
`

// scanPhoto сканирует одну строку фотографии в доменную модель.
func scanPhoto(row pgx.Row) (*models.Photo, error) {
	var photo models.Photo

	if err := row.Scan(
		&photo.ID,
		&photo.UserID,
		&photo.URL,
		&photo.Description,
		&photo.DateAdded,
		&photo.IsMain,
		&photo.IsApproved,
		&photo.PublicID,
	); err != nil {
		return nil, err
	}

	photo.DateAdded = photo.DateAdded.UTC()

	return &photo, nil
}

// PhotoByID возвращает фотографию по id.
// Ошибки: storage.ErrNotFoundPhoto, либо ошибка выполнения запроса.
func (s *Storage) PhotoByID(ctx context.Context, photoID int64) (*models.Photo, error) {
	const op = "storage/postgres/photos/PhotoByID"

	q := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1`

	photo, err := scanPhoto(s.db.QueryRow(ctx, q, photoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundPhoto)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return photo, nil
}

// PhotosForModeration возвращает все неодобренные фотографии с логином владельца.
func (s *Storage) PhotosForModeration(ctx context.Context) ([]models.PhotoForModeration, error) {
	const op = "storage/postgres/photos/PhotosForModeration"

	q := `
	SELECT p.id, u.username, p.url, p.is_approved
	FROM photos p
	JOIN users u ON u.id = p.user_id
	WHERE NOT p.is_approved
	ORDER BY p.date_added, p.id
	`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	photos := make([]models.PhotoForModeration, 0)
	for rows.Next() {
		var p models.PhotoForModeration
		if err := rows.Scan(&p.ID, &p.Username, &p.URL, &p.IsApproved); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		photos = append(photos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return photos, nil
}

// MainPhotoForUser возвращает главную фотографию пользователя.
// Ошибки: storage.ErrNotFoundPhoto, если главной фотографии нет.
func (s *Storage) MainPhotoForUser(ctx context.Context, userID int64) (*models.Photo, error) {
	const op = "storage/postgres/photos/MainPhotoForUser"

	q := `SELECT ` + photoColumns + ` FROM photos WHERE user_id = $1 AND is_main`

	photo, err := scanPhoto(s.db.QueryRow(ctx, q, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundPhoto)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return photo, nil
}

// CreatePhoto вставляет новую запись о фотографии; id и date_added выставляет БД.
// Ошибки: storage.ErrNotFoundUser при отсутствии владельца,
// storage.ErrAlreadyExists при попытке создать вторую главную фотографию.
func (s *Storage) CreatePhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	const op = "storage/postgres/photos/CreatePhoto"

	q := `
	INSERT INTO photos (user_id, url, description, is_main, is_approved, public_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING
	` + photoColumns

	row := s.db.QueryRow(ctx, q,
		photo.UserID,
		photo.URL,
		photo.Description,
		photo.IsMain,
		photo.IsApproved,
		photo.PublicID,
	)

	result, err := scanPhoto(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ForeignKeyViolation:
				return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundUser)
			case pgerrcode.UniqueViolation:
				return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
			}
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ApprovePhoto помечает фотографию одобренной. Повторное одобрение не ошибка.
// Ошибки: storage.ErrNotFoundPhoto при отсутствии записи.
func (s *Storage) ApprovePhoto(ctx context.Context, photoID int64) error {
	const op = "storage/postgres/photos/ApprovePhoto"

	tag, err := s.db.Exec(ctx, `UPDATE photos SET is_approved = TRUE WHERE id = $1`, photoID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFoundPhoto)
	}

	return nil
}

// SetMainPhoto снимает флаг is_main с прежней главной фотографии пользователя
// и выставляет его на photoID. Обе операции выполняются в одной транзакции.
// Ошибки: storage.ErrNotFoundPhoto, если photoID не принадлежит userID;
// storage.ErrAlreadyExists при конкурентной смене главной фотографии.
func (s *Storage) SetMainPhoto(ctx context.Context, userID, photoID int64) error {
	const op = "storage/postgres/photos/SetMainPhoto"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`UPDATE photos SET is_main = FALSE WHERE user_id = $1 AND is_main AND id <> $2`,
		userID, photoID,
	); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE photos SET is_main = TRUE WHERE id = $1 AND user_id = $2`,
		photoID, userID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFoundPhoto)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeletePhoto удаляет запись о фотографии.
// Ошибки: storage.ErrNotFoundPhoto при отсутствии записи.
func (s *Storage) DeletePhoto(ctx context.Context, photoID int64) error {
	const op = "storage/postgres/photos/DeletePhoto"

	tag, err := s.db.Exec(ctx, `DELETE FROM photos WHERE id = $1`, photoID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFoundPhoto)
	}

	return nil
}
