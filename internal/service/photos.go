package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pribylovaa/go-dating-service/internal/models"
	"github.com/pribylovaa/go-dating-service/internal/storage"
	"github.com/pribylovaa/go-dating-service/pkg/log"
)

// AddPhotoInput - входные данные загрузки фотографии.
// CallerID - id аутентифицированного пользователя, UserID - id из пути запроса.
type AddPhotoInput struct {
	CallerID    int64
	UserID      int64
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	Description string
}

// PhotoByID возвращает фотографию по id без проверки владельца.
func (s *Service) PhotoByID(ctx context.Context, photoID int64) (*models.Photo, error) {
	const op = "service/photos/PhotoByID"

	lg := log.From(ctx).With("op", op, "photo_id", photoID)

	photo, err := s.repo.PhotoByID(ctx, photoID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundPhoto):
			lg.Warn("photo not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on PhotoByID", "err", err)

			return nil, internalErr(op, err)
		}
	}

	return photo, nil
}

// AddPhotoForUser загружает файл в объектное хранилище и сохраняет запись о фотографии.
//
// Валидация:
//   - CallerID должен совпадать с UserID, иначе ErrUnauthorized;
//   - пустой файл -> ErrEmptyFile, больше photo.max_size_bytes -> ErrFileTooLarge;
//   - Content-Type вне allow-list -> ErrContentType.
//
// Поведение:
//   - первая фотография пользователя становится главной;
//   - сбой загрузки -> ErrStorageFailure;
//   - если запись не сохранилась, загруженный объект удаляется.
func (s *Service) AddPhotoForUser(ctx context.Context, in AddPhotoInput) (*models.Photo, error) {
	const op = "service/photos/AddPhotoForUser"

	lg := log.From(ctx).With("op", op, "user_id", in.UserID)

	if in.CallerID != in.UserID {
		lg.Warn("caller does not own the resource", "caller_id", in.CallerID)

		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if in.Size <= 0 || in.Body == nil {
		lg.Warn("invalid argument: empty file")

		return nil, fmt.Errorf("%s: %w", op, ErrEmptyFile)
	}

	if limit := s.cfg.Photo.MaxSizeBytes; limit > 0 && in.Size > limit {
		lg.Warn("invalid argument: file too large", "size", in.Size, "max", limit)

		return nil, fmt.Errorf("%s: %w", op, ErrFileTooLarge)
	}

	contentType := normalizeContentType(in.ContentType)
	if !isAllowedContentType(s.cfg.Photo.AllowedContentTypes, contentType) {
		lg.Warn("invalid argument: content type not allowed", "content_type", in.ContentType)

		return nil, fmt.Errorf("%s: %w", op, ErrContentType)
	}

	isMain := false
	if _, err := s.repo.MainPhotoForUser(ctx, in.UserID); err != nil {
		if !errors.Is(err, storage.ErrNotFoundPhoto) {
			lg.Error("storage error on MainPhotoForUser", "err", err)

			return nil, internalErr(op, err)
		}

		isMain = true
	}

	key := objectKey(in.UserID, in.FileName, s.now(), s.nonce())
	lg = lg.With("key", key)

	uploaded, err := s.objects.PutObject(ctx, key, in.Body, in.Size, contentType)
	if err != nil {
		lg.Error("object storage upload failed", "err", err)

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrStorageFailure)
	}

	photo := &models.Photo{
		UserID:      in.UserID,
		URL:         uploaded.URL,
		Description: strings.TrimSpace(in.Description),
		IsMain:      isMain,
		PublicID:    uploaded.PublicID(),
	}

	created, err := s.repo.CreatePhoto(ctx, photo)
	if err != nil && isMain && errors.Is(err, storage.ErrAlreadyExists) {
		// Параллельная загрузка уже заняла место главной фотографии.
		photo.IsMain = false
		created, err = s.repo.CreatePhoto(ctx, photo)
	}

	if err != nil {
		s.rollbackUpload(ctx, lg, key)

		switch {
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on CreatePhoto", "err", err)

			return nil, internalErr(op, err)
		}
	}

	lg.Info("photo added", "photo_id", created.ID, "is_main", created.IsMain)

	return created, nil
}

// rollbackUpload удаляет объект, для которого не удалось сохранить запись.
// Выполняется и при отменённом контексте запроса.
func (s *Service) rollbackUpload(ctx context.Context, lg *slog.Logger, key string) {
	if err := s.objects.DeleteObject(context.WithoutCancel(ctx), key); err != nil {
		lg.Error("failed to roll back uploaded object", "err", err)
	}
}

// SetMainPhoto делает фотографию главной, снимая флаг с прежней в одной транзакции.
//
// Ошибки: ErrUnauthorized, если вызывающий не владелец пути или фотографии;
// ErrAlreadyMain, если фотография уже главная.
func (s *Service) SetMainPhoto(ctx context.Context, callerID, userID, photoID int64) error {
	const op = "service/photos/SetMainPhoto"

	lg := log.From(ctx).With("op", op, "user_id", userID, "photo_id", photoID)

	photo, err := s.ownedPhoto(ctx, op, lg, callerID, userID, photoID)
	if err != nil {
		return err
	}

	if photo.IsMain {
		lg.Warn("photo is already main")

		return fmt.Errorf("%s: %w", op, ErrAlreadyMain)
	}

	if err := s.repo.SetMainPhoto(ctx, userID, photoID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundPhoto):
			lg.Warn("photo disappeared before update")

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on SetMainPhoto", "err", err)

			return internalErr(op, err)
		}
	}

	lg.Info("main photo changed")

	return nil
}

// DeletePhoto удаляет фотографию владельца: сначала объект в бакете, затем запись в БД.
//
// Ошибки: ErrUnauthorized при нарушении владения; ErrMainPhotoLocked для главной фотографии;
// ErrStorageFailure, если хранилище не подтвердило удаление (запись при этом сохраняется).
func (s *Service) DeletePhoto(ctx context.Context, callerID, userID, photoID int64) error {
	const op = "service/photos/DeletePhoto"

	lg := log.From(ctx).With("op", op, "user_id", userID, "photo_id", photoID)

	photo, err := s.ownedPhoto(ctx, op, lg, callerID, userID, photoID)
	if err != nil {
		return err
	}

	if photo.IsMain {
		lg.Warn("attempt to delete main photo")

		return fmt.Errorf("%s: %w", op, ErrMainPhotoLocked)
	}

	if err := s.removePhoto(ctx, op, photo); err != nil {
		return err
	}

	lg.Info("photo deleted")

	return nil
}

// ownedPhoto проверяет, что вызывающий совпадает с userID и владеет фотографией.
// Отсутствующая фотография трактуется так же, как чужая.
func (s *Service) ownedPhoto(ctx context.Context, op string, lg *slog.Logger, callerID, userID, photoID int64) (*models.Photo, error) {
	if callerID != userID {
		lg.Warn("caller does not own the resource", "caller_id", callerID)

		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	photo, err := s.repo.PhotoByID(ctx, photoID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundPhoto):
			lg.Warn("photo not found for owner")

			return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
		default:
			lg.Error("storage error on PhotoByID", "err", err)

			return nil, internalErr(op, err)
		}
	}

	if photo.UserID != userID {
		lg.Warn("photo belongs to another user", "owner_id", photo.UserID)

		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	return photo, nil
}

// normalizeContentType отбрасывает параметры (charset и т.п.) и приводит тип к нижнему регистру.
func normalizeContentType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}

	return strings.ToLower(strings.TrimSpace(contentType))
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if strings.EqualFold(strings.TrimSpace(a), contentType) {
			return true
		}
	}

	return false
}
