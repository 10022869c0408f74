// service содержит бизнес-логику dating-service:
// - администрирование пользователей и ролей, модерация фотографий (admin.go);
// - загрузка, смена главной и удаление фотографий владельцем (photos.go).
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/go-dating-service/internal/config"
	"github.com/pribylovaa/go-dating-service/internal/storage"
)

var (
	// ErrInvalidArgument - некорректные входные данные или нарушение правил над фотографиями.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound - сущность не найдена.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized - вызывающий не владеет ресурсом.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStorageFailure - объектное хранилище не подтвердило операцию.
	ErrStorageFailure = errors.New("storage failure")
	// ErrAddRolesFailed - не удалось назначить роли.
	ErrAddRolesFailed = errors.New("failed to add to roles")
	// ErrRemoveRolesFailed - не удалось снять роли.
	ErrRemoveRolesFailed = errors.New("failed to remove the roles")
	// ErrInternal - внутренняя ошибка сервиса.
	ErrInternal = errors.New("internal")
)

// Детализированные ошибки валидации; все оборачивают ErrInvalidArgument.
var (
	ErrEmptyFile       = fmt.Errorf("%w: file is empty", ErrInvalidArgument)
	ErrFileTooLarge    = fmt.Errorf("%w: file is too large", ErrInvalidArgument)
	ErrContentType     = fmt.Errorf("%w: content type is not allowed", ErrInvalidArgument)
	ErrMainPhotoLocked = fmt.Errorf("%w: main photo cannot be deleted or rejected", ErrInvalidArgument)
	ErrAlreadyMain     = fmt.Errorf("%w: this is already the main photo", ErrInvalidArgument)
)

// Service - описывает бизнес-логику dating-service.
type Service struct {
	cfg     *config.Config
	repo    storage.Repository
	objects storage.ObjectStorage
	now     func() time.Time
	nonce   func() string
}

// New создает новый экземпляр Service.
func New(repo storage.Repository, objects storage.ObjectStorage, cfg *config.Config) *Service {
	return &Service{
		cfg:     cfg,
		repo:    repo,
		objects: objects,
		now:     time.Now,
		nonce:   keyNonce,
	}
}

// internalErr сохраняет ошибки контекста (отмена/таймаут), прочее сводит к ErrInternal.
func internalErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %w", op, ErrInternal)
}
