// storage содержит контракты слоя хранилищ dating-service.
//
// storage.go - работа с пользователями, ролями и фотографиями в БД.
// objects.go - контракт объектного хранилища (S3/MinIO) для бинарных файлов фотографий.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-dating-service/internal/models"
)

var (
	// ErrNotFoundUser - пользователь не найден.
	ErrNotFoundUser = errors.New("user not found")
	// ErrNotFoundPhoto - фотография не найдена.
	ErrNotFoundPhoto = errors.New("photo not found")
	// ErrUnknownRole - среди запрошенных есть роль, отсутствующая в справочнике.
	ErrUnknownRole = errors.New("unknown role")
	// ErrAlreadyExists - нарушено ограничение уникальности.
	ErrAlreadyExists = errors.New("already exists")
)

// Users - контракт репозитория пользователей и их ролей.
type Users interface {
	// UsersWithRoles возвращает всех пользователей, упорядоченных по username,
	// с отсортированными именами ролей.
	UsersWithRoles(ctx context.Context) ([]models.UserWithRoles, error)
	// UserByUsername возвращает пользователя по логину.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	// UserRoles возвращает отсортированные имена ролей пользователя.
	UserRoles(ctx context.Context, userID int64) ([]string, error)
	// AddUserRoles назначает роли. Если хотя бы одной роли нет в справочнике,
	// ничего не меняется и возвращается ErrUnknownRole.
	AddUserRoles(ctx context.Context, userID int64, roles []string) error
	// RemoveUserRoles снимает роли. Неназначенные роли игнорируются;
	// роль вне справочника -> ErrUnknownRole.
	RemoveUserRoles(ctx context.Context, userID int64, roles []string) error
}

// Photos - контракт репозитория фотографий.
type Photos interface {
	// PhotoByID возвращает фотографию по id.
	PhotoByID(ctx context.Context, photoID int64) (*models.Photo, error)
	// PhotosForModeration возвращает все неодобренные фотографии по дате добавления.
	PhotosForModeration(ctx context.Context) ([]models.PhotoForModeration, error)
	// MainPhotoForUser возвращает главную фотографию пользователя или ErrNotFoundPhoto.
	MainPhotoForUser(ctx context.Context, userID int64) (*models.Photo, error)
	// CreatePhoto сохраняет новую фотографию; id и date_added заполняет БД.
	CreatePhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error)
	// ApprovePhoto помечает фотографию одобренной.
	ApprovePhoto(ctx context.Context, photoID int64) error
	// SetMainPhoto в одной транзакции снимает флаг с прежней главной и ставит его на photoID.
	SetMainPhoto(ctx context.Context, userID, photoID int64) error
	// DeletePhoto удаляет запись о фотографии.
	DeletePhoto(ctx context.Context, photoID int64) error
}

// Repository - верхнеуровневый интерфейс реляционного хранилища.
type Repository interface {
	Users
	Photos
	Close()
}
