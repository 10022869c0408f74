package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-dating-service/internal/models"
	"github.com/pribylovaa/go-dating-service/internal/storage"
	"github.com/pribylovaa/go-dating-service/pkg/log"
)

// UsersWithRoles возвращает всех пользователей (по username) с их ролями.
func (s *Service) UsersWithRoles(ctx context.Context) ([]models.UserWithRoles, error) {
	const op = "service/admin/UsersWithRoles"

	lg := log.From(ctx).With("op", op)

	users, err := s.repo.UsersWithRoles(ctx)
	if err != nil {
		lg.Error("storage error on UsersWithRoles", "err", err)

		return nil, internalErr(op, err)
	}

	return users, nil
}

// EditRoles приводит набор ролей пользователя к желаемому.
//
// Нормализация:
//   - имена ролей обрезаются (TrimSpace), пустые отбрасываются, дубликаты схлопываются;
//   - nil означает "без ролей".
//
// Поведение:
//   - сначала назначаются недостающие роли, затем снимаются лишние;
//     пустая фаза пропускается, поэтому повторный вызов ничего не пишет;
//   - неизвестная роль в фазе назначения -> ErrAddRolesFailed;
//   - отказ фазы снятия (роль вне справочника) -> ErrRemoveRolesFailed;
//   - прочие сбои хранилища, в том числе отмена контекста, -> internalErr;
//   - пользователь не найден -> ErrNotFound.
//
// Возвращает итоговый набор ролей, перечитанный из хранилища.
func (s *Service) EditRoles(ctx context.Context, username string, roleNames []string) ([]string, error) {
	const op = "service/admin/EditRoles"

	username = strings.TrimSpace(username)
	lg := log.From(ctx).With("op", op, "username", username)

	if username == "" {
		lg.Warn("invalid argument: empty username")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.repo.UserByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByUsername", "err", err)

			return nil, internalErr(op, err)
		}
	}

	current, err := s.repo.UserRoles(ctx, user.ID)
	if err != nil {
		lg.Error("storage error on UserRoles", "err", err)

		return nil, internalErr(op, err)
	}

	desired := normalizeRoles(roleNames)
	add := difference(desired, current)
	remove := difference(current, desired)

	if len(add) > 0 {
		if err := s.repo.AddUserRoles(ctx, user.ID, add); err != nil {
			switch {
			case errors.Is(err, storage.ErrUnknownRole):
				lg.Warn("unknown role requested", "roles", add)

				return nil, fmt.Errorf("%s: %w", op, ErrAddRolesFailed)
			case errors.Is(err, storage.ErrNotFoundUser):
				lg.Warn("user disappeared while adding roles")

				return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
			default:
				lg.Error("storage error on AddUserRoles", "err", err)

				return nil, internalErr(op, err)
			}
		}
	}

	if len(remove) > 0 {
		if err := s.repo.RemoveUserRoles(ctx, user.ID, remove); err != nil {
			switch {
			case errors.Is(err, storage.ErrUnknownRole):
				lg.Warn("unknown role on removal", "roles", remove)

				return nil, fmt.Errorf("%s: %w", op, ErrRemoveRolesFailed)
			default:
				lg.Error("storage error on RemoveUserRoles", "err", err, "roles", remove)

				return nil, internalErr(op, err)
			}
		}
	}

	if len(add) == 0 && len(remove) == 0 {
		return current, nil
	}

	lg.Info("roles updated", "added", add, "removed", remove)

	result, err := s.repo.UserRoles(ctx, user.ID)
	if err != nil {
		lg.Error("storage error on UserRoles", "err", err)

		return nil, internalErr(op, err)
	}

	return result, nil
}

// PhotosForModeration возвращает все неодобренные фотографии.
func (s *Service) PhotosForModeration(ctx context.Context) ([]models.PhotoForModeration, error) {
	const op = "service/admin/PhotosForModeration"

	lg := log.From(ctx).With("op", op)

	photos, err := s.repo.PhotosForModeration(ctx)
	if err != nil {
		lg.Error("storage error on PhotosForModeration", "err", err)

		return nil, internalErr(op, err)
	}

	return photos, nil
}

// ApprovePhoto одобряет фотографию. Повторное одобрение допустимо.
func (s *Service) ApprovePhoto(ctx context.Context, photoID int64) error {
	const op = "service/admin/ApprovePhoto"

	lg := log.From(ctx).With("op", op, "photo_id", photoID)

	if err := s.repo.ApprovePhoto(ctx, photoID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundPhoto):
			lg.Warn("photo not found")

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on ApprovePhoto", "err", err)

			return internalErr(op, err)
		}
	}

	lg.Info("photo approved")

	return nil
}

// RejectPhoto отклоняет фотографию: удаляет объект из бакета (если он есть),
// и только после подтверждения хранилища - запись в БД.
// Главную фотографию отклонить нельзя (ErrMainPhotoLocked).
func (s *Service) RejectPhoto(ctx context.Context, photoID int64) error {
	const op = "service/admin/RejectPhoto"

	lg := log.From(ctx).With("op", op, "photo_id", photoID)

	photo, err := s.repo.PhotoByID(ctx, photoID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundPhoto):
			lg.Warn("photo not found")

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on PhotoByID", "err", err)

			return internalErr(op, err)
		}
	}

	if photo.IsMain {
		lg.Warn("attempt to reject main photo")

		return fmt.Errorf("%s: %w", op, ErrMainPhotoLocked)
	}

	if err := s.removePhoto(ctx, op, photo); err != nil {
		return err
	}

	lg.Info("photo rejected")

	return nil
}

// removePhoto удаляет объект фотографии из бакета и затем запись из БД.
// Сбой хранилища оставляет запись нетронутой. Ошибки уже обёрнуты op вызывающего.
func (s *Service) removePhoto(ctx context.Context, op string, photo *models.Photo) error {
	lg := log.From(ctx).With("op", op, "photo_id", photo.ID, "user_id", photo.UserID)

	if photo.HasStoredObject() {
		key, ok := keyFromURL(photo.UserID, photo.URL)
		if !ok {
			lg.Error("cannot derive object key from url", "url", photo.URL)

			return fmt.Errorf("%s: %w", op, ErrInternal)
		}

		if err := s.objects.DeleteObject(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFoundObject) {
			lg.Error("object storage delete failed", "key", key, "err", err)

			return fmt.Errorf("%s: %w", op, ErrStorageFailure)
		}
	}

	if err := s.repo.DeletePhoto(ctx, photo.ID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundPhoto):
			lg.Warn("photo already deleted")

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on DeletePhoto", "err", err)

			return internalErr(op, err)
		}
	}

	return nil
}

// normalizeRoles обрезает имена, отбрасывает пустые и дубликаты, сохраняя порядок.
func normalizeRoles(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}

		if _, ok := seen[n]; ok {
			continue
		}

		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}

// difference возвращает элементы a, отсутствующие в b.
func difference(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}

	var out []string
	for _, v := range a {
		if _, ok := set[v]; !ok {
			out = append(out, v)
		}
	}

	return out
}
