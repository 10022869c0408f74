package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-dating-service/internal/models"
	"github.com/pribylovaa/go-dating-service/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestService_UsersWithRoles_OK(t *testing.T) {
	s, repo, _ := newServiceWithMocks(t)

	want := []models.UserWithRoles{
		{ID: 1, Username: "alice", Roles: []string{"Admin", "Member"}},
		{ID: 2, Username: "bob", Roles: []string{}},
	}
	repo.EXPECT().UsersWithRoles(gomock.Any()).Return(want, nil)

	got, err := s.UsersWithRoles(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_UsersWithRoles_Internal(t *testing.T) {
	s, repo, _ := newServiceWithMocks(t)

	repo.EXPECT().UsersWithRoles(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := s.UsersWithRoles(context.Background())
	require.ErrorIs(t, err, ErrInternal)
}

// Из ["Member"] в ["Admin","Member"]: назначается только Admin, снятий нет.
func TestService_EditRoles_AddsMissing(t *testing.T) {
	s, repo, _ := newServiceWithMocks(t)

	gomock.InOrder(
		repo.EXPECT().UserByUsername(gomock.Any(), "alice").Return(&models.User{ID: 1, Username: "alice"}, nil),
		repo.EXPECT().UserRoles(gomock.Any(), int64(1)).Return([]string{"Member"}, nil),
		repo.EXPECT().AddUserRoles(gomock.Any(), int64(1), []string{"Admin"}).Return(nil),
		repo.EXPECT().UserRoles(gomock.Any(), int64(1)).Return([]string{"Admin", "Member"}, nil),
	)

	got, err := s.EditRoles(context.Background(), "alice", []string{"Admin", "Member"})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Admin", "Member"}, got)
}

// Повторный вызов с тем же набором не выполняет ни назначения, ни снятия.
func TestService_EditRoles_Idempotent(t *testing.T) {
	s, repo, _ := newServiceWithMocks(t)

	repo.EXPECT().UserByUsername(gomock.Any(), "alice").Return(&models.User{ID: 1, Username: "alice"}, nil)
	repo.EXPECT().UserRoles(gomock.Any(), int64(1)).Return([]string{"Admin", "Member"}, nil)
	repo.EXPECT().AddUserRoles(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().RemoveUserRoles(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := s.EditRoles(context.Background(), "alice", []string{"Member", " Admin ", "Admin", ""})
	require.NoError(t, err)
	require.Equal(t, []string{"Admin", "Member"}, got)
}

// nil - снять все роли; фаза назначения пропускается.
func TestService_EditRoles_NilRemovesAll(t *testing.T) {
	s, repo, _ := newServiceWithMocks(t)

	repo.EXPECT().UserByUsername(gomock.Any(), "bob").Return(&models.User{ID: 2, Username: "bob"}, nil)
	gomock.InOrder(
		repo.EXPECT().UserRoles(gomock.Any(), int64(2)).Return([]string{"Member", "VIP"}, nil),
		repo.EXPECT().RemoveUserRoles(gomock.Any(), int64(2), []string{"Member", "VIP"}).Return(nil),
		repo.EXPECT().UserRoles(gomock.Any(), int64(2)).Return([]string{}, nil),
	)
	repo.EXPECT().AddUserRoles(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := s.EditRoles(context.Background(), "bob", nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

// Назначение выполняется раньше снятия.
func TestService_EditRoles_AddThenRemove(t *testing.T) {
	s, repo, _ := newServiceWithMocks(t)

	repo.EXPECT().UserByUsername(gomock.Any(), "bob").Return(&models.User{ID: 2, Username: "bob"}, nil)
	gomock.InOrder(
		repo.EXPECT().UserRoles(gomock.Any(), int64(2)).Return([]string{"Member"}, nil),
		repo.EXPECT().AddUserRoles(gomock.Any(), int64(2), []string{"VIP"}).Return(nil),
		repo.EXPECT().RemoveUserRoles(gomock.Any(), int64(2), []string{"Member"}).Return(nil),
		repo.EXPECT().UserRoles(gomock.Any(), int64(2)).Return([]string{"VIP"}, nil),
	)

	got, err := s.EditRoles(context.Background(), "bob", []string{"VIP"})
	require.NoError(t, err)
	require.Equal(t, []string{"VIP"}, got)
}

func TestService_EditRoles_Errors(t *testing.T) {
	t.Run("empty_username", func(t *testing.T) {
		s, _, _ := newServiceWithMocks(t)

		_, err := s.EditRoles(context.Background(), "  ", []string{"Admin"})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("user_not_found", func(t *testing.T) {
		s, repo, _ := newServiceWithMocks(t)
		repo.EXPECT().UserByUsername(gomock.Any(), "ghost").Return(nil, storage.ErrNotFoundUser)

		_, err := s.EditRoles(context.Background(), "ghost", []string{"Admin"})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown_role", func(t *testing.T) {
		s, repo, _ := newServiceWithMocks(t)
		repo.EXPECT().UserByUsername(gomock.Any(), "alice").Return(&models.User{ID: 1}, nil)
		repo.EXPECT().UserRoles(gomock.Any(), int64(1)).Return([]string{"Member"}, nil)
		repo.EXPECT().AddUserRoles(gomock.Any(), int64(1), []string{"Overlord"}).Return(storage.ErrUnknownRole)
		repo.EXPECT().RemoveUserRoles(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.EditRoles(context.Background(), "alice", []string{"Overlord"})
		require.ErrorIs(t, err, ErrAddRolesFailed)
	})

	t.Run("add_phase_internal", func(t *testing.T) {
		s, repo, _ := newServiceWithMocks(t)
		repo.EXPECT().UserByUsername(gomock.Any(), "alice").Return(&models.User{ID: 1}, nil)
		repo.EXPECT().UserRoles(gomock.Any(), int64(1)).Return(nil, nil)
		repo.EXPECT().AddUserRoles(gomock.Any(), int64(1), []string{"Admin"}).Return(errors.New("db down"))

		_, err := s.EditRoles(context.Background(), "alice", []string{"Admin"})
		require.ErrorIs(t, err, ErrInternal)
	})

	t.Run("remove_phase_failed", func(t *testing.T) {
		s, repo, _ := newServiceWithMocks(t)
		repo.EXPECT().UserByUsername(gomock.Any(), "alice").Return(&models.User{ID: 1}, nil)
		repo.EXPECT().UserRoles(gomock.Any(), int64(1)).Return([]string{"VIP"}, nil)
		repo.EXPECT().RemoveUserRoles(gomock.Any(), int64(1), []string{"VIP"}).Return(storage.ErrUnknownRole)

		_, err := s.EditRoles(context.Background(), "alice", nil)
		require.ErrorIs(t, err, ErrRemoveRolesFailed)
	})

	t.Run("remove_phase_internal", func(t *testing.T) {
		s, repo, _ := newServiceWithMocks(t)
		repo.EXPECT().UserByUsername(gomock.Any(), "alice").Return(&models.User{ID: 1}, nil)
		repo.EXPECT().UserRoles(gomock.Any(), int64(1)).Return([]string{"VIP"}, nil)
		repo.EXPECT().RemoveUserRoles(gomock.Any(), int64(1), []string{"VIP"}).Return(errors.New("conn reset"))

		_, err := s.EditRoles(context.Background(), "alice", nil)
		require.ErrorIs(t, err, ErrInternal)
		require.NotErrorIs(t, err, ErrRemoveRolesFailed)
	})

	t.Run("remove_phase_deadline", func(t *testing.T) {
		s, repo, _ := newServiceWithMocks(t)
		repo.EXPECT().UserByUsername(gomock.Any(), "alice").Return(&models.User{ID: 1}, nil)
		repo.EXPECT().UserRoles(gomock.Any(), int64(1)).Return([]string{"VIP"}, nil)
		repo.EXPECT().RemoveUserRoles(gomock.Any(), int64(1), []string{"VIP"}).
			Return(fmt.Errorf("storage/postgres/users/RemoveUserRoles: %w", context.DeadlineExceeded))

		_, err := s.EditRoles(context.Background(), "alice", nil)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.NotErrorIs(t, err, ErrRemoveRolesFailed)
	})

	t.Run("canceled_context", func(t *testing.T) {
		s, repo, _ := newServiceWithMocks(t)
		repo.EXPECT().UserByUsername(gomock.Any(), "alice").Return(nil, context.Canceled)

		_, err := s.EditRoles(context.Background(), "alice", nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestService_PhotosForModeration(t *testing.T) {
	s, repo, _ := newServiceWithMocks(t)

	want := []models.PhotoForModeration{{ID: 3, Username: "alice", URL: "u"}}
	repo.EXPECT().PhotosForModeration(gomock.Any()).Return(want, nil)

	got, err := s.PhotosForModeration(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_ApprovePhoto(t *testing.T) {
	s, repo, _ := newServiceWithMocks(t)

	repo.EXPECT().ApprovePhoto(gomock.Any(), int64(3)).Return(nil)
	require.NoError(t, s.ApprovePhoto(context.Background(), 3))

	repo.EXPECT().ApprovePhoto(gomock.Any(), int64(4)).Return(storage.ErrNotFoundPhoto)
	require.ErrorIs(t, s.ApprovePhoto(context.Background(), 4), ErrNotFound)
}

func TestService_RejectPhoto_DeletesObjectThenRecord(t *testing.T) {
	s, repo, objects := newServiceWithMocks(t)

	photo := &models.Photo{ID: 3, UserID: 7, URL: "https://cdn/b/7/a.jpg_2024.jpg", PublicID: "v1"}
	repo.EXPECT().PhotoByID(gomock.Any(), int64(3)).Return(photo, nil)
	gomock.InOrder(
		objects.EXPECT().DeleteObject(gomock.Any(), "7/a.jpg_2024.jpg").Return(nil),
		repo.EXPECT().DeletePhoto(gomock.Any(), int64(3)).Return(nil),
	)

	require.NoError(t, s.RejectPhoto(context.Background(), 3))
}

func TestService_RejectPhoto_NoStoredObject(t *testing.T) {
	s, repo, objects := newServiceWithMocks(t)

	repo.EXPECT().PhotoByID(gomock.Any(), int64(3)).Return(&models.Photo{ID: 3, UserID: 7, URL: "u"}, nil)
	objects.EXPECT().DeleteObject(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().DeletePhoto(gomock.Any(), int64(3)).Return(nil)

	require.NoError(t, s.RejectPhoto(context.Background(), 3))
}

// Отсутствующий в бакете объект не мешает удалить запись.
func TestService_RejectPhoto_ObjectAlreadyGone(t *testing.T) {
	s, repo, objects := newServiceWithMocks(t)

	repo.EXPECT().PhotoByID(gomock.Any(), int64(3)).Return(&models.Photo{ID: 3, UserID: 7, URL: "https://cdn/7/a.jpg", PublicID: "e"}, nil)
	objects.EXPECT().DeleteObject(gomock.Any(), "7/a.jpg").Return(storage.ErrNotFoundObject)
	repo.EXPECT().DeletePhoto(gomock.Any(), int64(3)).Return(nil)

	require.NoError(t, s.RejectPhoto(context.Background(), 3))
}

func TestService_RejectPhoto_MainIsLocked(t *testing.T) {
	s, repo, objects := newServiceWithMocks(t)

	repo.EXPECT().PhotoByID(gomock.Any(), int64(3)).Return(&models.Photo{ID: 3, UserID: 7, IsMain: true, PublicID: "v"}, nil)
	objects.EXPECT().DeleteObject(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().DeletePhoto(gomock.Any(), gomock.Any()).Times(0)

	err := s.RejectPhoto(context.Background(), 3)
	require.ErrorIs(t, err, ErrMainPhotoLocked)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Сбой хранилища не удаляет запись в БД.
func TestService_RejectPhoto_StorageFailureKeepsRecord(t *testing.T) {
	s, repo, objects := newServiceWithMocks(t)

	repo.EXPECT().PhotoByID(gomock.Any(), int64(3)).Return(&models.Photo{ID: 3, UserID: 7, URL: "https://cdn/7/a.jpg", PublicID: "v"}, nil)
	objects.EXPECT().DeleteObject(gomock.Any(), "7/a.jpg").Return(errors.New("s3 unavailable"))
	repo.EXPECT().DeletePhoto(gomock.Any(), gomock.Any()).Times(0)

	require.ErrorIs(t, s.RejectPhoto(context.Background(), 3), ErrStorageFailure)
}

func TestService_RejectPhoto_NotFound(t *testing.T) {
	s, repo, _ := newServiceWithMocks(t)

	repo.EXPECT().PhotoByID(gomock.Any(), int64(3)).Return(nil, storage.ErrNotFoundPhoto)

	require.ErrorIs(t, s.RejectPhoto(context.Background(), 3), ErrNotFound)
}
