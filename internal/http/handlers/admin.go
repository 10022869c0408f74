package handlers

import (
	"errors"
	"io"
	"net/http"

	apierrors "github.com/pribylovaa/go-dating-service/internal/errors"
	"github.com/pribylovaa/go-dating-service/internal/http/dto"
)

func (h *Handlers) UsersWithRoles(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.UsersWithRoles(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UsersWithRolesFromModels(users))
}

// EditRoles приводит роли пользователя к списку из тела запроса.
// Пустое тело равносильно {"roleNames": []}.
func (h *Handlers) EditRoles(w http.ResponseWriter, r *http.Request) {
	username, err := stringParam(r, "userName")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.RoleEditRequest
	if err := decodeStrict(r, &in); err != nil && !errors.Is(err, io.EOF) {
		apierrors.WriteError(w, r, apierrors.BadRequest("invalid request body"))
		return
	}

	roles, err := h.svc.EditRoles(r.Context(), username, in.RoleNames)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, roles)
}

func (h *Handlers) PhotosForModeration(w http.ResponseWriter, r *http.Request) {
	photos, err := h.svc.PhotosForModeration(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PhotosForModerationFromModels(photos))
}

func (h *Handlers) ApprovePhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := int64Param(r, "photoId")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.ApprovePhoto(r.Context(), photoID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) RejectPhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := int64Param(r, "photoId")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.RejectPhoto(r.Context(), photoID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
