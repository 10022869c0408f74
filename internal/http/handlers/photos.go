package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	apierrors "github.com/pribylovaa/go-dating-service/internal/errors"
	"github.com/pribylovaa/go-dating-service/internal/http/dto"
	"github.com/pribylovaa/go-dating-service/internal/service"
)

// maxFormMemory - часть multipart-формы, которая держится в памяти; остальное уходит во временные файлы.
const maxFormMemory = 8 << 20

func (h *Handlers) GetPhoto(w http.ResponseWriter, r *http.Request) {
	if _, err := int64Param(r, "userId"); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	photoID, err := int64Param(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	photo, err := h.svc.PhotoByID(r.Context(), photoID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PhotoFromModel(photo))
}

// AddPhotoForUser принимает multipart-форму с полями file и description.
// Content-Type файла определяется по содержимому, а не по заголовку части.
func (h *Handlers) AddPhotoForUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	userID, err := int64Param(r, "userId")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apierrors.WriteError(w, r, service.ErrFileTooLarge)
			return
		}

		apierrors.WriteError(w, r, apierrors.BadRequest("invalid multipart form"))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			apierrors.WriteError(w, r, service.ErrEmptyFile)
			return
		}

		apierrors.WriteError(w, r, apierrors.BadRequest("invalid file part"))
		return
	}
	defer file.Close()

	contentType, err := sniffContentType(file)
	if err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("read upload: %w", err))
		return
	}

	photo, err := h.svc.AddPhotoForUser(r.Context(), service.AddPhotoInput{
		CallerID:    caller,
		UserID:      userID,
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
		Description: r.FormValue("description"),
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d/photos/%d", userID, photo.ID))
	writeJSON(w, http.StatusCreated, dto.PhotoFromModel(photo))
}

func (h *Handlers) SetMainPhoto(w http.ResponseWriter, r *http.Request) {
	caller, userID, photoID, ok := h.ownerParams(w, r)
	if !ok {
		return
	}

	if err := h.svc.SetMainPhoto(r.Context(), caller, userID, photoID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	caller, userID, photoID, ok := h.ownerParams(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeletePhoto(r.Context(), caller, userID, photoID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ownerParams разбирает вызывающего, userId и id из пути; при ошибке ответ уже записан.
func (h *Handlers) ownerParams(w http.ResponseWriter, r *http.Request) (caller, userID, photoID int64, ok bool) {
	var err error

	if caller, err = callerID(r); err != nil {
		apierrors.WriteError(w, r, err)
		return 0, 0, 0, false
	}

	if userID, err = int64Param(r, "userId"); err != nil {
		apierrors.WriteError(w, r, err)
		return 0, 0, 0, false
	}

	if photoID, err = int64Param(r, "id"); err != nil {
		apierrors.WriteError(w, r, err)
		return 0, 0, 0, false
	}

	return caller, userID, photoID, true
}

// sniffContentType читает первые 512 байт файла и возвращает курсор в начало.
func sniffContentType(file multipart.File) (string, error) {
	buf := make([]byte, 512)

	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}
