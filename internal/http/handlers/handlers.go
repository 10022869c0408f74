package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-dating-service/internal/errors"
	"github.com/pribylovaa/go-dating-service/internal/identity"
	"github.com/pribylovaa/go-dating-service/internal/service"
)

// multipartOverhead - запас на заголовки частей и поле description сверх лимита файла.
const multipartOverhead = 1 << 20

// Handlers агрегирует зависимости REST-слоя.
type Handlers struct {
	svc *service.Service
	// maxUploadBytes ограничивает тело multipart-запроса; 0 - без ограничения.
	maxUploadBytes int64
}

func New(svc *service.Service, maxPhotoBytes int64) *Handlers {
	h := &Handlers{svc: svc}
	if maxPhotoBytes > 0 {
		h.maxUploadBytes = maxPhotoBytes + multipartOverhead
	}

	return h
}

// writeJSON - единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict - строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// int64Param читает положительный числовой параметр пути.
func int64Param(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apierrors.BadRequest("invalid " + name)
	}

	return id, nil
}

// stringParam читает строковый параметр пути.
// chi берёт значение из RawPath, только если он задан: тогда оно ещё экранировано.
// Иначе параметр уже раскодирован, и повторный PathUnescape исказил бы "%".
func stringParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}

	unescaped, err := url.PathUnescape(v)
	if err != nil {
		return "", apierrors.BadRequest("invalid " + name)
	}

	return unescaped, nil
}

// callerID - id аутентифицированного пользователя; без Authenticate -> unauthenticated.
func callerID(r *http.Request) (int64, error) {
	id, ok := identity.From(r.Context())
	if !ok {
		return 0, identity.ErrUnauthenticated
	}

	return id.UserID, nil
}
