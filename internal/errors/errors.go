// errors стандартизирует ответы об ошибках HTTP-слоя dating-service.
// На вход принимает ошибку сервисного слоя (или identity/контекста),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - стабильный машиночитаемый code;
//   - безопасное message без утечки деталей хранилищ.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-dating-service/internal/identity"
	"github.com/pribylovaa/go-dating-service/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError - единый формат для фронта.
// Code - короткий стабильный код для машиночитаемой обработки на FE.
// Message - безопасное человекочитаемое описание.
// RequestID - прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse - корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// validationMessages - детализированные ошибки валидации, чьё сообщение безопасно отдать клиенту.
var validationMessages = []struct {
	err error
	msg string
}{
	{service.ErrEmptyFile, "file is empty"},
	{service.ErrFileTooLarge, "file is too large"},
	{service.ErrContentType, "content type is not allowed"},
	{service.ErrMainPhotoLocked, "main photo cannot be deleted or rejected"},
	{service.ErrAlreadyMain, "this is already the main photo"},
}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ.
//
// Таблица:
//   - ErrInvalidArgument (и детализированные) -> 400 invalid_argument
//   - ErrAddRolesFailed / ErrRemoveRolesFailed -> 400 roles_add_failed / roles_remove_failed
//   - ErrNotFound -> 404
//   - ErrUnauthorized -> 401 unauthorized; identity.ErrUnauthenticated -> 401 unauthenticated
//   - identity.ErrPermissionDenied -> 403
//   - ErrStorageFailure -> 502
//   - context.Canceled -> 499, context.DeadlineExceeded -> 504
//   - nil и прочее -> 500/internal
func ToHTTP(err error) (int, ErrorResponse) {
	httpStatus, code, msg := classify(err)

	return httpStatus, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

func classify(err error) (int, string, string) {
	var reqErr *requestError

	switch {
	case err == nil:
		// Программная ошибка вызова: не отдаём "200 OK" с телом ошибки.
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.As(err, &reqErr):
		return http.StatusBadRequest, "invalid_argument", reqErr.msg
	case errors.Is(err, service.ErrInvalidArgument):
		for _, v := range validationMessages {
			if errors.Is(err, v.err) {
				return http.StatusBadRequest, "invalid_argument", v.msg
			}
		}
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrAddRolesFailed):
		return http.StatusBadRequest, "roles_add_failed", "failed to add to roles"
	case errors.Is(err, service.ErrRemoveRolesFailed):
		return http.StatusBadRequest, "roles_remove_failed", "failed to remove the roles"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized", "unauthorized"
	case errors.Is(err, identity.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case errors.Is(err, identity.ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied", "permission denied"
	case errors.Is(err, service.ErrStorageFailure):
		return http.StatusBadGateway, "storage_failure", "object storage failure"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}

// WriteError - хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// BadRequest - ошибка разбора запроса на уровне транспорта (битый JSON, id не число).
func BadRequest(msg string) error {
	return &requestError{msg: msg}
}

type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

func (e *requestError) Unwrap() error { return service.ErrInvalidArgument }
