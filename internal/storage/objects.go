package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
)

// ErrNotFoundObject - объект (ключ) отсутствует в бакете.
var ErrNotFoundObject = errors.New("object not found")

// UploadResult - результат загрузки объекта.
//   - Key: ключ объекта в бакете.
//   - VersionID: версия объекта (пусто, если версионирование бакета выключено).
//   - ETag: тег содержимого, возвращаемый хранилищем.
//   - URL: публичная ссылка на объект.
type UploadResult struct {
	Key       string
	VersionID string
	ETag      string
	URL       string
}

// PublicID возвращает маркер сохранённого объекта: версию, а при её отсутствии ETag.
func (r *UploadResult) PublicID() string {
	if r.VersionID != "" {
		return r.VersionID
	}

	return strings.Trim(r.ETag, `"`)
}

// Objects - контракт объектного хранилища фотографий.
type Objects interface {
	// PutObject загружает содержимое body размером size под ключом key.
	PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) (*UploadResult, error)
	// DeleteObject удаляет объект. Если хранилище сообщает об отсутствии ключа,
	// возвращается ErrNotFoundObject.
	DeleteObject(ctx context.Context, key string) error
}

// ObjectStorage - алиас-обёртка для внедрения зависимости.
type ObjectStorage interface {
	Objects
}

// PublicURL склеивает публичный base и ключ объекта; сегменты ключа экранируются.
func PublicURL(base, key string) string {
	segments := strings.Split(strings.TrimLeft(key, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/")
}
