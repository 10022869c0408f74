package minio

import (
	"context"
	"fmt"
	"io"
	"net/http"

	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/go-dating-service/internal/storage"
)

// PutObject загружает объект в бакет и возвращает его версию, ETag и публичный URL.
func (s *ObjectStorage) PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) (*storage.UploadResult, error) {
	const op = "storage/minio/objects/PutObject"

	info, err := s.client.PutObject(ctx, s.bucket, key, body, size, mclient.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.UploadResult{
		Key:       key,
		VersionID: info.VersionID,
		ETag:      info.ETag,
		URL:       storage.PublicURL(s.publicBase, key),
	}, nil
}

// DeleteObject удаляет объект по ключу.
// Ошибки: storage.ErrNotFoundObject, если хранилище сообщило об отсутствии ключа.
func (s *ObjectStorage) DeleteObject(ctx context.Context, key string) error {
	const op = "storage/minio/objects/DeleteObject"

	if err := s.client.RemoveObject(ctx, s.bucket, key, mclient.RemoveObjectOptions{}); err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFoundObject)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
