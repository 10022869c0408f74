// minio предоставляет реализацию storage.ObjectStorage на базе MinIO/S3-совместимого API.
// minio.go - конструктор клиента MinIO: нормализует endpoint,
// настраивает Secure/creds и проверяет наличие целевого бакета.
// objects.go - загрузка и удаление объектов фотографий.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/go-dating-service/internal/config"
	"github.com/pribylovaa/go-dating-service/internal/storage"
)

// ObjectStorage - адаптер MinIO для операций с объектами фотографий.
type ObjectStorage struct {
	bucket     string
	publicBase string
	client     *mclient.Client
}

// New создает клиент MinIO и выполняет fail-fast-проверку доступности бакета.
func New(ctx context.Context, cfg config.S3Config) (*ObjectStorage, error) {
	const op = "storage/minio/New"

	endpoint, secure := normalizeEndpoint(cfg.Endpoint)

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.Bucket)
	}

	return &ObjectStorage{
		bucket:     cfg.Bucket,
		publicBase: cfg.PublicBaseURL,
		client:     client,
	}, nil
}

// normalizeEndpoint убирает схему из endpoint и подбирает Secure по ней.
func normalizeEndpoint(endpoint string) (string, bool) {
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		return u.Host, u.Scheme == "https"
	}

	return endpoint, secure
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.ObjectStorage = (*ObjectStorage)(nil)
