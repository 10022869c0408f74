// s3 предоставляет реализацию storage.ObjectStorage на базе AWS SDK v2.
// Используется при s3.provider = "aws"; при заданном endpoint работает
// в path-style режиме с любым S3-совместимым сервисом.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pribylovaa/go-dating-service/internal/config"
	"github.com/pribylovaa/go-dating-service/internal/storage"
)

// ObjectStorage - адаптер AWS S3 для операций с объектами фотографий.
type ObjectStorage struct {
	bucket     string
	publicBase string
	client     *awss3.Client
}

// New создает S3-клиент со статическими ключами и проверяет доступность бакета.
func New(ctx context.Context, cfg config.S3Config) (*ObjectStorage, error) {
	const op = "storage/s3/New"

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     cfg.AccessKey,
					SecretAccessKey: cfg.SecretKey,
				}, nil
			},
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	if _, err := client.HeadBucket(ctx, &awss3.HeadBucketInput{Bucket: aws.String(cfg.Bucket)}); err != nil {
		return nil, fmt.Errorf("%s: bucket %q is not accessible: %w", op, cfg.Bucket, err)
	}

	return &ObjectStorage{
		bucket:     cfg.Bucket,
		publicBase: cfg.PublicBaseURL,
		client:     client,
	}, nil
}

// PutObject загружает объект в бакет и возвращает его версию, ETag и публичный URL.
func (s *ObjectStorage) PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) (*storage.UploadResult, error) {
	const op = "storage/s3/PutObject"

	out, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.UploadResult{
		Key:       key,
		VersionID: aws.ToString(out.VersionId),
		ETag:      aws.ToString(out.ETag),
		URL:       storage.PublicURL(s.publicBase, key),
	}, nil
}

// DeleteObject удаляет объект по ключу.
// Ошибки: storage.ErrNotFoundObject, если хранилище сообщило об отсутствии ключа.
func (s *ObjectStorage) DeleteObject(ctx context.Context, key string) error {
	const op = "storage/s3/DeleteObject"

	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFoundObject)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.ObjectStorage = (*ObjectStorage)(nil)
