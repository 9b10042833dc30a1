package infrastructure

import (
	"bytes"
	"context"
	"fmt"

	"Vaquinha/config"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioImageStorage guarda imagens de campanha em um bucket
// S3-compatível (MinIO, R2, S3).
type MinioImageStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinioImageStorage(cfg *config.Config) (*MinioImageStorage, error) {
	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
		Region: cfg.Storage.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao storage: %w", err)
	}

	storage := &MinioImageStorage{
		client:    client,
		bucket:    cfg.Storage.Bucket,
		publicURL: cfg.Storage.PublicURL,
	}

	if err := storage.ensureBucket(context.Background()); err != nil {
		return nil, err
	}

	logger.Info().
		Str("endpoint", cfg.Storage.Endpoint).
		Str("bucket", cfg.Storage.Bucket).
		Msg("Storage de imagens configurado")

	return storage, nil
}

func (s *MinioImageStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("erro ao verificar bucket: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("erro ao criar bucket: %w", err)
	}
	return nil
}

func (s *MinioImageStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.Error().Err(err).Str("object", objectName).Msg("Erro ao enviar imagem")
		return "", appErrors.ErrInternalServer.WithError(err)
	}

	return s.objectURL(objectName), nil
}

func (s *MinioImageStorage) Delete(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		logger.Error().Err(err).Str("object", objectName).Msg("Erro ao remover imagem")
		return appErrors.ErrInternalServer.WithError(err)
	}
	return nil
}

func (s *MinioImageStorage) objectURL(objectName string) string {
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName)
	}
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectName)
}
