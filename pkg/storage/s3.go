package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/JaimeStill/blueprint/pkg/lifecycle"
)

type s3 struct {
	client *minio.Client
	bucket string
	region string
	logger *slog.Logger
}

func newS3(cfg *Config, logger *slog.Logger) (*s3, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &s3{
		client: client,
		bucket: cfg.ContainerName,
		region: cfg.Region,
		logger: logger,
	}, nil
}

func (s *s3) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting storage system")

	lc.OnStartup(func() {
		ctx := lc.Context()

		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.logger.Error("storage bucket check failed", "error", err)
			return
		}
		if !exists {
			if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
				s.logger.Error("storage bucket initialization failed", "error", err)
				return
			}
		}

		s.logger.Info("storage bucket ready", "bucket", s.bucket)
	})

	return nil
}

func (s *s3) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload object %s: %w", key, err)
	}

	return nil
}

func (s *s3) Download(ctx context.Context, key string) (*BlobResult, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.mapError("download", key, err)
	}

	// GetObject is lazy; Stat surfaces a missing key before the body is read.
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, s.mapError("download", key, err)
	}

	return &BlobResult{BlobMeta: toMeta(info), Body: obj}, nil
}

func (s *s3) Find(ctx context.Context, key string) (*BlobMeta, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, s.mapError("stat", key, err)
	}

	meta := toMeta(info)
	return &meta, nil
}

func (s *s3) List(ctx context.Context, prefix, marker string, maxResults int32) (*BlobList, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:     prefix,
		StartAfter: marker,
		Recursive:  true,
		MaxKeys:    int(maxResults),
	})

	result := &BlobList{Blobs: []BlobMeta{}}
	for obj := range objects {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		if int32(len(result.Blobs)) == maxResults {
			result.NextMarker = result.Blobs[len(result.Blobs)-1].Key
			break
		}
		result.Blobs = append(result.Blobs, toMeta(obj))
	}

	return result, nil
}

func (s *s3) Delete(ctx context.Context, key string) error {
	if _, err := s.Find(ctx, key); err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	return nil
}

func (s *s3) Exists(ctx context.Context, key string) (bool, error) {
	if _, err := s.Find(ctx, key); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *s3) mapError(op, key string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return ErrNotFound
	}
	return fmt.Errorf("%s object %s: %w", op, key, err)
}

func toMeta(info minio.ObjectInfo) BlobMeta {
	return BlobMeta{
		Key:           info.Key,
		ContentType:   info.ContentType,
		ContentLength: info.Size,
		LastModified:  info.LastModified,
	}
}
