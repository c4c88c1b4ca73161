package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"storefront-service/src/pkg/log"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/viper"
)

// ObjectStorage uploads dish images to an S3-compatible bucket and
// hands back the public URL persisted on the dish row.
type ObjectStorage struct {
	Client    *minio.Client
	Bucket    string
	PublicURL string
	Log       log.Log
}

func NewObjectStorage(v *viper.Viper, logger log.Log) (*ObjectStorage, error) {
	client, err := minio.New(v.GetString("storage.endpoint"), &minio.Options{
		Creds:  credentials.NewStaticV4(v.GetString("storage.access_key"), v.GetString("storage.secret_key"), ""),
		Secure: v.GetBool("storage.use_ssl"),
	})
	if err != nil {
		return nil, err
	}

	return &ObjectStorage{
		Client:    client,
		Bucket:    v.GetString("storage.bucket"),
		PublicURL: v.GetString("storage.public_url"),
		Log:       logger,
	}, nil
}

func (s *ObjectStorage) UploadDishImage(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	objectName := fmt.Sprintf("dishes/%s%s", uuid.NewString(), path.Ext(fileName))

	_, err := s.Client.PutObject(ctx, s.Bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.Log.Error("storage", fmt.Sprintf("Failed to upload object: %v", err), "UploadDishImage", objectName)
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", s.PublicURL, s.Bucket, objectName), nil
}
