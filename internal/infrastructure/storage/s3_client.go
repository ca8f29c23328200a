package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"

	"github.com/talentforge/jobboard-service/internal/config"
)

// S3Client stores uploaded binaries (resumes, company logos) in an
// S3-compatible bucket and returns stable public URLs.
type S3Client struct {
	uploader *s3manager.Uploader
	bucket   string
	baseURL  string
}

// NewS3Client builds an S3 client from the storage configuration.
func NewS3Client(cfg config.StorageConfig) (*S3Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &S3Client{
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
		baseURL:  cfg.BaseURL,
	}, nil
}

// Upload stores data under a generated key inside the given prefix and
// returns its URL. ext must include the leading dot.
func (c *S3Client) Upload(ctx context.Context, prefix, ext string, data []byte, contentType string) (string, error) {
	key := path.Join(prefix, uuid.NewString()+ext)

	_, err := c.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return fmt.Sprintf("%s/%s", c.baseURL, key), nil
}
