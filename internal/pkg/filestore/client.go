package filestore

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

// Client wraps the S3 client for hosted product images. Uploaded objects get
// a stable public URL which is what the catalog stores in Product.ImageURL.
type Client struct {
	s3Client *s3.Client
	config   *Config
}

// NewClient creates a new file store client
func NewClient(cfg *Config) (*Client, error) {
	if !cfg.IsEnabled() {
		return nil, fmt.Errorf("file store is not configured")
	}

	// Create AWS config
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Create S3 client
	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			// S3-compatible stores (MinIO, B2) need path-style URLs
			o.UsePathStyle = true
			o.UseAccelerate = false
		}
	})

	client := &Client{
		s3Client: s3Client,
		config:   cfg,
	}

	log.Infof("[FileStore] Initialized S3 client for bucket: %s", cfg.GetBucketName())
	return client, nil
}

// StoredObject describes a successfully uploaded object.
type StoredObject struct {
	BucketName  string
	ObjectKey   string
	Size        int64
	ContentType string
	URL         string
}

// Upload stores an object and returns its stable public URL.
func (c *Client) Upload(ctx context.Context, objectKey string, body io.Reader, size int64, contentType string) (*StoredObject, error) {
	bucketName := c.config.GetBucketName()

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(objectKey),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	result := &StoredObject{
		BucketName:  bucketName,
		ObjectKey:   objectKey,
		Size:        size,
		ContentType: contentType,
		URL:         c.PublicURL(objectKey),
	}

	log.Infof("[FileStore] Successfully uploaded: s3://%s/%s", bucketName, objectKey)
	return result, nil
}

// Delete removes an object from the bucket.
func (c *Client) Delete(ctx context.Context, objectKey string) error {
	bucketName := c.config.GetBucketName()

	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from S3: %w", err)
	}

	log.Infof("[FileStore] Successfully deleted: s3://%s/%s", bucketName, objectKey)
	return nil
}

// PublicURL builds the stable URL for an object key.
func (c *Client) PublicURL(objectKey string) string {
	if c.config.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", c.config.PublicBaseURL, objectKey)
	}
	if c.config.EndpointURL != "" {
		return fmt.Sprintf("%s/%s/%s", c.config.EndpointURL, c.config.GetBucketName(), objectKey)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.config.GetBucketName(), c.config.Region, objectKey)
}
