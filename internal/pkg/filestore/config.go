package filestore

import (
	"strings"

	"github.com/ManuelReschke/PixelMart/internal/pkg/env"
)

// Config holds the S3 connection settings for hosted product images.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	Bucket          string
	PublicBaseURL   string
}

// NewConfigFromEnv reads the file store configuration from the environment.
func NewConfigFromEnv() *Config {
	return &Config{
		Region:          env.GetEnv("S3_REGION", "us-east-1"),
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		Bucket:          env.GetEnv("S3_BUCKET_NAME", "pixelmart-images"),
		PublicBaseURL:   strings.TrimRight(env.GetEnv("S3_PUBLIC_BASE_URL", ""), "/"),
	}
}

// IsEnabled reports whether credentials are configured.
func (c *Config) IsEnabled() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// GetBucketName returns the configured bucket name.
func (c *Config) GetBucketName() string {
	return c.Bucket
}
