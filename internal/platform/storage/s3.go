// Copyright (c) 2026 Hailey Portfolio. All rights reserved.

package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store implements [ObjectStore] against any S3-compatible endpoint.
type S3Store struct {
	client *s3.Client
	bucket string
	region string

	// publicBaseURL overrides the default virtual-hosted AWS URL scheme,
	// for R2 custom domains or MinIO deployments.
	publicBaseURL string
}

// S3Config holds configuration for [S3Store].
type S3Config struct {
	Bucket string
	Region string
	// Endpoint is an optional custom endpoint (for R2, MinIO, LocalStack, etc.)
	Endpoint string
	// PublicBaseURL is the base under which stored keys are publicly served.
	// When empty, the standard AWS virtual-hosted URL is derived.
	PublicBaseURL string
}

// NewS3Store creates a new S3-backed object store.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load AWS config: %w", err)
	}

	clientOpts := func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO/LocalStack
		}
	}

	return &S3Store{
		client:        s3.NewFromConfig(awsCfg, clientOpts),
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Put uploads data under key and returns the public URL.
func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: upload of %q failed: %w", key, err)
	}

	return s.publicURL(key), nil
}

// Delete removes the blob at key.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete of %q failed: %w", key, err)
	}
	return nil
}

// publicURL derives the URL a stored key is served from.
func (s *S3Store) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
