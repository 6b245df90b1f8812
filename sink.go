package main

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Sink stores downloaded content and reports where it went
type Sink interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type dirSink struct {
	baseDir string
}

func newDirSink(baseDir string) *dirSink {
	return &dirSink{baseDir: baseDir}
}

func (d *dirSink) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	localPath, err := resolveLocalPath(key, d.baseDir)
	if err != nil {
		return "", err
	}
	if err := saveFile(localPath, bytes.NewReader(data)); err != nil {
		return "", err
	}
	return localPath, nil
}

type objectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type s3Sink struct {
	uploader objectUploader
	bucket   string
	prefix   string
}

func newS3Sink(ctx context.Context, cfg *Config) (*s3Sink, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     cfg.S3AccessKey,
				SecretAccessKey: cfg.S3SecretKey,
			},
		}))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.S3Endpoint != "" {
		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsConfig)
	}

	return &s3Sink{
		uploader: manager.NewUploader(client),
		bucket:   cfg.S3Bucket,
		prefix:   cfg.S3Prefix,
	}, nil
}

func (s *s3Sink) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	objectKey := strings.TrimPrefix(path.Join(s.prefix, key), "/")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return "s3://" + s.bucket + "/" + objectKey, nil
}
