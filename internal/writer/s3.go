package writer

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "fxsynth/config"
	"fxsynth/logger"
)

// S3Sink uploads serialized fixtures to an S3 bucket.
type S3Sink struct {
	client *s3.Client
	cfg    appconfig.S3Config
	log    *logger.Log
}

// ParseS3URL splits an s3://bucket/key output target. The second return
// reports whether the target is an S3 URL at all.
func ParseS3URL(target string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(target, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, _ = strings.Cut(rest, "/")
	return bucket, key, true
}

// NewS3Sink builds an S3 client from the storage configuration, with
// static credentials when configured and the default chain otherwise.
func NewS3Sink(ctx context.Context, cfg appconfig.S3Config) (*S3Sink, error) {
	log := logger.GetLogger()

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	creds, err := awsCfg.Credentials.Retrieve(ctx)
	if err != nil || !creds.HasKeys() {
		return nil, fmt.Errorf("aws credentials not found")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})

	return &S3Sink{client: client, cfg: cfg, log: log}, nil
}

// Upload puts the fixture at key in the configured bucket, stamping the
// run metadata onto the object.
func (s *S3Sink) Upload(ctx context.Context, bucket, key string, data []byte, meta map[string]string) error {
	if bucket == "" {
		bucket = s.cfg.Bucket
	}
	log := s.log.WithComponent("s3_sink").WithFields(logger.Fields{
		"bucket":    bucket,
		"key":       key,
		"data_size": len(data),
	})
	log.Info("uploading fixture to S3")

	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/octet-stream"),
		Metadata:    meta,
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload to S3 bucket %s: %w", bucket, err)
	}

	log.Info("fixture uploaded")
	return nil
}
