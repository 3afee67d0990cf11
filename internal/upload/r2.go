// Package upload ships solved-run artifacts (the source screenshot
// plus a text summary of the matrix/conditions/solution) to whichever
// cloud destination the user configured. Neither destination is
// required; Run (internal/run) calls these only when CloudConfig says
// to.
package upload

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/corvid-tools/breachcore/internal/config"
	"github.com/corvid-tools/breachcore/internal/credstore"
)

const (
	r2AccessKeyIDSecret     = "r2-access-key-id"
	r2SecretAccessKeySecret = "r2-secret-access-key"
)

// R2 uploads data to the configured Cloudflare R2 bucket under key
// and returns its public URL.
func R2(ctx context.Context, cfg config.R2Config, key string, data []byte) (string, error) {
	if cfg.AccountID == "" || cfg.Bucket == "" {
		return "", fmt.Errorf("upload: R2 is not configured")
	}

	accessKeyID, ok, err := credstore.Get(r2AccessKeyIDSecret)
	if err != nil {
		return "", fmt.Errorf("upload: read R2 access key: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("upload: no R2 access key stored")
	}
	secretAccessKey, ok, err := credstore.Get(r2SecretAccessKeySecret)
	if err != nil {
		return "", fmt.Errorf("upload: read R2 secret key: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("upload: no R2 secret key stored")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
	)
	if err != nil {
		return "", fmt.Errorf("upload: load AWS config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(cfg.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("upload: put object %s: %w", key, err)
	}

	if cfg.PublicURL != "" {
		return fmt.Sprintf("%s/%s", cfg.PublicURL, key), nil
	}
	return fmt.Sprintf("%s/%s/%s", endpoint, cfg.Bucket, key), nil
}
