package assets

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultPresignTTL = time.Hour

// BucketConfig locates background images in an S3-compatible bucket (R2, MinIO, S3).
type BucketConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Prefix    string
	URLTTL    time.Duration
}

// BucketResolver hands out presigned GET URLs. It never checks that the
// object exists; a missing image is a rendering problem.
type BucketResolver struct {
	client   *minio.Client
	bucket   string
	prefix   string
	ttl      time.Duration
	fallback *StaticResolver
	logger   *slog.Logger
}

// NewBucketResolver constructs the resolver. Signing is local because the
// region is fixed up front.
func NewBucketResolver(cfg BucketConfig, logger *slog.Logger) (*BucketResolver, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("assets bucket name cannot be empty")
	}
	region := cfg.Region
	if region == "" {
		region = "auto"
	}
	client, err := minio.New(sanitizeEndpoint(cfg.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       !strings.HasPrefix(strings.ToLower(strings.TrimSpace(cfg.Endpoint)), "http://"),
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init assets bucket client: %w", err)
	}
	ttl := cfg.URLTTL
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}
	return &BucketResolver{
		client:   client,
		bucket:   cfg.Bucket,
		prefix:   strings.Trim(cfg.Prefix, "/"),
		ttl:      ttl,
		fallback: NewStaticResolver(""),
		logger:   logger.With("component", "assets.bucket"),
	}, nil
}

// URL implements conversation.AssetResolver. Signing failures degrade to the bare key.
func (r *BucketResolver) URL(ctx context.Context, key string) string {
	object := r.objectName(key)
	signed, err := r.client.PresignedGetObject(ctx, r.bucket, object, r.ttl, url.Values{})
	if err != nil {
		r.logger.Warn("presign background failed", "object", object, "error", err)
		return r.fallback.URL(ctx, key)
	}
	return signed.String()
}

func (r *BucketResolver) objectName(key string) string {
	name := strings.TrimLeft(key, "/")
	if r.prefix == "" {
		return name
	}
	return r.prefix + "/" + name
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if idx := strings.Index(raw, "/"); idx >= 0 {
		raw = raw[:idx]
	}
	return raw
}
