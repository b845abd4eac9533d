package assets

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStaticResolver(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, "/ai-bg-rain.png", NewStaticResolver("").URL(ctx, "/ai-bg-rain.png"))
	require.Equal(t, "https://cdn.example.com/ai-bg-rain.png", NewStaticResolver("https://cdn.example.com/").URL(ctx, "/ai-bg-rain.png"))
}

func TestBucketResolverPresigns(t *testing.T) {
	resolver, err := NewBucketResolver(BucketConfig{
		Endpoint:  "https://account.r2.cloudflarestorage.com",
		AccessKey: "AKIA",
		SecretKey: "secret",
		Bucket:    "backgrounds",
		Region:    "auto",
		Prefix:    "/themes/",
		URLTTL:    10 * time.Minute,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	got := resolver.URL(context.Background(), "/ai-bg-snow-night.png")
	require.True(t, strings.HasPrefix(got, "https://account.r2.cloudflarestorage.com/backgrounds/themes/ai-bg-snow-night.png?"), got)
	require.Contains(t, got, "X-Amz-Signature=")
	require.Contains(t, got, "X-Amz-Expires=600")
}

func TestBucketResolverRequiresBucket(t *testing.T) {
	_, err := NewBucketResolver(BucketConfig{Endpoint: "localhost:9000"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestSanitizeEndpoint(t *testing.T) {
	require.Equal(t, "localhost:9000", sanitizeEndpoint("http://localhost:9000/bucket"))
	require.Equal(t, "s3.amazonaws.com", sanitizeEndpoint(" https://s3.amazonaws.com "))
}
