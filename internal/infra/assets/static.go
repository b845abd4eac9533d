package assets

import (
	"context"
	"strings"
)

// StaticResolver prefixes keys with a base URL, e.g. a CDN origin. An empty
// base leaves keys untouched so they resolve against the serving host.
type StaticResolver struct {
	baseURL string
}

// NewStaticResolver builds a prefix resolver.
func NewStaticResolver(baseURL string) *StaticResolver {
	return &StaticResolver{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// URL implements conversation.AssetResolver.
func (r *StaticResolver) URL(_ context.Context, key string) string {
	if r.baseURL == "" {
		return key
	}
	return r.baseURL + "/" + strings.TrimLeft(key, "/")
}
