package dsdoc

import "context"

// StoryIndexService retrieves and decodes a site's story index document.
type StoryIndexService interface {
	// FetchIndex fetches <base>/index.json for a normalized base URL.
	// It returns an ENOTFOUND error on a non-2xx response and an EINVALID
	// error when the body is not a recognizable story index. No retry at
	// this layer; retries belong to the caller.
	FetchIndex(ctx context.Context, baseURL string) (*StoryIndex, error)
}
