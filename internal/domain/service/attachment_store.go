package service

import (
	"context"
	"io"
)

// AttachmentStore is the object storage collaborator for lead attachments.
// Keys are path-addressed; listing is by prefix.
type AttachmentStore interface {
	// Put writes one blob under the given key.
	Put(ctx context.Context, key string, body io.Reader, contentType string) error

	// ResolveURL returns a retrievable (time-limited) URL for a stored key.
	ResolveURL(ctx context.Context, key string) (string, error)

	// ListKeys enumerates stored keys under a prefix. Object sizes are not
	// surfaced; entries recovered this way report size as unknown.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
