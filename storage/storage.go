// Package storage is the object storage collaborator: byte payloads filed
// under a key, addressable later through a public URL. Writes overwrite any
// prior object at the same key.
package storage

import (
	"context"
	"io"
)

type Store interface {
	// Put writes the payload at key with the given content type and returns
	// a publicly resolvable URL for it. Writing to an existing key replaces
	// the old object.
	Put(ctx context.Context, key, contentType string, payload io.Reader) (string, error)
}
