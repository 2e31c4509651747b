package minio

import "context"

// Remover deletes a blob by the URL it was published under. A missing object is
// not an error.
type Remover interface {
	Remove(ctx context.Context, url string) error
}
