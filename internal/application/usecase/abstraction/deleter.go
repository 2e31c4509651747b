package abstraction

import "context"

// Deleter defines the interface for deleting a diary and its image.
type Deleter interface {
	Delete(ctx context.Context, uid, id string) error
}
