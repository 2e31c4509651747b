package broker

import "context"

// Receiver streams analysis results, starting with entries this consumer left
// unacknowledged earlier. The channel is closed when ctx is done.
type Receiver interface {
	Messages(ctx context.Context, consumer string) (<-chan Message, error)
}
