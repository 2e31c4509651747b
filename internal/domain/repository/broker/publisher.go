package broker

import (
	"context"

	"diary/internal/domain/dto"
)

// Publisher hands a stored image over to the analysis worker.
type Publisher interface {
	Publish(ctx context.Context, request dto.AnalysisRequest) error
}
