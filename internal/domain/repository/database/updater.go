package database

import (
	"context"

	"diary/internal/domain/dto"
	"diary/internal/domain/model"
)

type Updater interface {
	Update(ctx context.Context, id string, patch dto.DiaryPatch) (*model.Diary, error)
	// SetAnalysis only matches while the diary still points at imageURL.
	SetAnalysis(ctx context.Context, id, imageURL string, analysis model.Analysis) error
}
