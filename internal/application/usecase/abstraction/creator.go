package abstraction

import (
	"context"

	"diary/internal/domain/dto"
	"diary/internal/domain/model"
)

type Creator interface {
	Create(ctx context.Context, uid string, req dto.CreateDiary) (*model.Diary, error)
}
