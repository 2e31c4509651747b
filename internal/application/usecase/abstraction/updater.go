package abstraction

import (
	"context"

	"diary/internal/domain/dto"
	"diary/internal/domain/model"
)

type Updater interface {
	Update(ctx context.Context, uid, id string, req dto.UpdateDiary) (*model.Diary, error)
}
