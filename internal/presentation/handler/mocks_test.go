package handler

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"diary/internal/domain/dto"
	"diary/internal/domain/entity"
	"diary/internal/domain/model"
)

type mockCreator struct{ mock.Mock }

func (m *mockCreator) Create(ctx context.Context, uid string, req dto.CreateDiary) (*model.Diary, error) {
	args := m.Called(ctx, uid, req)
	diary, _ := args.Get(0).(*model.Diary)

	return diary, args.Error(1)
}

type mockUpdater struct{ mock.Mock }

func (m *mockUpdater) Update(ctx context.Context, uid, id string, req dto.UpdateDiary) (*model.Diary, error) {
	args := m.Called(ctx, uid, id, req)
	diary, _ := args.Get(0).(*model.Diary)

	return diary, args.Error(1)
}

type mockGetter struct{ mock.Mock }

func (m *mockGetter) GetOwned(ctx context.Context, uid, id string) (*model.Diary, error) {
	args := m.Called(ctx, uid, id)
	diary, _ := args.Get(0).(*model.Diary)

	return diary, args.Error(1)
}

type mockDeleter struct{ mock.Mock }

func (m *mockDeleter) Delete(ctx context.Context, uid, id string) error {
	return m.Called(ctx, uid, id).Error(0)
}

type mockBlobGetter struct{ mock.Mock }

func (m *mockBlobGetter) GetBlob(ctx context.Context, name string) (io.ReadCloser, entity.BlobInfo, error) {
	args := m.Called(ctx, name)
	body, _ := args.Get(0).(io.ReadCloser)

	return body, args.Get(1).(entity.BlobInfo), args.Error(2)
}
