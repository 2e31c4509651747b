package usecase

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"diary/internal/domain/dto"
	"diary/internal/domain/entity"
	"diary/internal/domain/model"
	"diary/internal/domain/repository/broker"
)

type mockWriter struct{ mock.Mock }

func (m *mockWriter) Write(ctx context.Context, diary *model.Diary) error {
	return m.Called(ctx, diary).Error(0)
}

type mockRetriever struct{ mock.Mock }

func (m *mockRetriever) GetByID(ctx context.Context, id string) (*model.Diary, error) {
	args := m.Called(ctx, id)
	diary, _ := args.Get(0).(*model.Diary)

	return diary, args.Error(1)
}

type mockLister struct{ mock.Mock }

func (m *mockLister) GetByOwner(ctx context.Context, ownerID string) ([]model.Diary, error) {
	args := m.Called(ctx, ownerID)
	diaries, _ := args.Get(0).([]model.Diary)

	return diaries, args.Error(1)
}

func (m *mockLister) GetPublic(ctx context.Context) ([]model.Diary, error) {
	args := m.Called(ctx)
	diaries, _ := args.Get(0).([]model.Diary)

	return diaries, args.Error(1)
}

type mockUpdater struct{ mock.Mock }

func (m *mockUpdater) Update(ctx context.Context, id string, patch dto.DiaryPatch) (*model.Diary, error) {
	args := m.Called(ctx, id, patch)
	diary, _ := args.Get(0).(*model.Diary)

	return diary, args.Error(1)
}

func (m *mockUpdater) SetAnalysis(ctx context.Context, id, imageURL string, analysis model.Analysis) error {
	return m.Called(ctx, id, imageURL, analysis).Error(0)
}

type mockDBRemover struct{ mock.Mock }

func (m *mockDBRemover) RemoveByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockUploader struct{ mock.Mock }

func (m *mockUploader) UploadFile(ctx context.Context, owner string, file *dto.Upload) (entity.UploadResult, error) {
	args := m.Called(ctx, owner, file)

	return args.Get(0).(entity.UploadResult), args.Error(1)
}

type mockBlobRemover struct{ mock.Mock }

func (m *mockBlobRemover) Remove(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

type mockBlobReader struct{ mock.Mock }

func (m *mockBlobReader) Open(ctx context.Context, name string) (io.ReadCloser, entity.BlobInfo, error) {
	args := m.Called(ctx, name)
	body, _ := args.Get(0).(io.ReadCloser)

	return body, args.Get(1).(entity.BlobInfo), args.Error(2)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, request dto.AnalysisRequest) error {
	return m.Called(ctx, request).Error(0)
}

type mockReceiver struct{ mock.Mock }

func (m *mockReceiver) Messages(ctx context.Context, consumer string) (<-chan broker.Message, error) {
	args := m.Called(ctx, consumer)
	ch, _ := args.Get(0).(<-chan broker.Message)

	return ch, args.Error(1)
}

type stubMessage struct {
	id    string
	body  string
	acked bool
}

func (s *stubMessage) ID() string   { return s.id }
func (s *stubMessage) Body() string { return s.body }

func (s *stubMessage) Ack() error {
	s.acked = true

	return nil
}
