package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dezh-tech/immortal/pkg/logger"

	"diary/internal/domain/apperr"
	"diary/internal/domain/dto"
	"diary/internal/domain/model"
	"diary/internal/domain/repository/broker"
	"diary/internal/domain/repository/database"
)

// requestAnalysis hands a freshly stored image to the analysis worker. The diary
// is already committed, so a failure here is only logged.
func requestAnalysis(ctx context.Context, publisher broker.Publisher, diary *model.Diary) {
	if publisher == nil || diary.ImageURL == "" {
		return
	}

	err := publisher.Publish(ctx, dto.AnalysisRequest{
		DiaryID:  diary.ID.Hex(),
		ImageURL: diary.ImageURL,
	})
	if err != nil {
		logger.Error("failed to publish analysis request", "diary", diary.ID.Hex(), "err", err)
	}
}

// AnalysisApplier writes analysis results coming back from the worker.
type AnalysisApplier struct {
	updater database.Updater
}

func NewAnalysisApplier(updater database.Updater) *AnalysisApplier {
	return &AnalysisApplier{
		updater: updater,
	}
}

func (a *AnalysisApplier) Apply(ctx context.Context, result dto.AnalysisResult) error {
	if result.DiaryID == "" {
		return apperr.Validation("diaryId is required")
	}
	if result.ImageURL == "" {
		return apperr.Validation("imageUrl is required")
	}

	err := a.updater.SetAnalysis(ctx, result.DiaryID, result.ImageURL, model.Analysis{
		Species: result.Species,
		Action:  result.Action,
	})
	if err != nil {
		return storeError("failed to store analysis", err)
	}

	return nil
}

// Consume applies results from receiver until ctx is done. Messages are acked once
// applied or once they can never be applied, including results for an image the
// diary no longer shows. A store outage leaves them pending for the receiver to
// replay on its next start.
func (a *AnalysisApplier) Consume(ctx context.Context, receiver broker.Receiver, consumer string) error {
	messages, err := receiver.Messages(ctx, consumer)
	if err != nil {
		return err
	}

	for msg := range messages {
		a.handle(ctx, msg)
	}

	return nil
}

func (a *AnalysisApplier) handle(ctx context.Context, msg broker.Message) {
	var result dto.AnalysisResult
	if err := json.Unmarshal([]byte(msg.Body()), &result); err != nil {
		logger.Error("dropping malformed analysis result", "id", msg.ID(), "err", err)
		ack(msg)

		return
	}

	err := a.Apply(ctx, result)
	if err != nil && apperr.KindOf(err) == apperr.KindUnavailable {
		logger.Error("failed to apply analysis result", "id", msg.ID(), "diary", result.DiaryID, "err", err)

		return
	}
	if err != nil {
		logger.Warn("dropping analysis result", "id", msg.ID(), "diary", result.DiaryID, "reason",
			apperr.Reason(err))
	}

	ack(msg)
}

func ack(msg broker.Message) {
	if err := msg.Ack(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("failed to ack message", "id", msg.ID(), "err", err)
	}
}
