package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"price_checker/internal/domain/entity"
	"price_checker/pkg/contextx"
	"price_checker/pkg/logx"
)

const (
	TaskRecordSearch = "history:record"
	QueueHistory     = "history"

	recordMaxRetry = 3
	recordTimeout  = 10 * time.Second
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals
	logger = contextx.LoggerFromContextOrDefault         //nolint:gochecknoglobals
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type HistoryRepository interface {
	Record(ctx context.Context, record entity.SearchRecord) error
}

// HistoryPublisher records searches by enqueueing them for HistoryHandler.
type HistoryPublisher struct {
	client enqueuer
}

func NewHistoryPublisher(client enqueuer) *HistoryPublisher {
	return &HistoryPublisher{client: client}
}

func (p *HistoryPublisher) Record(ctx context.Context, record entity.SearchRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	task := asynq.NewTask(TaskRecordSearch, payload)

	info, err := p.client.EnqueueContext(
		ctx,
		task,
		asynq.Queue(QueueHistory),
		asynq.MaxRetry(recordMaxRetry),
		asynq.Timeout(recordTimeout),
	)
	if err != nil {
		return fmt.Errorf("client.EnqueueContext: %w", err)
	}

	logger(ctx).Debug(
		"search record enqueued",
		slog.String(logx.FieldTaskType, TaskRecordSearch),
		slog.String("task-id", info.ID),
	)

	return nil
}

// HistoryHandler writes enqueued search records to the repository.
type HistoryHandler struct {
	repo HistoryRepository
}

func NewHistoryHandler(repo HistoryRepository) *HistoryHandler {
	return &HistoryHandler{repo: repo}
}

func (h *HistoryHandler) Handle(ctx context.Context, task *asynq.Task) error {
	var record entity.SearchRecord
	if err := json.Unmarshal(task.Payload(), &record); err != nil {
		logger(ctx).Error("json.Unmarshal", slog.String(logx.FieldTaskType, task.Type()), logx.Error(err))

		return fmt.Errorf("json.Unmarshal: %w: %w", err, asynq.SkipRetry)
	}

	if err := h.repo.Record(ctx, record); err != nil {
		return fmt.Errorf("repo.Record: %w", err)
	}

	return nil
}
