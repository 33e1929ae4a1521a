package facility

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/facility-finder/internal/domain"
	"github.com/facility-finder/internal/domain/repository"
	"github.com/facility-finder/internal/pkg/errors"
	"github.com/facility-finder/internal/pkg/metrics"
	"github.com/facility-finder/internal/worker"
)

const (
	defaultBatchSize = 20
	errorPause       = time.Second
	emptyQueuePause  = 100 * time.Millisecond
)

// Результаты обработки сообщения для метрик
const (
	resultOK      = "ok"
	resultFailed  = "failed"
	resultInvalid = "invalid"
)

var _ worker.Worker = (*SearchWorker)(nil)

// FacilitySearcher - параметризованный поиск мест
type FacilitySearcher interface {
	SearchFacilities(ctx context.Context, qc domain.QueryContext) ([]domain.Facility, error)
}

// SearchWorker обрабатывает события stream:facility:search и публикует
// результаты в stream:facility:done
type SearchWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	searcher   FacilitySearcher
	batchSize  int
}

// NewSearchWorker создает новый SearchWorker
func NewSearchWorker(
	streamRepo repository.StreamRepository,
	searcher FacilitySearcher,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *SearchWorker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &SearchWorker{
		BaseWorker: worker.NewBaseWorker("facility-search", consumerGroup, logger),
		streamRepo: streamRepo,
		searcher:   searcher,
		batchSize:  batchSize,
	}
}

// Start запускает воркер и блокируется до Stop или отмены ctx
func (w *SearchWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting SearchWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamFacilitySearch, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.ProcessBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.pause(ctx, errorPause)
			continue
		}

		if processed == 0 {
			w.pause(ctx, emptyQueuePause)
		}
	}
}

// ProcessBatch читает одну пачку сообщений, выполняет поиск по каждому событию,
// публикует результаты и подтверждает все прочитанные сообщения, включая битые.
// Возвращает количество прочитанных сообщений.
func (w *SearchWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamFacilitySearch,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	messageIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		messageIDs = append(messageIDs, msg.ID)

		event, err := parseMessage(msg)
		if err != nil {
			// битое сообщение подтверждается, чтобы не застревало в pending
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			metrics.WorkerMessages.WithLabelValues(resultInvalid).Inc()
			continue
		}

		done := w.search(ctx, event)
		if err := w.streamRepo.PublishToStream(ctx, domain.StreamFacilityDone, done); err != nil {
			logger.Error("Failed to publish done event",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
		}
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamFacilitySearch, w.ConsumerGroup(), messageIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	return len(messages), nil
}

func (w *SearchWorker) search(ctx context.Context, event *domain.FacilitySearchEvent) domain.FacilityDoneEvent {
	done := domain.FacilityDoneEvent{
		RequestID:  event.RequestID,
		Facilities: []domain.Facility{},
	}

	facilities, err := w.searcher.SearchFacilities(ctx, event.QueryContext())
	if err != nil {
		w.Logger().Warn("Facility search failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		metrics.WorkerMessages.WithLabelValues(resultFailed).Inc()

		done.Error = err.Error()
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			done.Error = appErr.Message
			done.ErrorCode = appErr.Code
		}
		return done
	}

	metrics.WorkerMessages.WithLabelValues(resultOK).Inc()
	if facilities != nil {
		done.Facilities = facilities
	}
	done.Total = len(done.Facilities)
	return done
}

func (w *SearchWorker) pause(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

func parseMessage(msg domain.StreamMessage) (*domain.FacilitySearchEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("empty message data")
	}

	var event domain.FacilitySearchEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.RequestID == uuid.Nil {
		return nil, fmt.Errorf("request_id is required")
	}

	return &event, nil
}
