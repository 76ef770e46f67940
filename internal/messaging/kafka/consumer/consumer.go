package consumer

import (
	"context"
	"encoding/json"

	"go-employees/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type LifecycleHandler func(ctx context.Context, event events.EmployeeLifecycleEvent) error

// ConsumeEmployeeLifecycle runs until ctx is cancelled. Undecodable messages
// are committed and skipped; handler failures leave the offset uncommitted.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	handle LifecycleHandler,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee lifecycle event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := handle(ctx, event); err != nil {
			log.Error("handle employee lifecycle event failed",
				zap.String("event_type", event.EventType),
				zap.Uint("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Debug("employee lifecycle event handled",
			zap.String("event_type", event.EventType),
			zap.Uint("employee_id", event.EmployeeID),
			zap.String("request_id", event.RequestID),
		)
	}
}
