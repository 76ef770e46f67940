package app

import (
	"context"
	"fmt"
	"strconv"

	"go-employees/internal/bootstrap"
	"go-employees/internal/config"
	"go-employees/internal/events"
	"go-employees/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const auditConsumerGroup = "go-employees-audit"

// RunConsumer writes every employee lifecycle event to the audit log.
func RunConsumer(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        auditConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)
	consumer.ConsumeEmployeeLifecycle(ctx, reader, auditLifecycle(auditLogger), log)

	log.Info("consumer shutting down")
	return nil
}

func auditLifecycle(auditLogger bootstrap.AuditLogger) consumer.LifecycleHandler {
	return func(ctx context.Context, event events.EmployeeLifecycleEvent) error {
		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  event.EventType,
			Message: "employee " + event.NIP,
			Meta: map[string]any{
				"employee_id": strconv.FormatUint(uint64(event.EmployeeID), 10),
				"request_id":  event.RequestID,
				"occurred_at": event.OccurredAt,
			},
		})
		return nil
	}
}
