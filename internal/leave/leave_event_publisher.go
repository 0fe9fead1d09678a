package leave

import (
	"context"
	"encoding/json"

	"go-hrm/internal/events"

	"github.com/segmentio/kafka-go"
)

type EventPublisher interface {
	PublishLeaveEvent(ctx context.Context, event events.LeaveLifecycleEvent) error
}

type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishLeaveEvent(context.Context, events.LeaveLifecycleEvent) error {
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaEventPublisher struct {
	writer messageWriter
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

// PublishLeaveEvent keys by employee so one employee's events stay ordered
// within a partition.
func (p *kafkaEventPublisher) PublishLeaveEvent(ctx context.Context, event events.LeaveLifecycleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.LeaveLifecycleTopic,
		Key:   []byte(event.EmployeeID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
