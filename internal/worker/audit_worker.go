package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/scaffold-rental-service/internal/events"
)

var auditedEvents = []events.EventType{
	events.EventCustomerCreated,
	events.EventCustomerUpdated,
	events.EventCustomerSoftDeleted,
	events.EventEmployeeCreated,
	events.EventEmployeeUpdated,
	events.EventEmployeeDeleted,
	events.EventEmployeeRoleChanged,
	events.EventEmployeePasswordChanged,
}

// StartAuditWorker subscribes a structured-log audit trail to every
// record-change event the services publish.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	audit := logger.Named("audit")
	for _, eventType := range auditedEvents {
		dispatcher.Subscribe(eventType, func(_ context.Context, event events.Event) error {
			audit.Info("record changed",
				zap.String("event_id", event.ID),
				zap.String("event_type", string(event.Type)),
				zap.Int64("entity_id", event.EntityID),
				zap.Time("at", event.Timestamp),
				zap.Any("payload", event.Payload),
			)
			return nil
		})
	}
}
