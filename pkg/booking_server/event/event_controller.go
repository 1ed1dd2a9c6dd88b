// Package event records booking lifecycle events and delivers them to the
// configured callback endpoint.
package event

import (
	"context"
	"encoding/json"
	"fmt"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/google/uuid"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// EventController records shipment events. EmitBookingEvent runs inside the
// caller's transaction so that a booking change and its event are committed
// or rolled back together.
type EventController interface {
	EmitBookingEvent(ctx context.Context, tx storage.Tx, ts int64, booking model.Booking, reason string) (model.ShipmentEvent, error)
	ListShipmentEvents(ctx context.Context, req storage.ListEventsRequest) (storage.ListEventsResult, error)
}

type _EventController struct {
	storage   storage.EventStorage
	emitCount metric.Int64Counter
}

func NewEventController(eventStorage storage.EventStorage) EventController {
	return &_EventController{
		storage:   eventStorage,
		emitCount: otlp_util.NewInt64Counter("booking.event.emit.count", metric.WithDescription("The total number of shipment events emitted")),
	}
}

func (c *_EventController) EmitBookingEvent(ctx context.Context, tx storage.Tx, ts int64, booking model.Booking, reason string) (model.ShipmentEvent, error) {
	now := model.NewDateTimeFromUnix(ts)
	evt := model.ShipmentEvent{
		ID:                   uuid.NewString(),
		EventType:            booking.DocumentStatus,
		DocumentTypeCode:     model.DocumentTypeBookingRequest,
		EventClassifierCode:  model.EventClassifierActual,
		DocumentReference:    booking.CarrierBookingRequestReference,
		EventDateTime:        booking.UpdatedDateTime,
		EventCreatedDateTime: now,
		Reason:               reason,
	}

	if err := c.storage.AddShipmentEvent(ctx, tx, evt); err != nil {
		return model.ShipmentEvent{}, fmt.Errorf("add shipment event: %s%w", err.Error(), model.ErrEventCreationFailed)
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return model.ShipmentEvent{}, fmt.Errorf("marshal shipment event: %s%w", err.Error(), model.ErrEventCreationFailed)
	}
	if err := c.storage.AddShipmentEventOutbox(ctx, tx, ts, evt.ID, payload); err != nil {
		return model.ShipmentEvent{}, fmt.Errorf("add shipment event outbox: %s%w", err.Error(), model.ErrEventCreationFailed)
	}

	c.emitCount.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", string(evt.EventType))))
	return evt, nil
}

func (c *_EventController) ListShipmentEvents(ctx context.Context, req storage.ListEventsRequest) (storage.ListEventsResult, error) {
	if err := ValidateListEventsRequest(req); err != nil {
		return storage.ListEventsResult{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListEventsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.ListShipmentEvents(ctx, tx, req)
}
