package postgres

import (
	"context"
	"time"

	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	"github.com/samber/lo"
)

func (s *_Storage) AddShipmentEvent(ctx context.Context, tx storage.Tx, event model.ShipmentEvent) error {
	query := `
INSERT INTO shipment_event (id, event_type, document_type_code, event_classifier_code, document_reference, event_datetime, event_created_datetime, reason)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := tx.Exec(
		ctx,
		query,
		event.ID,
		event.EventType,
		event.DocumentTypeCode,
		event.EventClassifierCode,
		event.DocumentReference,
		event.EventDateTime.GetTime(),
		event.EventCreatedDateTime.GetTime(),
		event.Reason,
	)
	return err
}

func (s *_Storage) AddShipmentEventOutbox(ctx context.Context, tx storage.Tx, ts int64, key string, payload []byte) error {
	query := `INSERT INTO shipment_event_outbox (created_at, "key", msg) VALUES ($1, $2, $3)`
	_, err := tx.Exec(ctx, query, ts, key, payload)
	return err
}

func (s *_Storage) GetShipmentEventOutbox(ctx context.Context, tx storage.Tx, batchSize int) ([]storage.OutboxMsg, error) {
	query := `SELECT rec_id, "key", msg FROM shipment_event_outbox ORDER BY rec_id ASC LIMIT $1`
	rows, err := tx.Query(ctx, query, batchSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []storage.OutboxMsg
	for rows.Next() {
		msg := storage.OutboxMsg{}
		if err := rows.Scan(&msg.RecID, &msg.Key, &msg.Msg); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *_Storage) DeleteShipmentEventOutbox(ctx context.Context, tx storage.Tx, recIDs ...int64) error {
	if len(recIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `DELETE FROM shipment_event_outbox WHERE rec_id = ANY($1)`, recIDs)
	return err
}

func (s *_Storage) ListShipmentEvents(ctx context.Context, tx storage.Tx, req storage.ListEventsRequest) (storage.ListEventsResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		id,
		event_type,
		document_type_code,
		event_classifier_code,
		document_reference,
		event_datetime,
		event_created_datetime,
		reason
	FROM shipment_event
	WHERE ($3 = '' OR document_reference = $3) AND
		(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR event_type = ANY($4))
)
SELECT
	total,
	id,
	event_type,
	document_type_code,
	event_classifier_code,
	document_reference,
	event_datetime,
	event_created_datetime,
	reason
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (
	SELECT * FROM filtered_record ORDER BY event_created_datetime DESC OFFSET $1 LIMIT $2
) AS record ON FALSE
`
	eventTypes := lo.Map(req.EventTypes, func(s model.BookingStatus, _ int) string { return string(s) })
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.DocumentReference, eventTypes)
	if err != nil {
		return storage.ListEventsResult{}, err
	}
	defer rows.Close()

	result := storage.ListEventsResult{}
	for rows.Next() {
		var total *int
		var id *string
		var eventType *model.BookingStatus
		var documentTypeCode *model.DocumentTypeCode
		var classifierCode *model.EventClassifierCode
		var documentReference, reason *string
		var eventAt, createdAt *time.Time

		if err := rows.Scan(&total, &id, &eventType, &documentTypeCode, &classifierCode, &documentReference, &eventAt, &createdAt, &reason); err != nil {
			return storage.ListEventsResult{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if id != nil {
			result.Records = append(result.Records, model.ShipmentEvent{
				ID:                   *id,
				EventType:            *eventType,
				DocumentTypeCode:     *documentTypeCode,
				EventClassifierCode:  *classifierCode,
				DocumentReference:    *documentReference,
				EventDateTime:        model.NewDateTime(*eventAt),
				EventCreatedDateTime: model.NewDateTime(*createdAt),
				Reason:               *reason,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListEventsResult{}, err
	}
	return result, nil
}
