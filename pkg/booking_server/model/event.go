package model

type EventClassifierCode string
type DocumentTypeCode string

const (
	EventClassifierActual EventClassifierCode = "ACT"

	DocumentTypeBookingRequest DocumentTypeCode = "CBR"
)

// ShipmentEvent records one lifecycle status change of a booking. Exactly one
// event is emitted per status changing operation, inside the same unit of
// work as the change itself.
type ShipmentEvent struct {
	ID                   string              `json:"event_id"`
	EventType            BookingStatus       `json:"shipment_event_type_code"` // Equal to the booking status after the change.
	DocumentTypeCode     DocumentTypeCode    `json:"document_type_code"`
	EventClassifierCode  EventClassifierCode `json:"event_classifier_code"`
	DocumentReference    string              `json:"document_id"` // The booking's carrier booking request reference.
	EventDateTime        DateTime            `json:"event_datetime"`
	EventCreatedDateTime DateTime            `json:"event_created_datetime"`
	Reason               string              `json:"reason,omitempty"` // Optional free text, set on cancellation.
}
