package storage

import (
	"context"
	"database/sql"

	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
)

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete. Not every database or database
	// driver may support this.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// PartyRec is the persisted shape of a party row. The nested contact
// details, identifying codes and address are stored separately.
type PartyRec struct {
	ID            string
	PartyName     string
	TaxReference1 string
	TaxReference2 string
	PublicKey     string
	AddressID     *string
}

// DocumentPartyRec is the persisted shape of a document party row.
type DocumentPartyRec struct {
	ID             string
	BookingID      string
	PartyID        string
	PartyFunction  string
	IsToBeNotified bool
}

// RequestedEquipmentRec is the persisted shape of a requested equipment row.
// Equipment references live in a join table keyed by ID.
type RequestedEquipmentRec struct {
	ID             string
	BookingID      string
	SizeType       string
	Units          int
	IsShipperOwned bool
}

// LocationRec is the persisted shape of a location row.
type LocationRec struct {
	ID             string
	LocationName   string
	UNLocationCode string
	Latitude       string
	Longitude      string
	AddressID      *string
}

// ShipmentLocationRec is the persisted shape of a shipment location row.
type ShipmentLocationRec struct {
	BookingID        string
	LocationID       string
	LocationTypeCode string
	DisplayedName    string
	EventDateTime    *model.DateTime
}

// ShipmentRec is the persisted shape of a shipment row.
type ShipmentRec struct {
	ID                      string
	BookingID               string
	CarrierBookingReference string
	TermsAndConditions      string
	ConfirmationDateTime    model.DateTime
}

// ShipmentTransportRec joins a shipment to one transport leg with its plan
// stage metadata.
type ShipmentTransportRec struct {
	TransportID                      string
	TransportPlanStage               string
	TransportPlanStageSequenceNumber int
	IsUnderShippersResponsibility    *bool
	TransportName                    string
	TransportReference               string
	LoadTransportCallID              string
	DischargeTransportCallID         string
}

// TransportCallRec is the persisted shape of a transport call row.
type TransportCallRec struct {
	ID              string
	LocationID      *string
	VesselID        *string
	ModeOfTransport string
	ImportVoyageID  *string
	ExportVoyageID  *string
}

// ListBookingsRequest is the request to list booking summaries.
type ListBookingsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	DocumentStatuses []model.BookingStatus `json:"document_statuses"`
}

// ListBookingsResult is the result of listing booking summaries.
type ListBookingsResult struct {
	Total   int                    `json:"total"`
	Records []model.BookingSummary `json:"records"`
}

// ListShipmentsRequest is the request to list shipment summaries.
type ListShipmentsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	DocumentStatuses []model.BookingStatus `json:"document_statuses"`
}

// ListShipmentsResult is the result of listing shipment summaries.
type ListShipmentsResult struct {
	Total   int                     `json:"total"`
	Records []model.ShipmentSummary `json:"records"`
}

// ListEventsRequest is the request to list shipment events.
type ListEventsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	DocumentReference string                `json:"document_reference"`
	EventTypes        []model.BookingStatus `json:"event_types"`
}

// ListEventsResult is the result of listing shipment events.
type ListEventsResult struct {
	Total   int                   `json:"total"`
	Records []model.ShipmentEvent `json:"records"`
}

type OutboxMsg struct {
	RecID int64
	Key   string
	Msg   []byte
}

// BookingStorage is the persistence surface of the booking aggregate. All
// Get operations return model.ErrBookingNotFound (or the relevant sentinel)
// when no row matches.
type BookingStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)

	// Booking root. CreateBooking returns the row as persisted so that DB
	// generated defaults (the carrier booking request reference among them)
	// are visible to the caller.
	CreateBooking(ctx context.Context, tx Tx, booking model.Booking) (model.Booking, error)
	GetBooking(ctx context.Context, tx Tx, id string) (model.Booking, error)
	GetBookingByReference(ctx context.Context, tx Tx, reference string) (model.Booking, error)
	UpdateBooking(ctx context.Context, tx Tx, booking model.Booking) error
	SetBookingVesselID(ctx context.Context, tx Tx, bookingID string, vesselID string) error
	SetBookingInvoicePayableAt(ctx context.Context, tx Tx, bookingID string, locationID *string) error
	SetBookingPlaceOfIssue(ctx context.Context, tx Tx, bookingID string, locationID *string) error

	// UpdateBookingStatus is a conditional update keyed by the caller visible
	// reference. It returns the number of affected rows and never fails on
	// zero matches; interpreting zero as a failure is the caller's duty.
	UpdateBookingStatus(ctx context.Context, tx Tx, reference string, status model.BookingStatus, updatedAt model.DateTime) (int64, error)
	ListBookings(ctx context.Context, tx Tx, req ListBookingsRequest) (ListBookingsResult, error)

	// Commodities
	CreateCommodities(ctx context.Context, tx Tx, bookingID string, commodities []model.Commodity) error
	GetCommoditiesByBookingID(ctx context.Context, tx Tx, bookingID string) ([]model.Commodity, error)
	DeleteCommoditiesByBookingID(ctx context.Context, tx Tx, bookingID string) (int64, error)

	// Value added service requests
	CreateValueAddedServiceRequests(ctx context.Context, tx Tx, bookingID string, requests []model.ValueAddedServiceRequest) error
	GetValueAddedServiceRequestsByBookingID(ctx context.Context, tx Tx, bookingID string) ([]model.ValueAddedServiceRequest, error)
	DeleteValueAddedServiceRequestsByBookingID(ctx context.Context, tx Tx, bookingID string) (int64, error)

	// References
	CreateReferences(ctx context.Context, tx Tx, bookingID string, references []model.Reference) error
	GetReferencesByBookingID(ctx context.Context, tx Tx, bookingID string) ([]model.Reference, error)
	DeleteReferencesByBookingID(ctx context.Context, tx Tx, bookingID string) (int64, error)

	// Requested equipment and its equipment reference join rows
	CreateRequestedEquipment(ctx context.Context, tx Tx, rec RequestedEquipmentRec) error
	CreateEquipmentReferences(ctx context.Context, tx Tx, requestedEquipmentID string, references []string) error
	GetRequestedEquipmentsByBookingID(ctx context.Context, tx Tx, bookingID string) ([]RequestedEquipmentRec, error)
	GetEquipmentReferencesByRequestedEquipmentID(ctx context.Context, tx Tx, requestedEquipmentID string) ([]string, error)
	DeleteEquipmentReferencesByBookingID(ctx context.Context, tx Tx, bookingID string) (int64, error)
	DeleteRequestedEquipmentsByBookingID(ctx context.Context, tx Tx, bookingID string) (int64, error)

	// Document parties and the party chain
	CreateAddress(ctx context.Context, tx Tx, address model.Address) error
	GetAddress(ctx context.Context, tx Tx, id string) (model.Address, error)
	CreateParty(ctx context.Context, tx Tx, party PartyRec) error
	GetParty(ctx context.Context, tx Tx, id string) (PartyRec, error)
	CreatePartyContactDetails(ctx context.Context, tx Tx, partyID string, details []model.PartyContactDetails) error
	GetPartyContactDetailsByPartyID(ctx context.Context, tx Tx, partyID string) ([]model.PartyContactDetails, error)
	CreatePartyIdentifyingCodes(ctx context.Context, tx Tx, partyID string, codes []model.PartyIdentifyingCode) error
	GetPartyIdentifyingCodesByPartyID(ctx context.Context, tx Tx, partyID string) ([]model.PartyIdentifyingCode, error)
	CreateDocumentParty(ctx context.Context, tx Tx, rec DocumentPartyRec) error
	GetDocumentPartiesByBookingID(ctx context.Context, tx Tx, bookingID string) ([]DocumentPartyRec, error)
	DeleteDocumentPartiesByBookingID(ctx context.Context, tx Tx, bookingID string) (int64, error)

	// CreateDisplayedAddresses persists the lines with their positions;
	// GetDisplayedAddressesByDocumentPartyID returns them ordered by line
	// number.
	CreateDisplayedAddresses(ctx context.Context, tx Tx, documentPartyID string, lines []string) error
	GetDisplayedAddressesByDocumentPartyID(ctx context.Context, tx Tx, documentPartyID string) ([]string, error)

	// Shipment locations and the location chain
	CreateLocation(ctx context.Context, tx Tx, location LocationRec) error
	GetLocation(ctx context.Context, tx Tx, id string) (LocationRec, error)
	CreateShipmentLocation(ctx context.Context, tx Tx, rec ShipmentLocationRec) error
	GetShipmentLocationsByBookingID(ctx context.Context, tx Tx, bookingID string) ([]ShipmentLocationRec, error)
	DeleteShipmentLocationsByBookingID(ctx context.Context, tx Tx, bookingID string) (int64, error)

	// Vessels. Bookings never create vessels.
	GetVessel(ctx context.Context, tx Tx, id string) (model.Vessel, error)
	GetVesselByIMONumber(ctx context.Context, tx Tx, imoNumber string) (model.Vessel, error)
	GetVesselsByName(ctx context.Context, tx Tx, name string) ([]model.Vessel, error)
}

// ShipmentStorage is the read surface of confirmed shipments. It embeds
// BookingStorage because the shipment aggregate reuses the booking's child
// data.
type ShipmentStorage interface {
	BookingStorage

	GetShipmentByCarrierBookingReference(ctx context.Context, tx Tx, reference string) (ShipmentRec, error)
	GetShipmentCutOffTimesByShipmentID(ctx context.Context, tx Tx, shipmentID string) ([]model.ShipmentCutOffTime, error)
	GetCarrierClausesByShipmentID(ctx context.Context, tx Tx, shipmentID string) ([]model.CarrierClause, error)
	GetConfirmedEquipmentsByShipmentID(ctx context.Context, tx Tx, shipmentID string) ([]model.ConfirmedEquipment, error)
	GetChargesByShipmentID(ctx context.Context, tx Tx, shipmentID string) ([]model.Charge, error)
	GetShipmentTransportsByShipmentID(ctx context.Context, tx Tx, shipmentID string) ([]ShipmentTransportRec, error)
	GetTransportCall(ctx context.Context, tx Tx, id string) (TransportCallRec, error)
	GetVoyageNumber(ctx context.Context, tx Tx, voyageID string) (string, error)

	// GetLatestTransportEventTime returns the event time of the most recent
	// transport event of the given type/classifier for a transport call, or
	// a zero DateTime when none exists.
	GetLatestTransportEventTime(ctx context.Context, tx Tx, transportCallID string, eventType string, classifier string) (model.DateTime, error)
	ListShipments(ctx context.Context, tx Tx, req ListShipmentsRequest) (ListShipmentsResult, error)
}

// EventStorage is the persistence surface of shipment events and their
// delivery outbox.
type EventStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	AddShipmentEvent(ctx context.Context, tx Tx, event model.ShipmentEvent) error
	AddShipmentEventOutbox(ctx context.Context, tx Tx, ts int64, key string, payload []byte) error
	GetShipmentEventOutbox(ctx context.Context, tx Tx, batchSize int) ([]OutboxMsg, error)
	DeleteShipmentEventOutbox(ctx context.Context, tx Tx, recIDs ...int64) error
	ListShipmentEvents(ctx context.Context, tx Tx, req ListEventsRequest) (ListEventsResult, error)
}
