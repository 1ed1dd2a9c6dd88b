// Package booking implements the management functions of the shipping
// booking aggregate.
package booking

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/event"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	"github.com/oceanbooking/oceanbooking/pkg/util"
)

// BookingManager is the interface that wraps the management functions of the
// booking aggregate.
type BookingManager interface {
	Create(ctx context.Context, ts int64, req CreateBookingRequest) (model.Booking, error)
	UpdateByReference(ctx context.Context, ts int64, req UpdateBookingRequest) (model.Booking, error)
	CancelByReference(ctx context.Context, ts int64, req CancelBookingRequest) (model.Booking, error)
	Get(ctx context.Context, reference string) (model.Booking, error)
	List(ctx context.Context, req storage.ListBookingsRequest) (storage.ListBookingsResult, error)
}

// CreateBookingRequest is the request to create a booking. The embedded
// booking carries the requested field values; identity, status and
// timestamps are assigned by the manager.
type CreateBookingRequest struct {
	Booking model.Booking `json:"booking"`
}

// UpdateBookingRequest is the request to fully replace a booking. Every
// child collection is replaced by the request's content; collections absent
// from the request end up empty.
type UpdateBookingRequest struct {
	Reference string        `json:"-"` // Carrier booking request reference from the URL.
	Booking   model.Booking `json:"booking"`
}

// CancelBookingRequest is the request to cancel a booking.
type CancelBookingRequest struct {
	Reference string `json:"-"`                // Carrier booking request reference from the URL.
	Reason    string `json:"reason,omitempty"` // Optional free text attached to the emitted event.
}

type _BookingManager struct {
	storage   storage.BookingStorage
	eventCtrl event.EventController
	assembler *AggregateAssembler
}

func NewBookingManager(bookingStorage storage.BookingStorage, eventCtrl event.EventController) BookingManager {
	return &_BookingManager{
		storage:   bookingStorage,
		eventCtrl: eventCtrl,
		assembler: NewAggregateAssembler(bookingStorage),
	}
}

func (m *_BookingManager) assemble(ctx context.Context, tx storage.Tx, booking model.Booking) (model.Booking, error) {
	return m.assembler.Assemble(ctx, tx, booking)
}

func (m *_BookingManager) Create(ctx context.Context, ts int64, req CreateBookingRequest) (model.Booking, error) {
	if err := ValidateCreateBookingRequest(req); err != nil {
		return model.Booking{}, err
	}

	now := model.NewDateTimeFromUnix(ts)
	booking := req.Booking
	booking.ID = uuid.NewString()
	booking.CarrierBookingRequestReference = util.NewUUID()
	booking.DocumentStatus = model.BookingStatusReceived
	booking.VesselID = nil
	booking.BookingRequestDateTime = now
	booking.UpdatedDateTime = now

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Booking{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	created, err := m.storage.CreateBooking(ctx, tx, booking)
	if err != nil {
		return model.Booking{}, err
	}

	if err := m.resolveVessel(ctx, tx, created.ID, req.Booking.VesselName, req.Booking.VesselIMONumber); err != nil {
		return model.Booking{}, err
	}

	if err := m.createChildren(ctx, tx, created.ID, req.Booking); err != nil {
		return model.Booking{}, err
	}

	// Re-read the root: vessel resolution and the optional location refs are
	// written after the insert.
	created, err = m.storage.GetBooking(ctx, tx, created.ID)
	if err != nil {
		return model.Booking{}, err
	}
	assembled, err := m.assemble(ctx, tx, created)
	if err != nil {
		return model.Booking{}, err
	}

	if _, err := m.eventCtrl.EmitBookingEvent(ctx, tx, ts, assembled, ""); err != nil {
		return model.Booking{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Booking{}, err
	}
	return assembled, nil
}

func (m *_BookingManager) UpdateByReference(ctx context.Context, ts int64, req UpdateBookingRequest) (model.Booking, error) {
	if err := ValidateUpdateBookingRequest(req); err != nil {
		return model.Booking{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Booking{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	oldBooking, err := m.storage.GetBookingByReference(ctx, tx, req.Reference)
	if err != nil {
		return model.Booking{}, err
	}
	if !oldBooking.DocumentStatus.CanBeUpdated() {
		return model.Booking{}, model.ErrInvalidBookingStatus
	}

	// Overwrite the root in place. Identity, reference, status and the
	// original request timestamp survive the replace.
	booking := req.Booking
	booking.ID = oldBooking.ID
	booking.CarrierBookingRequestReference = oldBooking.CarrierBookingRequestReference
	booking.DocumentStatus = oldBooking.DocumentStatus
	booking.VesselID = oldBooking.VesselID
	booking.BookingRequestDateTime = oldBooking.BookingRequestDateTime
	booking.UpdatedDateTime = model.NewDateTimeFromUnix(ts)

	if err := m.storage.UpdateBooking(ctx, tx, booking); err != nil {
		return model.Booking{}, err
	}

	if err := m.resolveVessel(ctx, tx, booking.ID, req.Booking.VesselName, req.Booking.VesselIMONumber); err != nil {
		return model.Booking{}, err
	}

	if err := m.replaceChildren(ctx, tx, booking.ID, req.Booking); err != nil {
		return model.Booking{}, err
	}

	updated, err := m.storage.GetBooking(ctx, tx, booking.ID)
	if err != nil {
		return model.Booking{}, err
	}
	assembled, err := m.assemble(ctx, tx, updated)
	if err != nil {
		return model.Booking{}, err
	}

	if _, err := m.eventCtrl.EmitBookingEvent(ctx, tx, ts, assembled, ""); err != nil {
		return model.Booking{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Booking{}, err
	}
	return assembled, nil
}

func (m *_BookingManager) CancelByReference(ctx context.Context, ts int64, req CancelBookingRequest) (model.Booking, error) {
	if err := ValidateCancelBookingRequest(req); err != nil {
		return model.Booking{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Booking{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	booking, err := m.storage.GetBookingByReference(ctx, tx, req.Reference)
	if err != nil {
		return model.Booking{}, err
	}
	if !booking.DocumentStatus.CanBeCancelled() {
		return model.Booking{}, model.ErrInvalidBookingStatus
	}

	updatedAt := model.NewDateTimeFromUnix(ts)
	affected, err := m.storage.UpdateBookingStatus(ctx, tx, req.Reference, model.BookingStatusCancelled, updatedAt)
	if err != nil {
		return model.Booking{}, err
	}
	if affected != 1 {
		return model.Booking{}, model.ErrBookingUpdateFailed
	}

	booking.DocumentStatus = model.BookingStatusCancelled
	booking.UpdatedDateTime = updatedAt

	if _, err := m.eventCtrl.EmitBookingEvent(ctx, tx, ts, booking, req.Reason); err != nil {
		return model.Booking{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

func (m *_BookingManager) Get(ctx context.Context, reference string) (model.Booking, error) {
	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return model.Booking{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	booking, err := m.storage.GetBookingByReference(ctx, tx, reference)
	if err != nil {
		return model.Booking{}, err
	}
	return m.assemble(ctx, tx, booking)
}

func (m *_BookingManager) List(ctx context.Context, req storage.ListBookingsRequest) (storage.ListBookingsResult, error) {
	if err := ValidateListBookingsRequest(req); err != nil {
		return storage.ListBookingsResult{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListBookingsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return m.storage.ListBookings(ctx, tx, req)
}
