// Package shipment implements the read side of confirmed shipments.
package shipment

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/booking"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	"golang.org/x/sync/errgroup"
)

// ShipmentManager is the interface that wraps the read functions of the
// shipment aggregate.
type ShipmentManager interface {
	Get(ctx context.Context, carrierBookingReference string) (model.Shipment, error)
	List(ctx context.Context, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error)
}

type _ShipmentManager struct {
	storage   storage.ShipmentStorage
	assembler *booking.AggregateAssembler
}

func NewShipmentManager(shipmentStorage storage.ShipmentStorage) ShipmentManager {
	return &_ShipmentManager{
		storage:   shipmentStorage,
		assembler: booking.NewAggregateAssembler(shipmentStorage),
	}
}

func (m *_ShipmentManager) Get(ctx context.Context, carrierBookingReference string) (model.Shipment, error) {
	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rec, err := m.storage.GetShipmentByCarrierBookingReference(ctx, tx, carrierBookingReference)
	if err != nil {
		return model.Shipment{}, err
	}

	shipment := model.Shipment{
		ID:                      rec.ID,
		BookingID:               rec.BookingID,
		CarrierBookingReference: rec.CarrierBookingReference,
		TermsAndConditions:      rec.TermsAndConditions,
		ConfirmationDateTime:    rec.ConfirmationDateTime,
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		bookingRoot, err := m.storage.GetBooking(ctx, tx, rec.BookingID)
		if err != nil {
			return err
		}
		assembled, err := m.assembler.Assemble(ctx, tx, bookingRoot)
		if err != nil {
			return err
		}
		shipment.Booking = &assembled
		shipment.ShipmentLocations = assembled.ShipmentLocations
		return nil
	})
	eg.Go(func() error {
		cutOffTimes, err := m.storage.GetShipmentCutOffTimesByShipmentID(ctx, tx, rec.ID)
		if err != nil {
			return err
		}
		shipment.ShipmentCutOffTimes = emptyIfNil(cutOffTimes)
		return nil
	})
	eg.Go(func() error {
		clauses, err := m.storage.GetCarrierClausesByShipmentID(ctx, tx, rec.ID)
		if err != nil {
			return err
		}
		shipment.CarrierClauses = emptyIfNil(clauses)
		return nil
	})
	eg.Go(func() error {
		equipments, err := m.storage.GetConfirmedEquipmentsByShipmentID(ctx, tx, rec.ID)
		if err != nil {
			return err
		}
		shipment.ConfirmedEquipments = emptyIfNil(equipments)
		return nil
	})
	eg.Go(func() error {
		charges, err := m.storage.GetChargesByShipmentID(ctx, tx, rec.ID)
		if err != nil {
			return err
		}
		shipment.Charges = emptyIfNil(charges)
		return nil
	})
	eg.Go(func() error {
		transports, err := m.fetchTransports(ctx, tx, rec.ID)
		if err != nil {
			return err
		}
		shipment.Transports = transports
		return nil
	})

	if err := eg.Wait(); err != nil {
		return model.Shipment{}, err
	}
	return shipment, nil
}

func (m *_ShipmentManager) List(ctx context.Context, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error) {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Limit, validation.Required),
		validation.Field(&req.Offset, validation.Min(0)),
	); err != nil {
		return storage.ListShipmentsResult{}, fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListShipmentsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return m.storage.ListShipments(ctx, tx, req)
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
