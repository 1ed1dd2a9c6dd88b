package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	"golang.org/x/sync/errgroup"
)

// createChildren persists every child collection of the booking. Sibling
// collections are independent and run concurrently; the chains inside one
// collection (address before party, party before document party) stay
// sequential because each step needs the identity of the previous one.
func (m *_BookingManager) createChildren(ctx context.Context, tx storage.Tx, bookingID string, booking model.Booking) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return m.storage.CreateCommodities(ctx, tx, bookingID, booking.Commodities)
	})
	eg.Go(func() error {
		return m.storage.CreateValueAddedServiceRequests(ctx, tx, bookingID, booking.ValueAddedServiceRequests)
	})
	eg.Go(func() error {
		return m.storage.CreateReferences(ctx, tx, bookingID, booking.References)
	})
	eg.Go(func() error {
		return m.createRequestedEquipments(ctx, tx, bookingID, booking.RequestedEquipments)
	})
	eg.Go(func() error {
		return m.createDocumentParties(ctx, tx, bookingID, booking.DocumentParties)
	})
	eg.Go(func() error {
		return m.createShipmentLocations(ctx, tx, bookingID, booking.ShipmentLocations)
	})
	eg.Go(func() error {
		return m.setInvoicePayableAt(ctx, tx, bookingID, booking.InvoicePayableAt)
	})
	eg.Go(func() error {
		return m.setPlaceOfIssue(ctx, tx, bookingID, booking.PlaceOfIssue)
	})

	return eg.Wait()
}

// replaceChildren deletes every persisted child collection of the booking and
// recreates it from the request. Deleting zero rows is not an error. Party
// and location rows referenced by the removed join rows are left in place.
func (m *_BookingManager) replaceChildren(ctx context.Context, tx storage.Tx, bookingID string, booking model.Booking) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if _, err := m.storage.DeleteCommoditiesByBookingID(ctx, tx, bookingID); err != nil {
			return err
		}
		return m.storage.CreateCommodities(ctx, tx, bookingID, booking.Commodities)
	})
	eg.Go(func() error {
		if _, err := m.storage.DeleteValueAddedServiceRequestsByBookingID(ctx, tx, bookingID); err != nil {
			return err
		}
		return m.storage.CreateValueAddedServiceRequests(ctx, tx, bookingID, booking.ValueAddedServiceRequests)
	})
	eg.Go(func() error {
		if _, err := m.storage.DeleteReferencesByBookingID(ctx, tx, bookingID); err != nil {
			return err
		}
		return m.storage.CreateReferences(ctx, tx, bookingID, booking.References)
	})
	eg.Go(func() error {
		if _, err := m.storage.DeleteEquipmentReferencesByBookingID(ctx, tx, bookingID); err != nil {
			return err
		}
		if _, err := m.storage.DeleteRequestedEquipmentsByBookingID(ctx, tx, bookingID); err != nil {
			return err
		}
		return m.createRequestedEquipments(ctx, tx, bookingID, booking.RequestedEquipments)
	})
	eg.Go(func() error {
		if _, err := m.storage.DeleteDocumentPartiesByBookingID(ctx, tx, bookingID); err != nil {
			return err
		}
		return m.createDocumentParties(ctx, tx, bookingID, booking.DocumentParties)
	})
	eg.Go(func() error {
		if _, err := m.storage.DeleteShipmentLocationsByBookingID(ctx, tx, bookingID); err != nil {
			return err
		}
		return m.createShipmentLocations(ctx, tx, bookingID, booking.ShipmentLocations)
	})
	eg.Go(func() error {
		return m.setInvoicePayableAt(ctx, tx, bookingID, booking.InvoicePayableAt)
	})
	eg.Go(func() error {
		return m.setPlaceOfIssue(ctx, tx, bookingID, booking.PlaceOfIssue)
	})

	return eg.Wait()
}

func (m *_BookingManager) createRequestedEquipments(ctx context.Context, tx storage.Tx, bookingID string, equipments []model.RequestedEquipment) error {
	for _, equipment := range equipments {
		rec := storage.RequestedEquipmentRec{
			ID:             uuid.NewString(),
			BookingID:      bookingID,
			SizeType:       equipment.SizeType,
			Units:          equipment.Units,
			IsShipperOwned: equipment.IsShipperOwned,
		}
		if err := m.storage.CreateRequestedEquipment(ctx, tx, rec); err != nil {
			return err
		}
		if err := m.storage.CreateEquipmentReferences(ctx, tx, rec.ID, equipment.EquipmentReferences); err != nil {
			return err
		}
	}
	return nil
}

func (m *_BookingManager) createDocumentParties(ctx context.Context, tx storage.Tx, bookingID string, parties []model.DocumentParty) error {
	for _, documentParty := range parties {
		partyID, err := m.createParty(ctx, tx, documentParty.Party)
		if err != nil {
			return err
		}

		rec := storage.DocumentPartyRec{
			ID:             uuid.NewString(),
			BookingID:      bookingID,
			PartyID:        partyID,
			PartyFunction:  documentParty.PartyFunction,
			IsToBeNotified: documentParty.IsToBeNotified,
		}
		if err := m.storage.CreateDocumentParty(ctx, tx, rec); err != nil {
			return err
		}
		if err := m.storage.CreateDisplayedAddresses(ctx, tx, rec.ID, documentParty.DisplayedAddress); err != nil {
			return err
		}
	}
	return nil
}

func (m *_BookingManager) createParty(ctx context.Context, tx storage.Tx, party model.Party) (string, error) {
	var addressID *string
	if party.Address != nil {
		id, err := m.createAddress(ctx, tx, *party.Address)
		if err != nil {
			return "", err
		}
		addressID = &id
	}

	rec := storage.PartyRec{
		ID:            uuid.NewString(),
		PartyName:     party.PartyName,
		TaxReference1: party.TaxReference1,
		TaxReference2: party.TaxReference2,
		PublicKey:     party.PublicKey,
		AddressID:     addressID,
	}
	if err := m.storage.CreateParty(ctx, tx, rec); err != nil {
		return "", err
	}
	if err := m.storage.CreatePartyContactDetails(ctx, tx, rec.ID, party.ContactDetails); err != nil {
		return "", err
	}
	if err := m.storage.CreatePartyIdentifyingCodes(ctx, tx, rec.ID, party.IdentifyingCodes); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (m *_BookingManager) createShipmentLocations(ctx context.Context, tx storage.Tx, bookingID string, locations []model.ShipmentLocation) error {
	for _, shipmentLocation := range locations {
		locationID, err := m.createLocation(ctx, tx, shipmentLocation.Location)
		if err != nil {
			return err
		}

		rec := storage.ShipmentLocationRec{
			BookingID:        bookingID,
			LocationID:       locationID,
			LocationTypeCode: shipmentLocation.LocationTypeCode,
			DisplayedName:    shipmentLocation.DisplayedName,
			EventDateTime:    shipmentLocation.EventDateTime,
		}
		if err := m.storage.CreateShipmentLocation(ctx, tx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (m *_BookingManager) createLocation(ctx context.Context, tx storage.Tx, location model.Location) (string, error) {
	var addressID *string
	if location.Address != nil {
		id, err := m.createAddress(ctx, tx, *location.Address)
		if err != nil {
			return "", err
		}
		addressID = &id
	}

	rec := storage.LocationRec{
		ID:             uuid.NewString(),
		LocationName:   location.LocationName,
		UNLocationCode: location.UNLocationCode,
		Latitude:       location.Latitude,
		Longitude:      location.Longitude,
		AddressID:      addressID,
	}
	if err := m.storage.CreateLocation(ctx, tx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (m *_BookingManager) createAddress(ctx context.Context, tx storage.Tx, address model.Address) (string, error) {
	address.ID = uuid.NewString()
	if err := m.storage.CreateAddress(ctx, tx, address); err != nil {
		return "", fmt.Errorf("create address: %w", err)
	}
	return address.ID, nil
}

func (m *_BookingManager) setInvoicePayableAt(ctx context.Context, tx storage.Tx, bookingID string, location *model.Location) error {
	var locationID *string
	if location != nil {
		id, err := m.createLocation(ctx, tx, *location)
		if err != nil {
			return err
		}
		locationID = &id
	}
	return m.storage.SetBookingInvoicePayableAt(ctx, tx, bookingID, locationID)
}

func (m *_BookingManager) setPlaceOfIssue(ctx context.Context, tx storage.Tx, bookingID string, location *model.Location) error {
	var locationID *string
	if location != nil {
		id, err := m.createLocation(ctx, tx, *location)
		if err != nil {
			return err
		}
		locationID = &id
	}
	return m.storage.SetBookingPlaceOfIssue(ctx, tx, bookingID, locationID)
}
