package booking

import (
	"context"

	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	"golang.org/x/sync/errgroup"
)

// AggregateAssembler reconstructs the full booking aggregate from its
// persisted parts. Every child collection plus the vessel and the optional
// location references are fetched concurrently; any single failure aborts
// the whole assembly so no caller ever sees a partial aggregate.
type AggregateAssembler struct {
	storage storage.BookingStorage
}

func NewAggregateAssembler(bookingStorage storage.BookingStorage) *AggregateAssembler {
	return &AggregateAssembler{storage: bookingStorage}
}

func (a *AggregateAssembler) Assemble(ctx context.Context, tx storage.Tx, booking model.Booking) (model.Booking, error) {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		commodities, err := a.storage.GetCommoditiesByBookingID(ctx, tx, booking.ID)
		if err != nil {
			return err
		}
		booking.Commodities = emptyIfNil(commodities)
		return nil
	})
	eg.Go(func() error {
		requests, err := a.storage.GetValueAddedServiceRequestsByBookingID(ctx, tx, booking.ID)
		if err != nil {
			return err
		}
		booking.ValueAddedServiceRequests = emptyIfNil(requests)
		return nil
	})
	eg.Go(func() error {
		references, err := a.storage.GetReferencesByBookingID(ctx, tx, booking.ID)
		if err != nil {
			return err
		}
		booking.References = emptyIfNil(references)
		return nil
	})
	eg.Go(func() error {
		equipments, err := a.fetchRequestedEquipments(ctx, tx, booking.ID)
		if err != nil {
			return err
		}
		booking.RequestedEquipments = equipments
		return nil
	})
	eg.Go(func() error {
		parties, err := a.fetchDocumentParties(ctx, tx, booking.ID)
		if err != nil {
			return err
		}
		booking.DocumentParties = parties
		return nil
	})
	eg.Go(func() error {
		locations, err := a.fetchShipmentLocations(ctx, tx, booking.ID)
		if err != nil {
			return err
		}
		booking.ShipmentLocations = locations
		return nil
	})
	eg.Go(func() error {
		if booking.VesselID == nil {
			return nil
		}
		vessel, err := a.storage.GetVessel(ctx, tx, *booking.VesselID)
		if err != nil {
			return err
		}
		booking.VesselName = vessel.VesselName
		booking.VesselIMONumber = vessel.VesselIMONumber
		return nil
	})
	eg.Go(func() error {
		if booking.InvoicePayableAt == nil {
			return nil
		}
		location, err := a.fetchLocation(ctx, tx, booking.InvoicePayableAt.ID)
		if err != nil {
			return err
		}
		booking.InvoicePayableAt = &location
		return nil
	})
	eg.Go(func() error {
		if booking.PlaceOfIssue == nil {
			return nil
		}
		location, err := a.fetchLocation(ctx, tx, booking.PlaceOfIssue.ID)
		if err != nil {
			return err
		}
		booking.PlaceOfIssue = &location
		return nil
	})

	if err := eg.Wait(); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

func (a *AggregateAssembler) fetchRequestedEquipments(ctx context.Context, tx storage.Tx, bookingID string) ([]model.RequestedEquipment, error) {
	recs, err := a.storage.GetRequestedEquipmentsByBookingID(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}

	equipments := make([]model.RequestedEquipment, 0, len(recs))
	for _, rec := range recs {
		references, err := a.storage.GetEquipmentReferencesByRequestedEquipmentID(ctx, tx, rec.ID)
		if err != nil {
			return nil, err
		}
		equipments = append(equipments, model.RequestedEquipment{
			SizeType:            rec.SizeType,
			Units:               rec.Units,
			IsShipperOwned:      rec.IsShipperOwned,
			EquipmentReferences: references,
		})
	}
	return equipments, nil
}

func (a *AggregateAssembler) fetchDocumentParties(ctx context.Context, tx storage.Tx, bookingID string) ([]model.DocumentParty, error) {
	recs, err := a.storage.GetDocumentPartiesByBookingID(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}

	parties := make([]model.DocumentParty, 0, len(recs))
	for _, rec := range recs {
		party, err := a.fetchParty(ctx, tx, rec.PartyID)
		if err != nil {
			return nil, err
		}
		displayedAddress, err := a.storage.GetDisplayedAddressesByDocumentPartyID(ctx, tx, rec.ID)
		if err != nil {
			return nil, err
		}
		parties = append(parties, model.DocumentParty{
			Party:            party,
			PartyFunction:    rec.PartyFunction,
			DisplayedAddress: displayedAddress,
			IsToBeNotified:   rec.IsToBeNotified,
		})
	}
	return parties, nil
}

func (a *AggregateAssembler) fetchParty(ctx context.Context, tx storage.Tx, partyID string) (model.Party, error) {
	rec, err := a.storage.GetParty(ctx, tx, partyID)
	if err != nil {
		return model.Party{}, err
	}

	party := model.Party{
		ID:            rec.ID,
		PartyName:     rec.PartyName,
		TaxReference1: rec.TaxReference1,
		TaxReference2: rec.TaxReference2,
		PublicKey:     rec.PublicKey,
	}
	if rec.AddressID != nil {
		address, err := a.storage.GetAddress(ctx, tx, *rec.AddressID)
		if err != nil {
			return model.Party{}, err
		}
		party.Address = &address
	}

	party.ContactDetails, err = a.storage.GetPartyContactDetailsByPartyID(ctx, tx, partyID)
	if err != nil {
		return model.Party{}, err
	}
	party.IdentifyingCodes, err = a.storage.GetPartyIdentifyingCodesByPartyID(ctx, tx, partyID)
	if err != nil {
		return model.Party{}, err
	}
	party.ContactDetails = emptyIfNil(party.ContactDetails)
	return party, nil
}

func (a *AggregateAssembler) fetchShipmentLocations(ctx context.Context, tx storage.Tx, bookingID string) ([]model.ShipmentLocation, error) {
	recs, err := a.storage.GetShipmentLocationsByBookingID(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}

	locations := make([]model.ShipmentLocation, 0, len(recs))
	for _, rec := range recs {
		location, err := a.fetchLocation(ctx, tx, rec.LocationID)
		if err != nil {
			return nil, err
		}
		locations = append(locations, model.ShipmentLocation{
			Location:         location,
			LocationTypeCode: rec.LocationTypeCode,
			DisplayedName:    rec.DisplayedName,
			EventDateTime:    rec.EventDateTime,
		})
	}
	return locations, nil
}

func (a *AggregateAssembler) fetchLocation(ctx context.Context, tx storage.Tx, locationID string) (model.Location, error) {
	rec, err := a.storage.GetLocation(ctx, tx, locationID)
	if err != nil {
		return model.Location{}, err
	}

	location := model.Location{
		ID:             rec.ID,
		LocationName:   rec.LocationName,
		UNLocationCode: rec.UNLocationCode,
		Latitude:       rec.Latitude,
		Longitude:      rec.Longitude,
	}
	if rec.AddressID != nil {
		address, err := a.storage.GetAddress(ctx, tx, *rec.AddressID)
		if err != nil {
			return model.Location{}, err
		}
		location.Address = &address
	}
	return location, nil
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
