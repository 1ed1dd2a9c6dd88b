package shipment

import (
	"context"

	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
)

const (
	transportEventArrival   = "ARRI"
	transportEventDeparture = "DEPA"
	transportEventPlanned   = "PLN"
)

// fetchTransports reconstructs the transport plan of a shipment. Each leg
// joins its load and discharge transport calls and, through them, locations,
// the vessel, voyage numbers and the planned departure/arrival times taken
// from the most recent planned transport events.
func (m *_ShipmentManager) fetchTransports(ctx context.Context, tx storage.Tx, shipmentID string) ([]model.Transport, error) {
	recs, err := m.storage.GetShipmentTransportsByShipmentID(ctx, tx, shipmentID)
	if err != nil {
		return nil, err
	}

	transports := make([]model.Transport, 0, len(recs))
	for _, rec := range recs {
		transport := model.Transport{
			TransportPlanStage:               rec.TransportPlanStage,
			TransportPlanStageSequenceNumber: rec.TransportPlanStageSequenceNumber,
			TransportName:                    rec.TransportName,
			TransportReference:               rec.TransportReference,
			IsUnderShippersResponsibility:    rec.IsUnderShippersResponsibility,
		}

		loadCall, err := m.storage.GetTransportCall(ctx, tx, rec.LoadTransportCallID)
		if err != nil {
			return nil, err
		}
		dischargeCall, err := m.storage.GetTransportCall(ctx, tx, rec.DischargeTransportCallID)
		if err != nil {
			return nil, err
		}
		transport.ModeOfTransport = loadCall.ModeOfTransport

		if loadCall.LocationID != nil {
			location, err := m.fetchLocation(ctx, tx, *loadCall.LocationID)
			if err != nil {
				return nil, err
			}
			transport.LoadLocation = &location
		}
		if dischargeCall.LocationID != nil {
			location, err := m.fetchLocation(ctx, tx, *dischargeCall.LocationID)
			if err != nil {
				return nil, err
			}
			transport.DischargeLocation = &location
		}

		if loadCall.VesselID != nil {
			vessel, err := m.storage.GetVessel(ctx, tx, *loadCall.VesselID)
			if err != nil {
				return nil, err
			}
			transport.VesselName = vessel.VesselName
			transport.VesselIMONumber = vessel.VesselIMONumber
		}

		if loadCall.ImportVoyageID != nil {
			transport.ImportVoyageNumber, err = m.storage.GetVoyageNumber(ctx, tx, *loadCall.ImportVoyageID)
			if err != nil {
				return nil, err
			}
		}
		if loadCall.ExportVoyageID != nil {
			transport.ExportVoyageNumber, err = m.storage.GetVoyageNumber(ctx, tx, *loadCall.ExportVoyageID)
			if err != nil {
				return nil, err
			}
		}

		departure, err := m.storage.GetLatestTransportEventTime(ctx, tx, loadCall.ID, transportEventDeparture, transportEventPlanned)
		if err != nil {
			return nil, err
		}
		if !departure.IsZero() {
			transport.PlannedDepartureDate = &departure
		}
		arrival, err := m.storage.GetLatestTransportEventTime(ctx, tx, dischargeCall.ID, transportEventArrival, transportEventPlanned)
		if err != nil {
			return nil, err
		}
		if !arrival.IsZero() {
			transport.PlannedArrivalDate = &arrival
		}

		transports = append(transports, transport)
	}
	return transports, nil
}

func (m *_ShipmentManager) fetchLocation(ctx context.Context, tx storage.Tx, locationID string) (model.Location, error) {
	rec, err := m.storage.GetLocation(ctx, tx, locationID)
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
		address, err := m.storage.GetAddress(ctx, tx, *rec.AddressID)
		if err != nil {
			return model.Location{}, err
		}
		location.Address = &address
	}
	return location, nil
}
