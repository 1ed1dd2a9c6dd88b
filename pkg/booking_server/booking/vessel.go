package booking

import (
	"context"

	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
)

// resolveVessel binds an existing vessel to the booking. Vessels are never
// created here. The vessel id is written as a separate update because the
// root's identity is only known after its first save.
func (m *_BookingManager) resolveVessel(ctx context.Context, tx storage.Tx, bookingID string, vesselName string, imoNumber string) error {
	if imoNumber != "" {
		vessel, err := m.storage.GetVesselByIMONumber(ctx, tx, imoNumber)
		if err != nil {
			return err
		}
		if vesselName != "" && vessel.VesselName != vesselName {
			return model.ErrVesselNameConflict
		}
		return m.storage.SetBookingVesselID(ctx, tx, bookingID, vessel.ID)
	}

	if vesselName != "" {
		vessels, err := m.storage.GetVesselsByName(ctx, tx, vesselName)
		if err != nil {
			return err
		}
		switch len(vessels) {
		case 0:
			return model.ErrVesselNotFound
		case 1:
			return m.storage.SetBookingVesselID(ctx, tx, bookingID, vessels[0].ID)
		default:
			return model.ErrVesselAmbiguous
		}
	}

	// Neither name nor IMO number requested.
	return nil
}
