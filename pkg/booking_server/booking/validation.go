package booking

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
)

func ValidateCreateBookingRequest(req CreateBookingRequest) error {
	return validateBooking(req.Booking)
}

func ValidateUpdateBookingRequest(req UpdateBookingRequest) error {
	if req.Reference == "" {
		return fmt.Errorf("reference is required%w", model.ErrInvalidParameter)
	}
	return validateBooking(req.Booking)
}

func ValidateCancelBookingRequest(req CancelBookingRequest) error {
	if req.Reference == "" {
		return fmt.Errorf("reference is required%w", model.ErrInvalidParameter)
	}
	return nil
}

func ValidateListBookingsRequest(req storage.ListBookingsRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Limit, validation.Required),
		validation.Field(&req.Offset, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func validateBooking(booking model.Booking) error {
	if err := validation.ValidateStruct(&booking,
		validation.Field(&booking.ReceiptTypeAtOrigin, validation.Required, validation.In("CY", "SD", "CFS")),
		validation.Field(&booking.DeliveryTypeAtDestination, validation.Required, validation.In("CY", "SD", "CFS")),
		validation.Field(&booking.CargoMovementTypeAtOrigin, validation.Required, validation.In("FCL", "LCL", "BB")),
		validation.Field(&booking.CargoMovementTypeAtDestination, validation.Required, validation.In("FCL", "LCL", "BB")),
		validation.Field(&booking.ServiceContractReference, validation.Required, validation.Length(0, 30)),
		validation.Field(&booking.CommunicationChannelCode, validation.Required, validation.In("EI", "EM", "AO")),
		validation.Field(&booking.PaymentTermCode, validation.In("PRE", "COL")),
		validation.Field(&booking.TransportDocumentTypeCode, validation.In("BOL", "SWB")),
		validation.Field(&booking.IsPartialLoadAllowed, validation.NotNil),
		validation.Field(&booking.IsExportDeclarationRequired, validation.NotNil),
		validation.Field(&booking.IsImportLicenseRequired, validation.NotNil),
		validation.Field(&booking.IsEquipmentSubstitutionAllowed, validation.NotNil),
		validation.Field(&booking.Commodities, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return validateBookingConditionalRules(booking)
}

// validateBookingConditionalRules enforces the cross-field business rules
// that ozzo's per-field declarations cannot express.
func validateBookingConditionalRules(booking model.Booking) error {
	if booking.IsImportLicenseRequired != nil && *booking.IsImportLicenseRequired &&
		(booking.ImportLicenseReference == nil || *booking.ImportLicenseReference == "") {
		return fmt.Errorf("import license reference is required when import license is required%w", model.ErrInvalidParameter)
	}
	if booking.IsExportDeclarationRequired != nil && *booking.IsExportDeclarationRequired &&
		(booking.ExportDeclarationReference == nil || *booking.ExportDeclarationReference == "") {
		return fmt.Errorf("export declaration reference is required when export declaration is required%w", model.ErrInvalidParameter)
	}

	if booking.ExpectedArrivalDateStart != nil && booking.ExpectedArrivalDateEnd != nil &&
		booking.ExpectedArrivalDateStart.After(*booking.ExpectedArrivalDateEnd) {
		return fmt.Errorf("expected arrival date start must not be after expected arrival date end%w", model.ErrInvalidParameter)
	}
	if (booking.ExpectedArrivalDateStart == nil) != (booking.ExpectedArrivalDateEnd == nil) {
		return fmt.Errorf("expected arrival date start and end must be provided together%w", model.ErrInvalidParameter)
	}

	hasArrivalWindow := booking.ExpectedArrivalDateStart != nil && booking.ExpectedArrivalDateEnd != nil
	hasVesselVoyage := booking.VesselIMONumber != "" && booking.ExportVoyageNumber != ""
	if booking.ExpectedDepartureDate == nil && !hasArrivalWindow && !hasVesselVoyage {
		return fmt.Errorf("an expected departure date, an expected arrival window, or a vessel IMO number with export voyage number is required%w", model.ErrInvalidParameter)
	}

	for _, equipment := range booking.RequestedEquipments {
		if len(equipment.EquipmentReferences) > equipment.Units {
			return fmt.Errorf("number of equipment references exceeds requested units for size type %s%w", equipment.SizeType, model.ErrInvalidParameter)
		}
	}

	for _, commodity := range booking.Commodities {
		if err := validation.ValidateStruct(&commodity,
			validation.Field(&commodity.CommodityType, validation.Required, validation.Length(0, 550)),
			validation.Field(&commodity.CargoGrossWeight, validation.Required),
			validation.Field(&commodity.CargoGrossWeightUnit, validation.Required, validation.In("KGM", "LBR")),
		); err != nil {
			return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
		}
	}

	return nil
}
