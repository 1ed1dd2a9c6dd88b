package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	"github.com/samber/lo"
)

const bookingColumns = `
	id,
	carrier_booking_request_reference,
	document_status,
	receipt_type_at_origin,
	delivery_type_at_destination,
	cargo_movement_type_at_origin,
	cargo_movement_type_at_destination,
	service_contract_reference,
	payment_term_code,
	is_partial_load_allowed,
	is_export_declaration_required,
	export_declaration_reference,
	is_import_license_required,
	import_license_reference,
	is_ams_aci_filing_required,
	is_destination_filing_required,
	contract_quotation_reference,
	expected_departure_date,
	expected_arrival_date_start,
	expected_arrival_date_end,
	transport_document_type_code,
	transport_document_reference,
	booking_channel_reference,
	inco_terms,
	communication_channel_code,
	is_equipment_substitution_allowed,
	export_voyage_number,
	vessel_id,
	invoice_payable_at_id,
	place_of_issue_id,
	booking_request_datetime,
	updated_datetime`

func (s *_Storage) CreateBooking(ctx context.Context, tx storage.Tx, booking model.Booking) (model.Booking, error) {
	query := `
INSERT INTO booking (
	id,
	carrier_booking_request_reference,
	document_status,
	receipt_type_at_origin,
	delivery_type_at_destination,
	cargo_movement_type_at_origin,
	cargo_movement_type_at_destination,
	service_contract_reference,
	payment_term_code,
	is_partial_load_allowed,
	is_export_declaration_required,
	export_declaration_reference,
	is_import_license_required,
	import_license_reference,
	is_ams_aci_filing_required,
	is_destination_filing_required,
	contract_quotation_reference,
	expected_departure_date,
	expected_arrival_date_start,
	expected_arrival_date_end,
	transport_document_type_code,
	transport_document_reference,
	booking_channel_reference,
	inco_terms,
	communication_channel_code,
	is_equipment_substitution_allowed,
	export_voyage_number,
	booking_request_datetime,
	updated_datetime
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
	$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
	$21, $22, $23, $24, $25, $26, $27, $28, $29
)
RETURNING` + bookingColumns

	row := tx.QueryRow(
		ctx,
		query,
		booking.ID,
		booking.CarrierBookingRequestReference,
		booking.DocumentStatus,
		booking.ReceiptTypeAtOrigin,
		booking.DeliveryTypeAtDestination,
		booking.CargoMovementTypeAtOrigin,
		booking.CargoMovementTypeAtDestination,
		booking.ServiceContractReference,
		booking.PaymentTermCode,
		booking.IsPartialLoadAllowed,
		booking.IsExportDeclarationRequired,
		booking.ExportDeclarationReference,
		booking.IsImportLicenseRequired,
		booking.ImportLicenseReference,
		booking.IsAMSACIFilingRequired,
		booking.IsDestinationFilingRequired,
		booking.ContractQuotationReference,
		dateToTimePtr(booking.ExpectedDepartureDate),
		dateToTimePtr(booking.ExpectedArrivalDateStart),
		dateToTimePtr(booking.ExpectedArrivalDateEnd),
		booking.TransportDocumentTypeCode,
		booking.TransportDocumentReference,
		booking.BookingChannelReference,
		booking.IncoTerms,
		booking.CommunicationChannelCode,
		booking.IsEquipmentSubstitutionAllowed,
		booking.ExportVoyageNumber,
		booking.BookingRequestDateTime.GetTime(),
		booking.UpdatedDateTime.GetTime(),
	)
	return scanBooking(row)
}

func (s *_Storage) GetBooking(ctx context.Context, tx storage.Tx, id string) (model.Booking, error) {
	query := `SELECT` + bookingColumns + ` FROM booking WHERE id = $1`
	booking, err := scanBooking(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Booking{}, model.ErrBookingNotFound
	}
	return booking, err
}

func (s *_Storage) GetBookingByReference(ctx context.Context, tx storage.Tx, reference string) (model.Booking, error) {
	query := `SELECT` + bookingColumns + ` FROM booking WHERE carrier_booking_request_reference = $1`
	booking, err := scanBooking(tx.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Booking{}, model.ErrBookingNotFound
	}
	return booking, err
}

func (s *_Storage) UpdateBooking(ctx context.Context, tx storage.Tx, booking model.Booking) error {
	query := `
UPDATE booking SET
	document_status = $2,
	receipt_type_at_origin = $3,
	delivery_type_at_destination = $4,
	cargo_movement_type_at_origin = $5,
	cargo_movement_type_at_destination = $6,
	service_contract_reference = $7,
	payment_term_code = $8,
	is_partial_load_allowed = $9,
	is_export_declaration_required = $10,
	export_declaration_reference = $11,
	is_import_license_required = $12,
	import_license_reference = $13,
	is_ams_aci_filing_required = $14,
	is_destination_filing_required = $15,
	contract_quotation_reference = $16,
	expected_departure_date = $17,
	expected_arrival_date_start = $18,
	expected_arrival_date_end = $19,
	transport_document_type_code = $20,
	transport_document_reference = $21,
	booking_channel_reference = $22,
	inco_terms = $23,
	communication_channel_code = $24,
	is_equipment_substitution_allowed = $25,
	export_voyage_number = $26,
	booking_request_datetime = $27,
	updated_datetime = $28
WHERE id = $1`

	_, err := tx.Exec(
		ctx,
		query,
		booking.ID,
		booking.DocumentStatus,
		booking.ReceiptTypeAtOrigin,
		booking.DeliveryTypeAtDestination,
		booking.CargoMovementTypeAtOrigin,
		booking.CargoMovementTypeAtDestination,
		booking.ServiceContractReference,
		booking.PaymentTermCode,
		booking.IsPartialLoadAllowed,
		booking.IsExportDeclarationRequired,
		booking.ExportDeclarationReference,
		booking.IsImportLicenseRequired,
		booking.ImportLicenseReference,
		booking.IsAMSACIFilingRequired,
		booking.IsDestinationFilingRequired,
		booking.ContractQuotationReference,
		dateToTimePtr(booking.ExpectedDepartureDate),
		dateToTimePtr(booking.ExpectedArrivalDateStart),
		dateToTimePtr(booking.ExpectedArrivalDateEnd),
		booking.TransportDocumentTypeCode,
		booking.TransportDocumentReference,
		booking.BookingChannelReference,
		booking.IncoTerms,
		booking.CommunicationChannelCode,
		booking.IsEquipmentSubstitutionAllowed,
		booking.ExportVoyageNumber,
		booking.BookingRequestDateTime.GetTime(),
		booking.UpdatedDateTime.GetTime(),
	)
	return err
}

func (s *_Storage) SetBookingVesselID(ctx context.Context, tx storage.Tx, bookingID string, vesselID string) error {
	_, err := tx.Exec(ctx, `UPDATE booking SET vessel_id = $2 WHERE id = $1`, bookingID, vesselID)
	return err
}

func (s *_Storage) SetBookingInvoicePayableAt(ctx context.Context, tx storage.Tx, bookingID string, locationID *string) error {
	_, err := tx.Exec(ctx, `UPDATE booking SET invoice_payable_at_id = $2 WHERE id = $1`, bookingID, locationID)
	return err
}

func (s *_Storage) SetBookingPlaceOfIssue(ctx context.Context, tx storage.Tx, bookingID string, locationID *string) error {
	_, err := tx.Exec(ctx, `UPDATE booking SET place_of_issue_id = $2 WHERE id = $1`, bookingID, locationID)
	return err
}

func (s *_Storage) UpdateBookingStatus(ctx context.Context, tx storage.Tx, reference string, status model.BookingStatus, updatedAt model.DateTime) (int64, error) {
	query := `
UPDATE booking SET document_status = $2, updated_datetime = $3
WHERE carrier_booking_request_reference = $1`
	result, err := tx.Exec(ctx, query, reference, status, updatedAt.GetTime())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *_Storage) ListBookings(ctx context.Context, tx storage.Tx, req storage.ListBookingsRequest) (storage.ListBookingsResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		carrier_booking_request_reference,
		document_status,
		receipt_type_at_origin,
		delivery_type_at_destination,
		service_contract_reference,
		booking_request_datetime,
		updated_datetime
	FROM booking
	WHERE (COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR document_status = ANY($3))
)
SELECT
	total,
	carrier_booking_request_reference,
	document_status,
	receipt_type_at_origin,
	delivery_type_at_destination,
	service_contract_reference,
	booking_request_datetime,
	updated_datetime
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (
	SELECT * FROM filtered_record ORDER BY booking_request_datetime DESC OFFSET $1 LIMIT $2
) AS record ON FALSE
`
	statuses := lo.Map(req.DocumentStatuses, func(s model.BookingStatus, _ int) string { return string(s) })
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, statuses)
	if err != nil {
		return storage.ListBookingsResult{}, err
	}
	defer rows.Close()

	result := storage.ListBookingsResult{}
	for rows.Next() {
		var total *int
		var reference *string
		var status *model.BookingStatus
		var receiptType, deliveryType, serviceContract *string
		var requestedAt, updatedAt *time.Time

		if err := rows.Scan(&total, &reference, &status, &receiptType, &deliveryType, &serviceContract, &requestedAt, &updatedAt); err != nil {
			return storage.ListBookingsResult{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if reference != nil {
			result.Records = append(result.Records, model.BookingSummary{
				CarrierBookingRequestReference: *reference,
				DocumentStatus:                 *status,
				ReceiptTypeAtOrigin:            *receiptType,
				DeliveryTypeAtDestination:      *deliveryType,
				ServiceContractReference:       *serviceContract,
				BookingRequestDateTime:         model.NewDateTime(*requestedAt),
				UpdatedDateTime:                model.NewDateTime(*updatedAt),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListBookingsResult{}, err
	}
	return result, nil
}

func scanBooking(row storage.Row) (model.Booking, error) {
	booking := model.Booking{}
	var expectedDeparture, expectedArrivalStart, expectedArrivalEnd *time.Time
	var requestedAt, updatedAt time.Time
	var invoicePayableAtID, placeOfIssueID *string

	err := row.Scan(
		&booking.ID,
		&booking.CarrierBookingRequestReference,
		&booking.DocumentStatus,
		&booking.ReceiptTypeAtOrigin,
		&booking.DeliveryTypeAtDestination,
		&booking.CargoMovementTypeAtOrigin,
		&booking.CargoMovementTypeAtDestination,
		&booking.ServiceContractReference,
		&booking.PaymentTermCode,
		&booking.IsPartialLoadAllowed,
		&booking.IsExportDeclarationRequired,
		&booking.ExportDeclarationReference,
		&booking.IsImportLicenseRequired,
		&booking.ImportLicenseReference,
		&booking.IsAMSACIFilingRequired,
		&booking.IsDestinationFilingRequired,
		&booking.ContractQuotationReference,
		&expectedDeparture,
		&expectedArrivalStart,
		&expectedArrivalEnd,
		&booking.TransportDocumentTypeCode,
		&booking.TransportDocumentReference,
		&booking.BookingChannelReference,
		&booking.IncoTerms,
		&booking.CommunicationChannelCode,
		&booking.IsEquipmentSubstitutionAllowed,
		&booking.ExportVoyageNumber,
		&booking.VesselID,
		&invoicePayableAtID,
		&placeOfIssueID,
		&requestedAt,
		&updatedAt,
	)
	if err != nil {
		return model.Booking{}, err
	}

	booking.ExpectedDepartureDate = timeToDatePtr(expectedDeparture)
	booking.ExpectedArrivalDateStart = timeToDatePtr(expectedArrivalStart)
	booking.ExpectedArrivalDateEnd = timeToDatePtr(expectedArrivalEnd)
	booking.BookingRequestDateTime = model.NewDateTime(requestedAt)
	booking.UpdatedDateTime = model.NewDateTime(updatedAt)
	if invoicePayableAtID != nil {
		booking.InvoicePayableAt = &model.Location{ID: *invoicePayableAtID}
	}
	if placeOfIssueID != nil {
		booking.PlaceOfIssue = &model.Location{ID: *placeOfIssueID}
	}
	return booking, nil
}

func dateToTimePtr(d *model.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.GetTime()
	return &t
}

func timeToDatePtr(t *time.Time) *model.Date {
	if t == nil {
		return nil
	}
	d := model.NewDate(*t)
	return &d
}

func timeToDateTimePtr(t *time.Time) *model.DateTime {
	if t == nil {
		return nil
	}
	dt := model.NewDateTime(*t)
	return &dt
}

func dateTimeToTimePtr(dt *model.DateTime) *time.Time {
	if dt == nil {
		return nil
	}
	t := dt.GetTime()
	return &t
}
