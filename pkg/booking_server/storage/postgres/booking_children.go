package postgres

import (
	"context"
	"time"

	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
)

func (s *_Storage) CreateCommodities(ctx context.Context, tx storage.Tx, bookingID string, commodities []model.Commodity) error {
	query := `
INSERT INTO commodity (
	booking_id, commodity_type, hs_code, cargo_gross_weight, cargo_gross_weight_unit,
	export_license_issue_date, export_license_expiry_date
) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, c := range commodities {
		_, err := tx.Exec(
			ctx,
			query,
			bookingID,
			c.CommodityType,
			c.HSCode,
			c.CargoGrossWeight,
			c.CargoGrossWeightUnit,
			dateToTimePtr(c.ExportLicenseIssueDate),
			dateToTimePtr(c.ExportLicenseExpiryDate),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *_Storage) GetCommoditiesByBookingID(ctx context.Context, tx storage.Tx, bookingID string) ([]model.Commodity, error) {
	query := `
SELECT commodity_type, hs_code, cargo_gross_weight, cargo_gross_weight_unit,
	export_license_issue_date, export_license_expiry_date
FROM commodity WHERE booking_id = $1 ORDER BY rec_id ASC`
	rows, err := tx.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commodities []model.Commodity
	for rows.Next() {
		c := model.Commodity{}
		var issueDate, expiryDate *time.Time
		if err := rows.Scan(&c.CommodityType, &c.HSCode, &c.CargoGrossWeight, &c.CargoGrossWeightUnit, &issueDate, &expiryDate); err != nil {
			return nil, err
		}
		c.ExportLicenseIssueDate = timeToDatePtr(issueDate)
		c.ExportLicenseExpiryDate = timeToDatePtr(expiryDate)
		commodities = append(commodities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return commodities, nil
}

func (s *_Storage) DeleteCommoditiesByBookingID(ctx context.Context, tx storage.Tx, bookingID string) (int64, error) {
	result, err := tx.Exec(ctx, `DELETE FROM commodity WHERE booking_id = $1`, bookingID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *_Storage) CreateValueAddedServiceRequests(ctx context.Context, tx storage.Tx, bookingID string, requests []model.ValueAddedServiceRequest) error {
	query := `INSERT INTO value_added_service_request (booking_id, value_added_service_code) VALUES ($1, $2)`
	for _, r := range requests {
		if _, err := tx.Exec(ctx, query, bookingID, r.ValueAddedServiceCode); err != nil {
			return err
		}
	}
	return nil
}

func (s *_Storage) GetValueAddedServiceRequestsByBookingID(ctx context.Context, tx storage.Tx, bookingID string) ([]model.ValueAddedServiceRequest, error) {
	query := `SELECT value_added_service_code FROM value_added_service_request WHERE booking_id = $1 ORDER BY rec_id ASC`
	rows, err := tx.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []model.ValueAddedServiceRequest
	for rows.Next() {
		r := model.ValueAddedServiceRequest{}
		if err := rows.Scan(&r.ValueAddedServiceCode); err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *_Storage) DeleteValueAddedServiceRequestsByBookingID(ctx context.Context, tx storage.Tx, bookingID string) (int64, error) {
	result, err := tx.Exec(ctx, `DELETE FROM value_added_service_request WHERE booking_id = $1`, bookingID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *_Storage) CreateReferences(ctx context.Context, tx storage.Tx, bookingID string, references []model.Reference) error {
	query := `INSERT INTO reference (booking_id, reference_type, reference_value) VALUES ($1, $2, $3)`
	for _, r := range references {
		if _, err := tx.Exec(ctx, query, bookingID, r.ReferenceType, r.ReferenceValue); err != nil {
			return err
		}
	}
	return nil
}

func (s *_Storage) GetReferencesByBookingID(ctx context.Context, tx storage.Tx, bookingID string) ([]model.Reference, error) {
	query := `SELECT reference_type, reference_value FROM reference WHERE booking_id = $1 ORDER BY rec_id ASC`
	rows, err := tx.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var references []model.Reference
	for rows.Next() {
		r := model.Reference{}
		if err := rows.Scan(&r.ReferenceType, &r.ReferenceValue); err != nil {
			return nil, err
		}
		references = append(references, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return references, nil
}

func (s *_Storage) DeleteReferencesByBookingID(ctx context.Context, tx storage.Tx, bookingID string) (int64, error) {
	result, err := tx.Exec(ctx, `DELETE FROM reference WHERE booking_id = $1`, bookingID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *_Storage) CreateRequestedEquipment(ctx context.Context, tx storage.Tx, rec storage.RequestedEquipmentRec) error {
	query := `
INSERT INTO requested_equipment (id, booking_id, size_type, units, is_shipper_owned)
VALUES ($1, $2, $3, $4, $5)`
	_, err := tx.Exec(ctx, query, rec.ID, rec.BookingID, rec.SizeType, rec.Units, rec.IsShipperOwned)
	return err
}

func (s *_Storage) CreateEquipmentReferences(ctx context.Context, tx storage.Tx, requestedEquipmentID string, references []string) error {
	query := `INSERT INTO requested_equipment_equipment (requested_equipment_id, equipment_reference) VALUES ($1, $2)`
	for _, ref := range references {
		if _, err := tx.Exec(ctx, query, requestedEquipmentID, ref); err != nil {
			return err
		}
	}
	return nil
}

func (s *_Storage) GetRequestedEquipmentsByBookingID(ctx context.Context, tx storage.Tx, bookingID string) ([]storage.RequestedEquipmentRec, error) {
	query := `
SELECT id, booking_id, size_type, units, is_shipper_owned
FROM requested_equipment WHERE booking_id = $1 ORDER BY rec_id ASC`
	rows, err := tx.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []storage.RequestedEquipmentRec
	for rows.Next() {
		rec := storage.RequestedEquipmentRec{}
		if err := rows.Scan(&rec.ID, &rec.BookingID, &rec.SizeType, &rec.Units, &rec.IsShipperOwned); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *_Storage) GetEquipmentReferencesByRequestedEquipmentID(ctx context.Context, tx storage.Tx, requestedEquipmentID string) ([]string, error) {
	query := `
SELECT equipment_reference FROM requested_equipment_equipment
WHERE requested_equipment_id = $1 ORDER BY rec_id ASC`
	rows, err := tx.Query(ctx, query, requestedEquipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var references []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, err
		}
		references = append(references, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return references, nil
}

func (s *_Storage) DeleteEquipmentReferencesByBookingID(ctx context.Context, tx storage.Tx, bookingID string) (int64, error) {
	query := `
DELETE FROM requested_equipment_equipment
WHERE requested_equipment_id IN (SELECT id FROM requested_equipment WHERE booking_id = $1)`
	result, err := tx.Exec(ctx, query, bookingID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *_Storage) DeleteRequestedEquipmentsByBookingID(ctx context.Context, tx storage.Tx, bookingID string) (int64, error) {
	result, err := tx.Exec(ctx, `DELETE FROM requested_equipment WHERE booking_id = $1`, bookingID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
