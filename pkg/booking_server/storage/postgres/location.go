package postgres

import (
	"context"
	"time"

	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
)

func (s *_Storage) CreateLocation(ctx context.Context, tx storage.Tx, location storage.LocationRec) error {
	query := `
INSERT INTO location (id, location_name, un_location_code, latitude, longitude, address_id)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := tx.Exec(
		ctx,
		query,
		location.ID,
		location.LocationName,
		location.UNLocationCode,
		location.Latitude,
		location.Longitude,
		location.AddressID,
	)
	return err
}

func (s *_Storage) GetLocation(ctx context.Context, tx storage.Tx, id string) (storage.LocationRec, error) {
	query := `
SELECT id, location_name, un_location_code, latitude, longitude, address_id
FROM location WHERE id = $1`
	location := storage.LocationRec{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&location.ID,
		&location.LocationName,
		&location.UNLocationCode,
		&location.Latitude,
		&location.Longitude,
		&location.AddressID,
	)
	return location, err
}

func (s *_Storage) CreateShipmentLocation(ctx context.Context, tx storage.Tx, rec storage.ShipmentLocationRec) error {
	query := `
INSERT INTO shipment_location (booking_id, location_id, location_type_code, displayed_name, event_date_time)
VALUES ($1, $2, $3, $4, $5)`
	_, err := tx.Exec(
		ctx,
		query,
		rec.BookingID,
		rec.LocationID,
		rec.LocationTypeCode,
		rec.DisplayedName,
		dateTimeToTimePtr(rec.EventDateTime),
	)
	return err
}

func (s *_Storage) GetShipmentLocationsByBookingID(ctx context.Context, tx storage.Tx, bookingID string) ([]storage.ShipmentLocationRec, error) {
	query := `
SELECT booking_id, location_id, location_type_code, displayed_name, event_date_time
FROM shipment_location WHERE booking_id = $1 ORDER BY rec_id ASC`
	rows, err := tx.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []storage.ShipmentLocationRec
	for rows.Next() {
		rec := storage.ShipmentLocationRec{}
		var eventDateTime *time.Time
		if err := rows.Scan(
			&rec.BookingID,
			&rec.LocationID,
			&rec.LocationTypeCode,
			&rec.DisplayedName,
			&eventDateTime,
		); err != nil {
			return nil, err
		}
		rec.EventDateTime = timeToDateTimePtr(eventDateTime)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *_Storage) DeleteShipmentLocationsByBookingID(ctx context.Context, tx storage.Tx, bookingID string) (int64, error) {
	result, err := tx.Exec(ctx, `DELETE FROM shipment_location WHERE booking_id = $1`, bookingID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
