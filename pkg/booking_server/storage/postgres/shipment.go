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

func (s *_Storage) GetShipmentByCarrierBookingReference(ctx context.Context, tx storage.Tx, reference string) (storage.ShipmentRec, error) {
	query := `
SELECT id, booking_id, carrier_booking_reference, terms_and_conditions, confirmation_datetime
FROM shipment WHERE carrier_booking_reference = $1`
	rec := storage.ShipmentRec{}
	var confirmedAt time.Time
	err := tx.QueryRow(ctx, query, reference).Scan(
		&rec.ID,
		&rec.BookingID,
		&rec.CarrierBookingReference,
		&rec.TermsAndConditions,
		&confirmedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ShipmentRec{}, model.ErrShipmentNotFound
	} else if err != nil {
		return storage.ShipmentRec{}, err
	}
	rec.ConfirmationDateTime = model.NewDateTime(confirmedAt)
	return rec, nil
}

func (s *_Storage) GetShipmentCutOffTimesByShipmentID(ctx context.Context, tx storage.Tx, shipmentID string) ([]model.ShipmentCutOffTime, error) {
	query := `
SELECT cut_off_datetime_code, cut_off_datetime
FROM shipment_cutoff_time WHERE shipment_id = $1 ORDER BY rec_id ASC`
	rows, err := tx.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cutOffTimes []model.ShipmentCutOffTime
	for rows.Next() {
		cutOff := model.ShipmentCutOffTime{}
		var cutOffAt time.Time
		if err := rows.Scan(&cutOff.CutOffDateTimeCode, &cutOffAt); err != nil {
			return nil, err
		}
		cutOff.CutOffDateTime = model.NewDateTime(cutOffAt)
		cutOffTimes = append(cutOffTimes, cutOff)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cutOffTimes, nil
}

func (s *_Storage) GetCarrierClausesByShipmentID(ctx context.Context, tx storage.Tx, shipmentID string) ([]model.CarrierClause, error) {
	query := `
SELECT cc.clause_content
FROM carrier_clause cc
JOIN shipment_carrier_clause scc ON scc.carrier_clause_id = cc.id
WHERE scc.shipment_id = $1 ORDER BY scc.rec_id ASC`
	rows, err := tx.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clauses []model.CarrierClause
	for rows.Next() {
		clause := model.CarrierClause{}
		if err := rows.Scan(&clause.ClauseContent); err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return clauses, nil
}

func (s *_Storage) GetConfirmedEquipmentsByShipmentID(ctx context.Context, tx storage.Tx, shipmentID string) ([]model.ConfirmedEquipment, error) {
	query := `
SELECT confirmed_equipment_size_type, confirmed_equipment_units
FROM confirmed_equipment WHERE shipment_id = $1 ORDER BY rec_id ASC`
	rows, err := tx.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipments []model.ConfirmedEquipment
	for rows.Next() {
		equipment := model.ConfirmedEquipment{}
		if err := rows.Scan(&equipment.SizeType, &equipment.Units); err != nil {
			return nil, err
		}
		equipments = append(equipments, equipment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return equipments, nil
}

func (s *_Storage) GetChargesByShipmentID(ctx context.Context, tx storage.Tx, shipmentID string) ([]model.Charge, error) {
	query := `
SELECT charge_type, currency_amount, currency_code, payment_term_code, calculation_basis, unit_price, quantity
FROM charge WHERE shipment_id = $1 ORDER BY rec_id ASC`
	rows, err := tx.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var charges []model.Charge
	for rows.Next() {
		charge := model.Charge{}
		if err := rows.Scan(
			&charge.ChargeType,
			&charge.CurrencyAmount,
			&charge.CurrencyCode,
			&charge.PaymentTermCode,
			&charge.CalculationBasis,
			&charge.UnitPrice,
			&charge.Quantity,
		); err != nil {
			return nil, err
		}
		charges = append(charges, charge)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return charges, nil
}

func (s *_Storage) GetShipmentTransportsByShipmentID(ctx context.Context, tx storage.Tx, shipmentID string) ([]storage.ShipmentTransportRec, error) {
	query := `
SELECT
	t.id,
	st.transport_plan_stage,
	st.transport_plan_stage_sequence_number,
	st.is_under_shippers_responsibility,
	t.transport_name,
	t.transport_reference,
	t.load_transport_call_id,
	t.discharge_transport_call_id
FROM shipment_transport st
JOIN transport t ON t.id = st.transport_id
WHERE st.shipment_id = $1
ORDER BY st.transport_plan_stage_sequence_number ASC`
	rows, err := tx.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []storage.ShipmentTransportRec
	for rows.Next() {
		rec := storage.ShipmentTransportRec{}
		if err := rows.Scan(
			&rec.TransportID,
			&rec.TransportPlanStage,
			&rec.TransportPlanStageSequenceNumber,
			&rec.IsUnderShippersResponsibility,
			&rec.TransportName,
			&rec.TransportReference,
			&rec.LoadTransportCallID,
			&rec.DischargeTransportCallID,
		); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *_Storage) GetTransportCall(ctx context.Context, tx storage.Tx, id string) (storage.TransportCallRec, error) {
	query := `
SELECT id, location_id, vessel_id, mode_of_transport, import_voyage_id, export_voyage_id
FROM transport_call WHERE id = $1`
	rec := storage.TransportCallRec{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.LocationID,
		&rec.VesselID,
		&rec.ModeOfTransport,
		&rec.ImportVoyageID,
		&rec.ExportVoyageID,
	)
	return rec, err
}

func (s *_Storage) GetVoyageNumber(ctx context.Context, tx storage.Tx, voyageID string) (string, error) {
	var carrierVoyageNumber string
	err := tx.QueryRow(ctx, `SELECT carrier_voyage_number FROM voyage WHERE id = $1`, voyageID).Scan(&carrierVoyageNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return carrierVoyageNumber, nil
}

func (s *_Storage) GetLatestTransportEventTime(ctx context.Context, tx storage.Tx, transportCallID string, eventType string, classifier string) (model.DateTime, error) {
	query := `
SELECT event_datetime FROM transport_event
WHERE transport_call_id = $1 AND event_type = $2 AND event_classifier_code = $3
ORDER BY event_datetime DESC LIMIT 1`
	var eventAt time.Time
	err := tx.QueryRow(ctx, query, transportCallID, eventType, classifier).Scan(&eventAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.DateTime{}, nil
	} else if err != nil {
		return model.DateTime{}, err
	}
	return model.NewDateTime(eventAt), nil
}

func (s *_Storage) ListShipments(ctx context.Context, tx storage.Tx, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		s.carrier_booking_reference,
		b.carrier_booking_request_reference,
		b.document_status,
		s.terms_and_conditions,
		s.confirmation_datetime
	FROM shipment s
	JOIN booking b ON b.id = s.booking_id
	WHERE (COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR b.document_status = ANY($3))
)
SELECT
	total,
	carrier_booking_reference,
	carrier_booking_request_reference,
	document_status,
	terms_and_conditions,
	confirmation_datetime
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (
	SELECT * FROM filtered_record ORDER BY confirmation_datetime DESC OFFSET $1 LIMIT $2
) AS record ON FALSE
`
	statuses := lo.Map(req.DocumentStatuses, func(s model.BookingStatus, _ int) string { return string(s) })
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, statuses)
	if err != nil {
		return storage.ListShipmentsResult{}, err
	}
	defer rows.Close()

	result := storage.ListShipmentsResult{}
	for rows.Next() {
		var total *int
		var reference, requestReference *string
		var status *model.BookingStatus
		var termsAndConditions *string
		var confirmedAt *time.Time

		if err := rows.Scan(&total, &reference, &requestReference, &status, &termsAndConditions, &confirmedAt); err != nil {
			return storage.ListShipmentsResult{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if reference != nil {
			result.Records = append(result.Records, model.ShipmentSummary{
				CarrierBookingReference:        *reference,
				CarrierBookingRequestReference: *requestReference,
				DocumentStatus:                 *status,
				TermsAndConditions:             *termsAndConditions,
				ConfirmationDateTime:           model.NewDateTime(*confirmedAt),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListShipmentsResult{}, err
	}
	return result, nil
}
