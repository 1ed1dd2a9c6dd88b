package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
)

const vesselColumns = `id, vessel_name, vessel_imo_number, vessel_flag, vessel_call_sign`

func (s *_Storage) GetVessel(ctx context.Context, tx storage.Tx, id string) (model.Vessel, error) {
	query := `SELECT ` + vesselColumns + ` FROM vessel WHERE id = $1`
	vessel := model.Vessel{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&vessel.ID,
		&vessel.VesselName,
		&vessel.VesselIMONumber,
		&vessel.VesselFlag,
		&vessel.VesselCallSign,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Vessel{}, model.ErrVesselNotFound
	} else if err != nil {
		return model.Vessel{}, err
	}
	return vessel, nil
}

func (s *_Storage) GetVesselByIMONumber(ctx context.Context, tx storage.Tx, imoNumber string) (model.Vessel, error) {
	query := `SELECT ` + vesselColumns + ` FROM vessel WHERE vessel_imo_number = $1`
	vessel := model.Vessel{}
	err := tx.QueryRow(ctx, query, imoNumber).Scan(
		&vessel.ID,
		&vessel.VesselName,
		&vessel.VesselIMONumber,
		&vessel.VesselFlag,
		&vessel.VesselCallSign,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Vessel{}, model.ErrVesselNotFound
	} else if err != nil {
		return model.Vessel{}, err
	}
	return vessel, nil
}

func (s *_Storage) GetVesselsByName(ctx context.Context, tx storage.Tx, name string) ([]model.Vessel, error) {
	query := `SELECT ` + vesselColumns + ` FROM vessel WHERE vessel_name = $1 ORDER BY id ASC`
	rows, err := tx.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vessels []model.Vessel
	for rows.Next() {
		vessel := model.Vessel{}
		if err := rows.Scan(
			&vessel.ID,
			&vessel.VesselName,
			&vessel.VesselIMONumber,
			&vessel.VesselFlag,
			&vessel.VesselCallSign,
		); err != nil {
			return nil, err
		}
		vessels = append(vessels, vessel)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vessels, nil
}
